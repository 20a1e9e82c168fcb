// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
)

const manifestName = "package.json"

// ErrNoProjectRoot means no package.json was found in the start directory
// or any ancestor. The top-level flow aborts before any menu is shown.
var ErrNoProjectRoot = errors.New("no package.json found in this directory or any parent")

// PackageJSON is the subset of the package descriptor yarnkit reads.
type PackageJSON struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Scripts              map[string]string `json:"scripts"`
	Dependencies         map[string]string `json:"dependencies"`
	DevDependencies      map[string]string `json:"devDependencies"`
	PeerDependencies     map[string]string `json:"peerDependencies"`
	OptionalDependencies map[string]string `json:"optionalDependencies"`
}

// ScriptNames returns script names in sorted order for stable menus.
func (p *PackageJSON) ScriptNames() []string {
	return sortedKeys(p.Scripts)
}

// DependencyTable returns the map for a dependency kind.
func (p *PackageJSON) DependencyTable(kind DepKind) map[string]string {
	switch kind {
	case DepKindRuntime:
		return p.Dependencies
	case DepKindDev:
		return p.DevDependencies
	case DepKindPeer:
		return p.PeerDependencies
	case DepKindOptional:
		return p.OptionalDependencies
	default:
		return nil
	}
}

// AllDependencyOptions flattens every dependency table into one option
// list, runtime deps first, each entry tagged with its table kind.
func (p *PackageJSON) AllDependencyOptions() OptionList {
	var opts OptionList
	for _, kind := range []DepKind{DepKindRuntime, DepKindDev, DepKindPeer, DepKindOptional} {
		tbl := p.DependencyTable(kind)
		opts = append(opts, DependencyOptions(tbl, sortedKeys(tbl), kind)...)
	}
	return opts
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// manifestEntry is one cached descriptor together with the mtime it was
// parsed at.
type manifestEntry struct {
	mtime time.Time
	pkg   *PackageJSON
}

// ManifestCache caches parsed package.json files keyed by absolute path.
// Entries whose stored mtime no longer matches the file are silently
// replaced, never explicitly evicted. Constructed once per process and
// injected into whoever reads manifests.
type ManifestCache struct {
	c *cache.Cache
}

const (
	manifestCacheExpiration = 30 * time.Minute
	manifestCacheCleanup    = 5 * time.Minute
)

// NewManifestCache creates a cache sized for interactive sessions.
func NewManifestCache() *ManifestCache {
	return &ManifestCache{c: cache.New(manifestCacheExpiration, manifestCacheCleanup)}
}

// Read returns the parsed descriptor for path, from cache when the file
// has not changed since it was stored. Malformed JSON is logged and
// degrades to an empty descriptor so the caller can still offer the menu
// paths that do not need manifest data.
func (mc *ManifestCache) Read(path string) (*PackageJSON, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	}

	if val, ok := mc.c.Get(abs); ok {
		entry := val.(manifestEntry)
		if entry.mtime.Equal(info.ModTime()) {
			return entry.pkg, nil
		}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	}

	pkg := &PackageJSON{}
	if err := json.Unmarshal(data, pkg); err != nil {
		log.Printf("Malformed %s: %v. Scripts and dependencies degrade to empty.", abs, err)
		pkg = &PackageJSON{}
	}

	mc.c.Set(abs, manifestEntry{mtime: info.ModTime(), pkg: pkg}, manifestCacheExpiration)
	return pkg, nil
}

// FindProjectRoot walks from dir upward until a directory containing
// package.json is found.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, manifestName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
