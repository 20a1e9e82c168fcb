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
	"fmt"
	"os"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/yarnkit/strategies"
)

// maxVersionChoices caps how many registry versions the version picker
// offers, newest first.
const maxVersionChoices = 30

// InputFunc asks the user for a free-form line of text.
type InputFunc func(prompt, placeholder string) (string, error)

// MenuBuilder constructs the per-invocation choice tree from live
// manifest data and the package manager's own help output. Trees are
// built fresh each run; only the underlying caches persist.
type MenuBuilder struct {
	pkg       *PackageJSON
	binary    string
	helpMgr   *strategies.HelpStrategyManager
	helpCache *cache.Cache
	runner    *strategies.CommandRunner
	chooser   Chooser
	input     InputFunc
}

func NewMenuBuilder(pkg *PackageJSON, binary string, chooser Chooser, input InputFunc, helpCache *cache.Cache) *MenuBuilder {
	return &MenuBuilder{
		pkg:       pkg,
		binary:    binary,
		helpMgr:   strategies.NewHelpStrategyManager(),
		helpCache: helpCache,
		runner:    strategies.NewCommandRunner(),
		chooser:   chooser,
		input:     input,
	}
}

// Root builds the top-level menu. Scripts are exposed as top-level
// choices (picking "test" yields "yarn test", never "yarn run test"),
// followed by the command branches.
func (b *MenuBuilder) Root() SubMenu {
	var menu SubMenu

	for _, name := range b.pkg.ScriptNames() {
		menu = append(menu, SubMenuEntry{
			Option: Option{Label: name, Description: b.pkg.Scripts[name]},
		})
	}

	menu = append(menu,
		SubMenuEntry{
			Option: Option{Label: "add", Description: "Add a dependency"},
			Node:   Deferred(b.addNode),
		},
		SubMenuEntry{
			Option: Option{Label: "install", Description: "Install all dependencies"},
			Node:   b.flagsNode("install"),
		},
		SubMenuEntry{
			Option: Option{Label: "remove", Description: "Remove dependencies"},
			Node:   b.dependencyMenu(),
		},
		SubMenuEntry{
			Option: Option{Label: "upgrade", Description: "Upgrade dependencies"},
			Node:   b.dependencyMenu(),
		},
		SubMenuEntry{
			Option: Option{Label: "outdated", Description: "Check for outdated dependencies"},
			Node:   b.dependencyMenu(),
		},
		SubMenuEntry{
			Option: Option{Label: "why", Description: "Explain why a package is installed"},
			Node:   OptionList(b.pkg.AllDependencyOptions()),
		},
		SubMenuEntry{
			Option: Option{Label: "link", Description: "Register this package for linking"},
		},
		SubMenuEntry{
			Option: Option{Label: "unlink", Description: "Unlink dependencies"},
			Node:   b.dependencyMenu(),
		},
		SubMenuEntry{
			Option: Option{Label: "info", Description: "Show registry info for a package"},
			Node:   Deferred(b.packageInputNode("Package name")),
		},
		SubMenuEntry{
			Option: Option{Label: "cache", Description: "Yarn cache commands"},
			Node: SubMenu{
				{Option: Option{Label: "list", Description: "List cached packages"}},
				{Option: Option{Label: "dir", Description: "Print the cache directory"}},
				{Option: Option{Label: "clean", Description: "Clear the cache"}},
			},
		},
		SubMenuEntry{
			Option: Option{Label: "global", Description: "Global package commands"},
			Node: SubMenu{
				{Option: Option{Label: "add", Description: "Add a global package"}, Node: Deferred(b.packageInputNode("Global package(s) to add"))},
				{Option: Option{Label: "remove", Description: "Remove a global package"}, Node: Deferred(b.packageInputNode("Global package(s) to remove"))},
				{Option: Option{Label: "list", Description: "List global packages"}},
				{Option: Option{Label: "bin", Description: "Print the global bin directory"}},
			},
		},
		SubMenuEntry{
			Option: Option{Label: "licenses", Description: "Dependency license tools"},
			Node: SubMenu{
				{Option: Option{Label: "list", Description: "List dependency licenses"}},
				{Option: Option{Label: "generate-disclaimer", Description: "Emit a license disclaimer"}},
			},
		},
		SubMenuEntry{
			Option: Option{Label: "workspaces", Description: "Workspace commands"},
			Node: SubMenu{
				{Option: Option{Label: "info", Description: "Show workspace dependency tree"}},
				{Option: Option{Label: "run", Description: "Run a script in every workspace"}, Node: Deferred(b.packageInputNode("Script to run"))},
			},
		},
		SubMenuEntry{Option: Option{Label: "audit", Description: "Audit dependencies for vulnerabilities"}},
		SubMenuEntry{Option: Option{Label: "autoclean", Description: "Clean unnecessary dependency files"}},
		SubMenuEntry{Option: Option{Label: "check", Description: "Verify dependency integrity"}},
		SubMenuEntry{Option: Option{Label: "dedupe", Description: "Deduplicate dependencies"}},
		SubMenuEntry{Option: Option{Label: "init", Description: "Create a new package.json"}, Node: b.flagsNode("init")},
		SubMenuEntry{Option: Option{Label: "list", Description: "List installed packages"}},
		SubMenuEntry{Option: Option{Label: "login", Description: "Store registry credentials"}},
		SubMenuEntry{Option: Option{Label: "logout", Description: "Clear registry credentials"}},
		SubMenuEntry{Option: Option{Label: "pack", Description: "Create a package tarball"}},
		SubMenuEntry{Option: Option{Label: "publish", Description: "Publish to the registry"}, Node: b.flagsNode("publish")},
		SubMenuEntry{Option: Option{Label: "upgrade-interactive", Description: "Interactive dependency upgrade"}, Node: b.flagsNode("upgrade-interactive")},
		SubMenuEntry{Option: Option{Label: "version", Description: "Bump the package version"}, Node: b.flagsNode("version")},
	)

	return menu
}

// dependencyMenu offers every declared dependency; marking several merges
// them into the command, so "remove lodash react" is one pass.
func (b *MenuBuilder) dependencyMenu() MenuNode {
	opts := b.pkg.AllDependencyOptions()
	menu := make(SubMenu, 0, len(opts))
	for _, opt := range opts {
		menu = append(menu, SubMenuEntry{Option: opt})
	}
	return menu
}

// flagsNode scrapes "<binary> <verb> --help" lazily and offers the long
// flags for marking. Scrape failure degrades to no flag step.
func (b *MenuBuilder) flagsNode(verb string) Deferred {
	return func() (MenuNode, error) {
		key := b.binary + " " + verb
		helpTxt := GetHelpPage(b.helpCache, key)
		if helpTxt == "" {
			out, err := b.helpMgr.GetHelp([]string{b.binary, verb})
			if err != nil {
				return Terminal(""), nil
			}
			helpTxt = out
			CacheHelpPage(b.helpCache, key, helpTxt)
		}
		flags := strategies.ScrapeFlags(helpTxt)
		if len(flags) == 0 {
			return Terminal(""), nil
		}
		return FlagOptions(flags), nil
	}
}

// packageInputNode asks for free-form text and turns it into tokens.
func (b *MenuBuilder) packageInputNode(prompt string) Deferred {
	return func() (MenuNode, error) {
		line, err := b.input(prompt, "")
		if err != nil {
			return nil, err
		}
		parts, err := ParseAddInput(line, b.binary)
		if err != nil || len(parts) == 0 {
			return Terminal(strings.TrimSpace(line)), nil
		}
		return TokenBatch(parts), nil
	}
}

// addNode drives the add-dependency flow: free-form input, echo
// stripping, and an optional registry version pick for a single package.
func (b *MenuBuilder) addNode() (MenuNode, error) {
	line, err := b.input("Package(s) to add", "lodash react@18 @types/node")
	if err != nil {
		return nil, err
	}
	parts, err := ParseAddInput(line, b.binary)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", line, err)
	}
	if len(parts) == 0 {
		return Terminal(""), nil
	}

	// The version picker only makes sense for one unversioned package.
	if len(parts) == 1 && !strings.Contains(parts[0][1:], "@") {
		node, ok, err := b.versionPickNode(parts[0])
		if err != nil {
			return nil, err
		}
		if ok {
			return node, nil
		}
	}
	return TokenBatch(parts), nil
}

// versionPickNode asks whether to query the registry for pkg's published
// versions, and builds a pick list from the answer. Declining or a failed
// query leaves the bare package name in place.
func (b *MenuBuilder) versionPickNode(pkg string) (MenuNode, bool, error) {
	q := fmt.Sprintf("Pick a published version of %s?", pkg)
	choice, err := b.chooser.Choose(q, []Option{
		{Label: "no", Description: "Use the latest version"},
		{Label: "yes", Description: "Choose from registry versions"},
	})
	if err != nil {
		return nil, false, err
	}
	if choice.Multi || choice.Label != "yes" {
		return nil, false, nil
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("Fetching versions of %s...", pkg)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
	versions, verr := b.runner.ListPackageVersions(b.binary, pkg)
	bar.Finish()
	if verr != nil || len(versions) == 0 {
		fmt.Fprintf(os.Stderr, "Could not list versions of %s: %v\n", pkg, verr)
		return nil, false, nil
	}

	// Newest first, capped.
	menu := make(SubMenu, 0, maxVersionChoices)
	for i := len(versions) - 1; i >= 0 && len(menu) < maxVersionChoices; i-- {
		menu = append(menu, SubMenuEntry{
			Option: Option{
				Label:   fmt.Sprintf("%s@%s", pkg, versions[i]),
				Version: versions[i],
			},
		})
	}
	return menu, true, nil
}
