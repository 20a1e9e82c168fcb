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
	"strings"

	"github.com/mattn/go-shellwords"
)

// yarnVerbs is the closed vocabulary of first-word commands yarn itself
// understands. Anything outside it is treated as a script shortcut.
var yarnVerbs = map[string]struct{}{
	"add": {}, "audit": {}, "autoclean": {}, "bin": {}, "cache": {},
	"check": {}, "config": {}, "create": {}, "dedupe": {},
	"generate-lock-entry": {}, "global": {}, "help": {}, "import": {},
	"info": {}, "init": {}, "install": {}, "licenses": {}, "link": {},
	"list": {}, "lockfile": {}, "login": {}, "logout": {}, "outdated": {},
	"owner": {}, "pack": {}, "policies": {}, "prune": {}, "publish": {},
	"remove": {}, "run": {}, "self-update": {}, "tag": {}, "team": {},
	"test": {}, "unlink": {}, "upgrade": {}, "upgrade-interactive": {},
	"version": {}, "versions": {}, "why": {}, "workspace": {},
	"workspaces": {},
}

// IsYarnVerb reports whether word is in the yarn command vocabulary.
func IsYarnVerb(word string) bool {
	_, ok := yarnVerbs[word]
	return ok
}

// NormalizeOptions controls command synthesis.
type NormalizeOptions struct {
	// Binary is the package manager executable, "yarn" when empty.
	Binary string
	// BootstrapNonVerb inserts "<binary> && " before commands whose first
	// word is not a recognized verb (script shortcuts), so dependencies
	// get installed before the script runs.
	BootstrapNonVerb bool
	// Activation is the version-manager activation prefix, joined in
	// front with " && " when non-empty.
	Activation string
}

// Normalize folds an ordered token sequence into the final command line:
// blanks dropped, tokens trimmed and space-joined, the package-manager
// binary prepended when absent, and the activation prefix chained in
// front. An empty sequence falls back to the bare binary so an empty
// string is never handed to the executor.
func Normalize(tokens []string, opts NormalizeOptions) string {
	binary := opts.Binary
	if binary == "" {
		binary = "yarn"
	}

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			kept = append(kept, tok)
		}
	}
	cmd := strings.TrimSpace(strings.Join(kept, " "))

	switch {
	case cmd == "":
		cmd = binary
	case firstWord(cmd) == binary:
		// Already carries the binary, leave alone.
	case IsYarnVerb(firstWord(cmd)):
		cmd = binary + " " + cmd
	case opts.BootstrapNonVerb:
		cmd = binary + " && " + binary + " " + cmd
	default:
		cmd = binary + " " + cmd
	}

	if act := strings.TrimSpace(opts.Activation); act != "" {
		cmd = act + " && " + cmd
	}
	return strings.TrimSpace(cmd)
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseAddInput splits a free-form "add" input into package tokens. Users
// often paste a full "yarn add lodash" line, so leading binary and "add"
// echoes are dropped before the remainder is re-split with shell quoting
// rules.
func ParseAddInput(input, binary string) ([]string, error) {
	if binary == "" {
		binary = "yarn"
	}
	parts, err := shellwords.Parse(input)
	if err != nil {
		return nil, err
	}
	for len(parts) > 0 && (parts[0] == binary || parts[0] == "add") {
		parts = parts[1:]
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
