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

package strategies

import (
	"regexp"
	"strings"
)

// ScrapedFlag is one long flag pulled out of help text, with whatever
// description followed it on the same line.
type ScrapedFlag struct {
	Flag        string
	Description string
}

// flagPattern matches long option tokens the way package-manager help
// output prints them.
var flagPattern = regexp.MustCompile(`--[a-z][a-z-]*`)

// descSplit separates a flag column from its description column: help
// output pads the two with at least two spaces or a tab.
var descSplit = regexp.MustCompile(`\s{2,}|\t`)

// ScrapeFlags extracts --flags and their same-line trailing descriptions
// from help output. Lines are scanned in reverse and the collected flags
// re-reversed: when a flag appears twice (usage summaries repeat the
// flags the options section defines), the later, definitional mention
// keeps its description and the earlier bare one is dropped.
func ScrapeFlags(helpText string) []ScrapedFlag {
	lines := strings.Split(helpText, "\n")
	seen := make(map[string]struct{})
	var reversed []ScrapedFlag

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		loc := flagPattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		flag := line[loc[0]:loc[1]]
		if _, dup := seen[flag]; dup {
			continue
		}
		seen[flag] = struct{}{}

		rest := line[loc[1]:]
		desc := strings.TrimSpace(rest)
		if m := descSplit.FindStringIndex(rest); m != nil {
			desc = strings.TrimSpace(rest[m[1]:])
		}
		reversed = append(reversed, ScrapedFlag{Flag: flag, Description: desc})
	}

	// Re-reverse to restore the order the help text printed them in.
	out := make([]ScrapedFlag, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		out = append(out, reversed[i])
	}
	return out
}

// RemoveOverstrike strips man-style backspace overstrike sequences
// (X\bX bolding, _\bX underlining) from help output.
func RemoveOverstrike(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) && runes[i+1] == '\b' {
			// Drop the struck character and the backspace; the
			// character after the backspace survives.
			i++
			continue
		}
		if runes[i] == '\b' {
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
