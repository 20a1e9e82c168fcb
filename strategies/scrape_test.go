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

import "testing"

func TestScrapeFlags(t *testing.T) {
	help := `
  Usage: yarn install [--silent] [--offline]

  Options:

    --silent                   run without printing installation log
    --offline                  use the local cache only
    --frozen-lockfile          don't generate a lockfile
`
	flags := ScrapeFlags(help)

	want := []ScrapedFlag{
		{Flag: "--silent", Description: "run without printing installation log"},
		{Flag: "--offline", Description: "use the local cache only"},
		{Flag: "--frozen-lockfile", Description: "don't generate a lockfile"},
	}
	if len(flags) != len(want) {
		t.Fatalf("Expected %d flags, got %d: %v", len(want), len(flags), flags)
	}
	for i, w := range want {
		if flags[i] != w {
			t.Errorf("Flag %d = %+v, want %+v", i, flags[i], w)
		}
	}
}

func TestScrapeFlagsDuplicateKeepsDefinition(t *testing.T) {
	// The usage summary repeats --force without a description; the
	// options-section line is the one that must survive.
	help := `Usage: yarn cache clean [--force]

    --force        clear the cache even if it looks fresh`
	flags := ScrapeFlags(help)

	if len(flags) != 1 {
		t.Fatalf("Expected 1 flag after dedupe, got %d: %v", len(flags), flags)
	}
	if flags[0].Description != "clear the cache even if it looks fresh" {
		t.Errorf("Definitional mention must win, got %+v", flags[0])
	}
}

func TestScrapeFlagsNoFlags(t *testing.T) {
	if flags := ScrapeFlags("nothing to see here\njust prose"); len(flags) != 0 {
		t.Errorf("Expected no flags, got %v", flags)
	}
}

func TestScrapeFlagsDescriptionOnSingleSpace(t *testing.T) {
	// A single space is not a column separator; the whole remainder is
	// the description.
	flags := ScrapeFlags("    --verbose output everything")
	if len(flags) != 1 || flags[0].Description != "output everything" {
		t.Errorf("Unexpected result: %v", flags)
	}
}

func TestRemoveOverstrike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"N\bNA\bAM\bME\bE", "NAME"}, // bold
		{"_\bf_\bo_\bo", "foo"},      // underline
		{"plain text", "plain text"},
		{"A\bB rest", "B rest"},
	}

	for _, tt := range tests {
		if got := RemoveOverstrike(tt.in); got != tt.want {
			t.Errorf("RemoveOverstrike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
