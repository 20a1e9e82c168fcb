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
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		opts   NormalizeOptions
		want   string
	}{
		{
			name:   "blanks dropped and tokens trimmed",
			tokens: []string{"", "  add", "lodash "},
			want:   "yarn add lodash",
		},
		{
			name:   "verb gets binary prepended",
			tokens: []string{"install"},
			want:   "yarn install",
		},
		{
			name:   "empty sequence falls back to bare binary",
			tokens: []string{},
			want:   "yarn",
		},
		{
			name:   "binary already present is left alone",
			tokens: []string{"yarn add lodash"},
			want:   "yarn add lodash",
		},
		{
			name:   "script shortcut runs directly by default",
			tokens: []string{"build"},
			want:   "yarn build",
		},
		{
			name:   "script shortcut bootstraps when configured",
			tokens: []string{"build"},
			opts:   NormalizeOptions{BootstrapNonVerb: true},
			want:   "yarn && yarn build",
		},
		{
			name:   "verb never bootstraps",
			tokens: []string{"install"},
			opts:   NormalizeOptions{BootstrapNonVerb: true},
			want:   "yarn install",
		},
		{
			name:   "alternate binary",
			tokens: []string{"install"},
			opts:   NormalizeOptions{Binary: "npm"},
			want:   "npm install",
		},
		{
			name:   "activation prefix chains in front",
			tokens: []string{"test"},
			opts:   NormalizeOptions{Activation: "source /home/u/.nvm/nvm.sh && nvm use"},
			want:   "source /home/u/.nvm/nvm.sh && nvm use && yarn test",
		},
		{
			name:   "activation with empty selection",
			tokens: nil,
			opts:   NormalizeOptions{Activation: "nvm use"},
			want:   "nvm use && yarn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.tokens, tt.opts)
			if got != tt.want {
				t.Errorf("Normalize(%v) = %q, want %q", tt.tokens, got, tt.want)
			}
			if strings.Contains(got, "  ") {
				t.Errorf("Normalize(%v) produced doubled spaces: %q", tt.tokens, got)
			}
		})
	}
}

func TestNormalizeIsIdempotentOnOwnOutput(t *testing.T) {
	out := Normalize([]string{"add", "lodash"}, NormalizeOptions{})
	again := Normalize([]string{out}, NormalizeOptions{})
	if out != again {
		t.Errorf("Re-normalizing %q changed it to %q", out, again)
	}
}

func TestIsYarnVerb(t *testing.T) {
	for _, verb := range []string{"add", "install", "test", "upgrade-interactive", "workspaces"} {
		if !IsYarnVerb(verb) {
			t.Errorf("Expected %q to be a recognized verb", verb)
		}
	}
	for _, word := range []string{"build", "lint", "start", "yarn", ""} {
		if IsYarnVerb(word) {
			t.Errorf("Expected %q to not be a recognized verb", word)
		}
	}
}

func TestParseAddInput(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"lodash", []string{"lodash"}},
		{"lodash react@18 @types/node", []string{"lodash", "react@18", "@types/node"}},
		// Pasted full command lines lose their binary and verb echoes.
		{"yarn add lodash", []string{"lodash"}},
		{"add lodash", []string{"lodash"}},
		{"  ", []string{}},
	}

	for _, tt := range tests {
		got, err := ParseAddInput(tt.input, "yarn")
		if err != nil {
			t.Errorf("ParseAddInput(%q) failed: %v", tt.input, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseAddInput(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseAddInput(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseAddInputBadQuoting(t *testing.T) {
	if _, err := ParseAddInput(`lodash "unclosed`, "yarn"); err == nil {
		t.Errorf("Expected error for unbalanced quotes")
	}
}
