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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpStrategyManager(t *testing.T) {
	manager := NewHelpStrategyManager()

	// Test with a command that should be handled by the yarn strategy.
	cmdParts := []string{"yarn", "install"}
	help, err := manager.GetHelp(cmdParts)

	// The test should not fail if yarn is not installed
	if err != nil && !strings.Contains(err.Error(), "failed to get help for command") {
		t.Errorf("Unexpected error getting help: %v", err)
	}

	// If we got help, it should not be empty
	if err == nil && help == "" {
		t.Errorf("Expected non-empty help text")
	}
}

func TestHelpStrategyManagerEmptyCommand(t *testing.T) {
	manager := NewHelpStrategyManager()
	if _, err := manager.GetHelp([]string{}); err == nil {
		t.Errorf("Expected error for empty command")
	}
}

func TestCommand(t *testing.T) {
	cmdParts := []string{"yarn", "cache", "clean"}
	cmd := NewCommand(cmdParts)

	if cmd.BaseCmd != "yarn" {
		t.Errorf("Expected BaseCmd to be 'yarn', got '%s'", cmd.BaseCmd)
	}

	if !cmd.HasSubCommand(2) {
		t.Errorf("Expected command to have at least 2 sub-commands")
	}

	if cmd.GetSubCommand(0) != "cache" {
		t.Errorf("Expected first sub-command to be 'cache', got '%s'", cmd.GetSubCommand(0))
	}

	if cmd.GetSubCommand(1) != "clean" {
		t.Errorf("Expected second sub-command to be 'clean', got '%s'", cmd.GetSubCommand(1))
	}

	if cmd.FullName != "yarn cache clean" {
		t.Errorf("Expected FullName to be 'yarn cache clean', got '%s'", cmd.FullName)
	}
}

func TestDetectPackageManager(t *testing.T) {
	tests := []struct {
		lockFile string
		want     string
	}{
		{"bun.lockb", "bun"},
		{"pnpm-lock.yaml", "pnpm"},
		{"yarn.lock", "yarn"},
		{"package-lock.json", "npm"},
	}

	for _, tt := range tests {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, tt.lockFile), []byte(""), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", tt.lockFile, err)
		}
		if got := DetectPackageManager(dir); got != tt.want {
			t.Errorf("DetectPackageManager with %s = %q, want %q", tt.lockFile, got, tt.want)
		}
	}
}

func TestDetectPackageManagerDefault(t *testing.T) {
	if got := DetectPackageManager(t.TempDir()); got != "yarn" {
		t.Errorf("Expected yarn default without a lock file, got %q", got)
	}
}

func TestDetectPackageManagerPrecedence(t *testing.T) {
	// A migrated repo can carry both lock files; the unambiguous one wins.
	dir := t.TempDir()
	for _, f := range []string{"pnpm-lock.yaml", "yarn.lock"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte(""), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", f, err)
		}
	}
	if got := DetectPackageManager(dir); got != "pnpm" {
		t.Errorf("Expected pnpm to win over yarn, got %q", got)
	}
}
