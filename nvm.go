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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/schollz/progressbar/v3"
)

const nvmrcName = ".nvmrc"

// versionPattern picks version numbers out of `nvm ls` output, which is
// decorated with arrows and aliases.
var versionPattern = regexp.MustCompile(`v?\d+(?:\.\d+)*`)

// NvmResolver decides whether a node-version activation step is needed
// and synthesizes the shell prefix for it. The seams (env lookup, command
// execution, confirmation) are injectable for tests.
type NvmResolver struct {
	LookupEnv func(string) (string, bool)
	HomeDir   func() (string, error)
	RunShell  func(script string) (string, error)
	Confirm   func(question string) bool
}

// NewNvmResolver wires the resolver to the real environment. Confirmation
// reads a y/n line from stdin.
func NewNvmResolver() *NvmResolver {
	return &NvmResolver{
		LookupEnv: os.LookupEnv,
		HomeDir:   os.UserHomeDir,
		RunShell:  runBashScript,
		Confirm:   confirmStdin,
	}
}

// Dir locates the nvm installation: NVM_DIR first, then ~/.nvm, first hit
// that exists wins. Empty when nvm is not installed.
func (r *NvmResolver) Dir() string {
	if dir, ok := r.LookupEnv("NVM_DIR"); ok && dir != "" {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	home, err := r.HomeDir()
	if err != nil {
		return ""
	}
	fallback := filepath.Join(home, ".nvm")
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}
	return ""
}

// PinnedVersion reads the version string from projectRoot/.nvmrc. Empty
// when the marker file is absent.
func (r *NvmResolver) PinnedVersion(projectRoot string) string {
	data, err := os.ReadFile(filepath.Join(projectRoot, nvmrcName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// InstalledVersions lists the node versions nvm already has.
func (r *NvmResolver) InstalledVersions(nvmDir string) []string {
	out, err := r.RunShell(fmt.Sprintf("source %s/nvm.sh && nvm ls --no-colors --no-alias", nvmDir))
	if err != nil && out == "" {
		return nil
	}
	var versions []string
	for _, line := range strings.Split(out, "\n") {
		if v := versionPattern.FindString(line); v != "" {
			versions = append(versions, strings.TrimPrefix(v, "v"))
		}
	}
	return versions
}

// versionInstalled reports whether pinned matches an installed version
// exactly or as a prefix ("18" matches "18.19.1").
func versionInstalled(pinned string, installed []string) bool {
	pinned = strings.TrimPrefix(strings.TrimSpace(pinned), "v")
	if pinned == "" {
		return false
	}
	for _, v := range installed {
		if v == pinned || strings.HasPrefix(v, pinned+".") {
			return true
		}
	}
	return false
}

// ActivationPrefix returns the shell fragment that switches the node
// version before the main command, or empty when no activation step is
// needed: useNvm off, no .nvmrc at projectRoot, or nvm not installed.
// When the pinned version is missing it offers to install it first;
// install failure is not a core error, it surfaces through the wrapped
// command's own exit code when the executor runs the && chain.
func (r *NvmResolver) ActivationPrefix(projectRoot string, useNvm bool) string {
	if !useNvm {
		return ""
	}
	pinned := r.PinnedVersion(projectRoot)
	if pinned == "" {
		return ""
	}
	nvmDir := r.Dir()
	if nvmDir == "" {
		return ""
	}

	if !versionInstalled(pinned, r.InstalledVersions(nvmDir)) {
		q := fmt.Sprintf("Node %s from %s is not installed. Install it now?", pinned, nvmrcName)
		if r.Confirm(q) {
			r.installVersion(nvmDir, pinned)
		}
	}

	script := filepath.Join(nvmDir, "nvm.sh")
	if _, err := os.Stat(script); err != nil {
		// nvm is already a shell function here; no sourcing step needed.
		return "nvm use"
	}
	return fmt.Sprintf("source %s && nvm use", script)
}

// installVersion runs nvm install synchronously with a spinner. Errors
// are deliberately swallowed: the nvm-use clause of the final command
// will fail and short-circuit the && chain if the install did not take.
func (r *NvmResolver) installVersion(nvmDir, version string) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("Installing node %s...", version)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	script := fmt.Sprintf(
		"source %s/nvm.sh && nvm install %s --reinstall-packages-from=current",
		nvmDir, version,
	)
	if out, err := r.RunShell(script); err != nil {
		fmt.Fprintf(os.Stderr, "nvm install failed: %v\n%s\n", err, out)
	}
}

func confirmStdin(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
