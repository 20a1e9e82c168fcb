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
	"encoding/json"
	"fmt"
	"strings"
)

// ListPackageVersions asks the package manager's registry for the
// published versions of pkg, newest last. yarn and npm both speak
// "<pm> info <pkg> versions --json"; pnpm mirrors npm; bun has no info
// command, so npm answers for it.
func (cr *CommandRunner) ListPackageVersions(pm, pkg string) ([]string, error) {
	if pkg == "" {
		return nil, fmt.Errorf("no package name provided")
	}
	binary := pm
	if pm == "bun" || pm == "" {
		binary = "npm"
	}

	out, err := cr.RunWithTimeout(RegistryCmdTimeout, binary, "info", pkg, "versions", "--json")
	if err != nil {
		return nil, fmt.Errorf("failed to list versions for %q: %v", pkg, err)
	}
	return parseVersionsJSON(out)
}

// parseVersionsJSON handles both answer shapes: npm/pnpm print a bare
// JSON array, yarn classic wraps it as {"type":"inspect","data":[...]}.
func parseVersionsJSON(out string) ([]string, error) {
	out = strings.TrimSpace(out)

	var plain []string
	if err := json.Unmarshal([]byte(out), &plain); err == nil {
		return plain, nil
	}

	var wrapped struct {
		Data []string `json:"data"`
	}
	// yarn emits one JSON object per line; the inspect payload is the
	// line carrying "data".
	for _, line := range strings.Split(out, "\n") {
		if err := json.Unmarshal([]byte(line), &wrapped); err == nil && len(wrapped.Data) > 0 {
			return wrapped.Data, nil
		}
	}
	return nil, fmt.Errorf("unrecognized versions payload")
}
