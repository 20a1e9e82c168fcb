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

func TestParseVersionsJSONBareArray(t *testing.T) {
	// npm and pnpm answer with a plain JSON array.
	got, err := parseVersionsJSON(`["1.0.0", "1.1.0", "2.0.0"]`)
	if err != nil {
		t.Fatalf("parseVersionsJSON failed: %v", err)
	}
	if len(got) != 3 || got[2] != "2.0.0" {
		t.Errorf("Unexpected versions: %v", got)
	}
}

func TestParseVersionsJSONYarnWrapped(t *testing.T) {
	// yarn classic emits one JSON object per line and wraps the payload.
	out := `{"type":"activityStart","data":{"id":0}}
{"type":"inspect","data":["4.17.20","4.17.21"]}
{"type":"activityEnd","data":{"id":0}}`

	got, err := parseVersionsJSON(out)
	if err != nil {
		t.Fatalf("parseVersionsJSON failed: %v", err)
	}
	if len(got) != 2 || got[1] != "4.17.21" {
		t.Errorf("Unexpected versions: %v", got)
	}
}

func TestParseVersionsJSONGarbage(t *testing.T) {
	if _, err := parseVersionsJSON("not json at all"); err == nil {
		t.Errorf("Expected error for unrecognized payload")
	}
}

func TestListPackageVersionsEmptyName(t *testing.T) {
	cr := NewCommandRunner()
	if _, err := cr.ListPackageVersions("yarn", ""); err == nil {
		t.Errorf("Expected error for empty package name")
	}
}
