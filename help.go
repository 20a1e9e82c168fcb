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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Yarnkit %s**

Build and run yarn commands for the current project without leaving the keyboard.
Scripts, dependencies and command flags are read live from package.json and
yarn's own help output, then folded into a single command line.

Built with Go %s

# 1. Features
* Project scripts offered as top-level shortcuts ("test" runs as "yarn test")
* Add dependencies with an optional registry version picker
* Remove, upgrade or unlink several dependencies in one pass (mark with space)
* Flag completion scraped from "yarn <command> --help" at selection time
* Automatic nvm activation when the project carries a .nvmrc
* Runs in a pseudo-terminal or as a background job with a per-project log buffer

# 2. Supported Platforms
* Linux/Unix
* Mac OSX

# Supported package managers
* yarn (default)
* npm, pnpm, bun (picked from the project's lock file)

# Please be aware
* The --copy flag on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
