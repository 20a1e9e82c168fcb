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

// YarnHelpStrategy handles yarn commands
type YarnHelpStrategy struct {
	cmdRunner *CommandRunner
}

func NewYarnHelpStrategy(cmdRunner *CommandRunner) *YarnHelpStrategy {
	return &YarnHelpStrategy{cmdRunner: cmdRunner}
}

func (y *YarnHelpStrategy) SupportsCommand(baseCmd string) bool {
	return baseCmd == "yarn"
}

func (y *YarnHelpStrategy) Priority() int {
	return 1
}

func (y *YarnHelpStrategy) GetHelp(cmdParts []string) (string, error) {
	cmd := NewCommand(cmdParts)

	if !cmd.HasSubCommand(1) {
		return y.cmdRunner.Run("yarn", "help")
	}

	subCmd := cmd.GetSubCommand(0)
	if out, err := y.cmdRunner.Run("yarn", "help", subCmd); err == nil && out != "" {
		return RemoveOverstrike(out), nil
	}

	// Fallback to yarn <subcommand> --help
	return y.cmdRunner.Run("yarn", subCmd, "--help")
}
