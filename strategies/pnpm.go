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

// PnpmHelpStrategy handles pnpm commands
type PnpmHelpStrategy struct {
	cmdRunner *CommandRunner
}

func NewPnpmHelpStrategy(cmdRunner *CommandRunner) *PnpmHelpStrategy {
	return &PnpmHelpStrategy{cmdRunner: cmdRunner}
}

func (p *PnpmHelpStrategy) SupportsCommand(baseCmd string) bool {
	return baseCmd == "pnpm"
}

func (p *PnpmHelpStrategy) Priority() int {
	return 1
}

func (p *PnpmHelpStrategy) GetHelp(cmdParts []string) (string, error) {
	cmd := NewCommand(cmdParts)

	if !cmd.HasSubCommand(1) {
		return p.cmdRunner.Run("pnpm", "help")
	}

	// pnpm prints sub-command help with --help only
	subCmd := cmd.GetSubCommand(0)
	return p.cmdRunner.Run("pnpm", subCmd, "--help")
}
