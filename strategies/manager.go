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
	"fmt"
	"sort"
)

// HelpStrategyManager manages the per-package-manager help strategies
type HelpStrategyManager struct {
	strategies []HelpStrategy
	cmdRunner  *CommandRunner
}

// NewHelpStrategyManager creates a new strategy manager with all strategies
func NewHelpStrategyManager() *HelpStrategyManager {
	cmdRunner := NewCommandRunner()

	manager := &HelpStrategyManager{
		cmdRunner: cmdRunner,
	}

	manager.RegisterStrategy(NewYarnHelpStrategy(cmdRunner))
	manager.RegisterStrategy(NewNpmHelpStrategy(cmdRunner))
	manager.RegisterStrategy(NewPnpmHelpStrategy(cmdRunner))
	manager.RegisterStrategy(NewBunHelpStrategy(cmdRunner))
	manager.RegisterStrategy(NewGenericHelpStrategy(cmdRunner))

	return manager
}

// RegisterStrategy registers a new help strategy
func (hsm *HelpStrategyManager) RegisterStrategy(strategy HelpStrategy) {
	hsm.strategies = append(hsm.strategies, strategy)
}

// GetHelp gets help for a command using the best available strategy
func (hsm *HelpStrategyManager) GetHelp(cmdParts []string) (string, error) {
	if len(cmdParts) == 0 {
		return "", fmt.Errorf("no command provided")
	}

	cmd := NewCommand(cmdParts)

	var supported []HelpStrategy
	for _, strategy := range hsm.strategies {
		if strategy.SupportsCommand(cmd.BaseCmd) {
			supported = append(supported, strategy)
		}
	}
	sort.SliceStable(supported, func(i, j int) bool {
		return supported[i].Priority() < supported[j].Priority()
	})

	var lastErr error
	for _, strategy := range supported {
		if help, err := strategy.GetHelp(cmdParts); err == nil && help != "" {
			return help, nil
		} else {
			lastErr = err
		}
	}

	if len(supported) == 0 && lastErr == nil {
		return "", fmt.Errorf("no help strategy found for command %q", cmd.FullName)
	}

	return "", fmt.Errorf("failed to get help for command %q: %v", cmd.FullName, lastErr)
}

// ScrapeCommandFlags fetches help for cmdParts and extracts its long
// flags, so menus can offer them as choices at resolution time.
func (hsm *HelpStrategyManager) ScrapeCommandFlags(cmdParts []string) ([]ScrapedFlag, error) {
	help, err := hsm.GetHelp(cmdParts)
	if err != nil {
		return nil, err
	}
	return ScrapeFlags(help), nil
}
