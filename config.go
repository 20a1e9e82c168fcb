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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type CommandConfig struct {
	// PackageManager overrides lock-file detection when set.
	PackageManager string `yaml:"package_manager"`
	// BootstrapNonVerb inserts "yarn && " before script-shortcut commands.
	BootstrapNonVerb bool `yaml:"bootstrap_non_verb"`
}

type NodeConfig struct {
	UseNvm bool `yaml:"use_nvm"`
}

type ExecutorConfig struct {
	// Mode is "pty" or "background".
	Mode string `yaml:"mode"`
}

type Config struct {
	Command  CommandConfig  `yaml:"command"`
	Node     NodeConfig     `yaml:"node"`
	Executor ExecutorConfig `yaml:"executor"`
}

var defaultConfig = Config{
	Command: CommandConfig{
		PackageManager:   "",
		BootstrapNonVerb: false,
	},
	Node: NodeConfig{
		UseNvm: true,
	},
	Executor: ExecutorConfig{
		Mode: "pty",
	},
}

func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".yarnkit.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	config := defaultConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".yarnkit.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Yarnkit Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")
	fmt.Printf("📍 Config file: %s\n\n", configPath)

	pm := config.Command.PackageManager
	if pm == "" {
		pm = "auto (lock-file detection)"
	}
	fmt.Printf("📦 %scommand.package_manager%s: %s\n", Green, Reset, pm)
	fmt.Printf("🔗 %scommand.bootstrap_non_verb%s: %t\n", Green, Reset, config.Command.BootstrapNonVerb)
	fmt.Printf("   When true, script shortcuts run as \"yarn && yarn <script>\"\n\n")
	fmt.Printf("🟢 %snode.use_nvm%s: %t\n", Green, Reset, config.Node.UseNvm)
	fmt.Printf("   Prepends nvm activation when a .nvmrc is present\n\n")
	fmt.Printf("🖥  %sexecutor.mode%s: %s\n", Green, Reset, config.Executor.Mode)
	fmt.Printf("   \"pty\" runs in a pseudo-terminal, \"background\" logs to a buffer file\n")
}
