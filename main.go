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
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cybrota/yarnkit/strategies"
)

const version = "0.1.0"

// runOptions carries the command-line switches into the interactive flow.
type runOptions struct {
	dir       string
	copyOnly  bool
	printOnly bool
}

func main() {
	InitializeColors()

	asciiLogo := `
██╗   ██╗ █████╗ ██████╗ ███╗   ██╗██╗  ██╗██╗████████╗
╚██╗ ██╔╝██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝██║╚══██╔══╝
 ╚████╔╝ ███████║██████╔╝██╔██╗ ██║█████╔╝ ██║   ██║
  ╚██╔╝  ██╔══██║██╔══██╗██║╚██╗██║██╔═██╗ ██║   ██║
   ██║   ██║  ██║██║  ██║██║ ╚████║██║  ██╗██║   ██║
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝   ╚═╝
Interactive yarn command builder with live scripts, dependencies and flags [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/yarnkit)

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	opts := runOptions{}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the yarnkit menu for the current project",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the interactive menu built from package.json and executes the chosen command`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			runInteractive(opts)
		},
	}
	cmdRun.Flags().StringVar(&opts.dir, "dir", ".", "directory to locate the project from")
	cmdRun.Flags().BoolVar(&opts.copyOnly, "copy", false, "copy the final command to the clipboard instead of running it")
	cmdRun.Flags().BoolVar(&opts.printOnly, "print", false, "print the final command instead of running it")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print yarnkit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the yarnkit CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show yarnkit configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings shows the active ~/.yarnkit.yaml values, creating the file with defaults when missing`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print yarnkit version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "yarnkit",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			runInteractive(opts)
		},
	}
	rootCmd.Flags().StringVar(&opts.dir, "dir", ".", "directory to locate the project from")
	rootCmd.Flags().BoolVar(&opts.copyOnly, "copy", false, "copy the final command to the clipboard instead of running it")
	rootCmd.Flags().BoolVar(&opts.printOnly, "print", false, "print the final command instead of running it")

	rootCmd.AddCommand(cmdRun, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}

// runInteractive drives one menu session end to end: locate the project,
// read its manifest, walk the choice tree, fold the answers into a
// command and hand it to the executor (or the clipboard).
func runInteractive(opts runOptions) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = &defaultConfig
	}

	projectRoot, err := FindProjectRoot(opts.dir)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	manifests := NewManifestCache()
	pkg, err := manifests.Read(filepath.Join(projectRoot, manifestName))
	if err != nil {
		log.Fatalf("Error reading manifest: %v", err)
	}

	binary := config.Command.PackageManager
	if binary == "" {
		binary = strategies.DetectPackageManager(projectRoot)
	}

	chooser := NewTeaChooser()
	builder := NewMenuBuilder(pkg, binary, chooser, chooser.Input, NewHelpCache())

	selection, err := Resolve(builder.Root(), chooser, nil)
	if err != nil {
		if errors.Is(err, ErrSelectionAborted) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return
		}
		log.Fatalf("Error resolving selection: %v", err)
	}

	activation := NewNvmResolver().ActivationPrefix(projectRoot, config.Node.UseNvm)
	command := Normalize(selection, NormalizeOptions{
		Binary:           binary,
		BootstrapNonVerb: config.Command.BootstrapNonVerb,
		Activation:       activation,
	})

	switch {
	case opts.copyOnly:
		if err := clipboard.WriteAll(command); err != nil {
			log.Fatalf("Error copying to clipboard: %v", err)
		}
		fmt.Printf("%sCopied:%s %s\n", Green, Reset, command)
	case opts.printOnly:
		fmt.Println(command)
	default:
		fmt.Printf("%sRunning:%s %s\n", Green, Reset, command)
		if err := ExecuteCommand(projectRoot, command, config.Executor.Mode); err != nil {
			log.Fatalf("Error executing command: %v", err)
		}
	}
}
