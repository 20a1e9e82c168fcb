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
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/creack/pty"
)

// ExecuteCommand runs the resolved command in projectDir. Mode "pty"
// opens a pseudo-terminal session; anything else runs the command as a
// background shell job whose output lands in a buffer file named from
// the project path. PTY unavailability falls back to background mode.
func ExecuteCommand(projectDir, command, mode string) error {
	if mode == "pty" {
		if err := execCommandInPTY(projectDir, command); err == nil {
			return nil
		}
	}
	return execCommandInBackground(projectDir, command)
}

func execCommandInPTY(dir, command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir

	// Start the command in a pseudo-terminal.
	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}
	defer ptyFile.Close()

	// Set up signal handling (we forward SIGINT and SIGTERM).
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		for sig := range sigChan {
			if cmd.Process != nil {
				// Forward the signal to the entire process group.
				if err := syscall.Kill(-cmd.Process.Pid, sig.(syscall.Signal)); err != nil {
					if err != syscall.ESRCH && err != syscall.EPERM {
						fmt.Fprintf(os.Stderr, "failed to forward signal %v: %v\n", sig, err)
					}
				}
			}
		}
	}()

	// Copy data between the PTY and the real terminal.
	go func() {
		_, _ = io.Copy(os.Stdout, ptyFile)
	}()

	// Wait for the command to complete.
	if err := cmd.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "Command error:", err)
	}

	// Clean up signal handling.
	signal.Stop(sigChan)
	close(sigChan)
	return nil
}

// bufferFileName derives a stable log-buffer name from the project path,
// so re-runs for the same project land in the same file.
func bufferFileName(projectDir string) string {
	base := filepath.Base(projectDir)
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	return fmt.Sprintf("yarnkit-%s.log", clean)
}

func execCommandInBackground(dir, command string) error {
	logPath := filepath.Join(os.TempDir(), bufferFileName(dir))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output buffer %s: %w", logPath, err)
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}
	fmt.Printf("Running in background. Output: %s\n", logPath)

	go func() {
		cmd.Wait()
		logFile.Close()
	}()
	return nil
}

// runBashScript runs a shell fragment through bash so nvm's shell
// function machinery is available, returning combined output.
func runBashScript(script string) (string, error) {
	out, err := exec.Command("bash", "-lc", script).CombinedOutput()
	return string(out), err
}
