// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package opener

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/apex/log"
)

// Prompt offers to open the created files and launches the chosen ones. It
// is a no-op when nothing was created or stdin is not a terminal (piped
// runs must not hang on a prompt).
func Prompt(files []string) {
	if len(files) == 0 || !stdinIsTerminal() {
		return
	}

	for _, file := range selectFiles(files) {
		if err := Open(file); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// Open launches path with the platform file opener without waiting for the
// viewer to exit.
func Open(path string) error {
	cmd, err := openerCommand(path)
	if err != nil {
		return err
	}

	log.Debugf("opening file: cmd=%v", cmd.Args)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	// The viewer outlives us; releasing avoids a zombie until then.
	return cmd.Process.Release()
}

func openerCommand(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path), nil
	default:
		if _, err := exec.LookPath("xdg-open"); err != nil {
			return nil, fmt.Errorf("no file opener available: %w", err)
		}
		return exec.Command("xdg-open", path), nil
	}
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
