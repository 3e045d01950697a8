// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"os/exec"
)

// Exec replaces the current process with the given command. The first
// element is the executable. It is looked up in PATH unless it contains a
// slash.
//
// It only returns in case of error.
func Exec(args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	path, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("look up %s: %w", args[0], err)
	}

	return execve(path, args)
}
