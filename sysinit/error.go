// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"errors"
	"fmt"
)

var (
	// ErrPanic is returned if a [Func] panicked.
	ErrPanic = errors.New("function panicked")
	// ErrNoCommand is returned by [Exec] if no command is given.
	ErrNoCommand = errors.New("no command given")
)

// MountError is returned if a mount related syscall fails. It carries the
// operation and the path it was attempted on.
type MountError struct {
	Op   string
	Path string
	Err  error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (*MountError) Is(other error) bool {
	_, ok := other.(*MountError)
	return ok
}

func (e *MountError) Unwrap() error {
	return e.Err
}
