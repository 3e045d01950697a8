// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"fmt"
	"syscall"
)

// signalExitCodeBase is added to the signal number for processes terminated
// by a signal, like shells do.
const signalExitCodeBase = 128

// ErrUnknownStatus is returned if a process terminated with neither an exit
// code nor a signal recorded. This must not happen on Linux and indicates an
// internal logic error.
var ErrUnknownStatus = errors.New("process terminated without exit code or signal")

// Error is an exit code that is considered an error.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("exited with status code: %d", e)
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit code as basic int type.
func (e Error) Code() int {
	return int(e)
}

// SignalError is the signal a process was terminated by.
type SignalError syscall.Signal

func (e SignalError) Error() string {
	return fmt.Sprintf("terminated by signal: %d", int(e))
}

func (SignalError) Is(other error) bool {
	_, ok := other.(SignalError)
	return ok
}

// Signal returns the signal the process was terminated by.
func (e SignalError) Signal() syscall.Signal {
	return syscall.Signal(e)
}

// From returns an exit code based on the given error and if the error was an
// [Error] or [SignalError].
//
// If the error is nil, the exit code is 0. If the error is an [Error] the exit
// code is the return value of [Error.Code]. For a [SignalError] it is 128 plus
// the signal number. Otherwise the exit code is -1.
func From(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code(), true
	}

	var sigErr SignalError
	if errors.As(err, &sigErr) {
		return signalExitCodeBase + int(sigErr), true
	}

	return -1, false
}
