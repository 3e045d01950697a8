// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if help or the version was requested.
	ErrHelp = flag.ErrHelp
	// ErrReadBuildInfo is returned if the build info can not be read.
	ErrReadBuildInfo = errors.New("failed to read build info")
	// ErrNetworkModeInvalid is returned for unknown network modes.
	ErrNetworkModeInvalid = errors.New("unknown network mode")
	// ErrUnexpectedArgs is returned for positional arguments that are not
	// accepted.
	ErrUnexpectedArgs = errors.New("unexpected positional arguments")
	// ErrIncompleteGuestContext is returned if a foreign network namespace is
	// given without the guest root and UTS namespace, or the other way round.
	ErrIncompleteGuestContext = errors.New("-netns, -root and -uts must be used together")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
