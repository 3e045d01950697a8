// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package staticnet

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVar is returned if a required environment variable is not
	// set.
	ErrMissingVar = errors.New("missing environment variable")
	// ErrInvalidAddress is returned if an environment variable does not hold
	// a valid IPv4 address.
	ErrInvalidAddress = errors.New("invalid IPv4 address")
	// ErrChannelClosed is returned for requests on a closed [Channel].
	ErrChannelClosed = errors.New("netlink channel closed")
	// ErrRequestInFlight is returned by [Channel.Close] if a request is still
	// running on the pump goroutine.
	ErrRequestInFlight = errors.New("netlink request still in flight")
)

// EnvError is returned if an environment variable of the static network plan
// is missing or invalid.
type EnvError struct {
	Name string
	Err  error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (*EnvError) Is(other error) bool {
	_, ok := other.(*EnvError)
	return ok
}

func (e *EnvError) Unwrap() error {
	return e.Err
}
