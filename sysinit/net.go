// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"context"
	"fmt"
)

// SetInterfaceUp brings the interface with the given name up.
//
// The kernel configures the loopback address automatically, so bringing "lo"
// up is sufficient for local connectivity.
func SetInterfaceUp(name string) error {
	if err := setInterfaceUp(name); err != nil {
		return fmt.Errorf("set interface %s up: %w", name, err)
	}

	return nil
}

// WithInterfaceUp returns a setup [Func] that wraps [SetInterfaceUp] and can
// be used with [Run].
func WithInterfaceUp(name string) Func {
	return func(_ context.Context) error {
		return SetInterfaceUp(name)
	}
}
