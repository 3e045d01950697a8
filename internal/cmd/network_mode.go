// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"slices"
)

// NetworkMode selects how the guest network is configured.
type NetworkMode string

// Network modes.
const (
	// NetworkModeDHCP configures the network with the DHCP client found in
	// the guest.
	NetworkModeDHCP NetworkMode = "dhcp"
	// NetworkModeStatic programs the static plan from the environment.
	NetworkModeStatic NetworkMode = "static"
	// NetworkModeNone leaves the network alone.
	NetworkModeNone NetworkMode = "none"
)

func (m *NetworkMode) isKnown() bool {
	knownNetworkModes := []NetworkMode{
		NetworkModeDHCP,
		NetworkModeStatic,
		NetworkModeNone,
	}

	return slices.Contains(knownNetworkModes, *m)
}

// String implements [fmt.Stringer].
func (m *NetworkMode) String() string {
	if !m.isKnown() {
		return ""
	}

	return string(*m)
}

// MarshalText implements [encoding.TextMarshaler].
func (m NetworkMode) MarshalText() ([]byte, error) {
	s := m.String()
	if s == "" {
		return nil, ErrNetworkModeInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *NetworkMode) UnmarshalText(text []byte) error {
	mode := NetworkMode(text)

	if !mode.isKnown() {
		return ErrNetworkModeInvalid
	}

	*m = mode

	return nil
}
