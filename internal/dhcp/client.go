// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dhcp

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
)

// NetworkInterface is the guest network interface the DHCP client is bound
// to.
const NetworkInterface = "eth0"

// Client is a DHCP client implementation that can be run.
type Client struct {
	// Name is the executable name looked up in PATH.
	Name string

	// Fallback is the absolute path checked if Name is not found in PATH.
	Fallback string

	// Args are the arguments the client is run with.
	Args []string
}

// probes returns the locations to check for the client in priority order.
func (c Client) probes() []string {
	return []string{c.Name, c.Fallback}
}

// DefaultClients returns the known DHCP clients in priority order.
func DefaultClients() []Client {
	return []Client{
		{
			Name:     "dhcpcd",
			Fallback: "/sbin/dhcpcd",
			// Do not let dhcpcd update the resolver config via the legacy
			// resolvconf hook.
			Args: []string{"-M", NetworkInterface, "-e", "resolvconf=does-not-exist"},
		},
		{
			Name:     "dhclient",
			Fallback: "/sbin/dhclient",
		},
	}
}

// LookPathFunc resolves an executable name or path like [exec.LookPath].
type LookPathFunc func(file string) (string, error)

// Selection is a [Client] found at Path.
type Selection struct {
	Client
	Path string
}

// Select returns the first of the given clients that is found.
//
// Each client is first looked up by name in PATH and then at its fallback
// path. Probing stops at the first match. Only the absence of an executable
// advances to the next probe. A file that is not executable or is only found
// relative to the working directory counts as absent.
// Any other lookup error is returned. If no client is found, [ErrNoClient] is
// returned.
func Select(clients []Client, lookPath LookPathFunc) (Selection, error) {
	for _, client := range clients {
		for _, probe := range client.probes() {
			if probe == "" {
				continue
			}

			path, err := lookPath(probe)
			if err == nil {
				return Selection{Client: client, Path: path}, nil
			}

			if !isAbsent(err) {
				return Selection{}, fmt.Errorf("check existence of `%s`: %w", probe, err)
			}

			slog.Debug("DHCP client not found", slog.String("probe", probe))
		}
	}

	return Selection{}, ErrNoClient
}

// isAbsent reports whether a lookup error means the client is not installed.
// Matches relative to the working directory via a relative PATH entry are
// never used.
func isAbsent(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, exec.ErrDot) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission)
}
