// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dhcp

import (
	"context"
	"log/slog"
	"os/exec"

	"github.com/aibor/krunboot/sysinit"
)

const resolvConfPath = "/etc/resolv.conf"

// Config defines the parameters for [Configure].
type Config struct {
	// HostnameFile is the file the host name is read from.
	HostnameFile string

	// ResolvConf is the resolver config the DHCP client is expected to write.
	// It is only read for diagnostics.
	ResolvConf string

	// Clients are the DHCP clients to probe for in priority order.
	Clients []Client

	// LookPath resolves the client executables.
	LookPath LookPathFunc

	// SetHostname sets the kernel host name.
	SetHostname func(string) error
}

// DefaultConfig returns the [Config] used in the guest.
func DefaultConfig() Config {
	return Config{
		HostnameFile: sysinit.HostnameFile,
		ResolvConf:   resolvConfPath,
		Clients:      DefaultClients(),
		LookPath:     exec.LookPath,
		SetHostname:  sysinit.SetHostname,
	}
}

// Configure sets the host name and runs the first DHCP client found.
func Configure(ctx context.Context, cfg Config) error {
	err := sysinit.ConfigureHostname(cfg.HostnameFile, cfg.SetHostname)
	if err != nil {
		return err //nolint:wrapcheck
	}

	selection, err := Select(cfg.Clients, cfg.LookPath)
	if err != nil {
		return err
	}

	slog.Info("Run DHCP client",
		slog.String("client", selection.Name),
		slog.String("path", selection.Path),
	)

	if err := selection.Run(ctx); err != nil {
		return err
	}

	logResolverConfig(cfg.ResolvConf)

	return nil
}

// WithConfigure returns a setup [sysinit.Func] that wraps [Configure] and can
// be used with [sysinit.Run].
func WithConfigure(cfg Config) sysinit.Func {
	return func(ctx context.Context) error {
		return Configure(ctx, cfg)
	}
}
