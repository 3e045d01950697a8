// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aibor/krunboot/internal/staticnet"
	"github.com/aibor/krunboot/sysinit"
)

// setHostnameIn sets the host name in a foreign UTS namespace.
var setHostnameIn = sysinit.SetHostnameIn

// netConfig returns the [staticnet.Config] for the given flags based on
// base.
//
// For a foreign guest, the host name and resolver config files of base are
// resolved below the guest root and the host name is set in the guest's UTS
// namespace, so nothing of the calling host is touched.
func netConfig(flags *netFlags, base staticnet.Config) (staticnet.Config, error) {
	fileVars, err := readEnvFile(flags.envFile)
	if err != nil {
		return staticnet.Config{}, err
	}

	cfg := base
	cfg.NetNS = flags.netNS
	cfg.LookupEnv = layeredLookupEnv(base.LookupEnv, fileVars)

	if flags.guestContext() {
		if flags.root == "" || flags.uts == "" {
			return staticnet.Config{}, ErrIncompleteGuestContext
		}

		uts := flags.uts
		cfg.HostnameFile = filepath.Join(flags.root, base.HostnameFile)
		cfg.ResolvConf = filepath.Join(flags.root, base.ResolvConf)
		cfg.SetHostname = func(hostname string) error {
			return setHostnameIn(uts, hostname)
		}
	}

	return cfg, nil
}

func runNet(ctx context.Context, flags *netFlags, base staticnet.Config) error {
	cfg, err := netConfig(flags, base)
	if err != nil {
		return err
	}

	if err := staticnet.Configure(ctx, cfg); err != nil {
		return fmt.Errorf("static network: %w", err)
	}

	return nil
}

// RunNet is the main entry point for the krun-net command.
func RunNet(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseNetArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	if flags.version {
		return printVersion(cfg.Stdout)
	}

	setupLogging(cfg.Stderr, flags.debug, slog.String("cmd", netName))

	err = runNet(ctx, flags, staticnet.DefaultConfig())
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
