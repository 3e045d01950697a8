// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aibor/krunboot/internal/dhcp"
	"github.com/aibor/krunboot/internal/guestfs"
	"github.com/aibor/krunboot/internal/staticnet"
	"github.com/aibor/krunboot/sysinit"
)

const (
	defaultPATH      = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"
	loopbackLinkName = "lo"
)

// execFunc replaces the process with the given command.
type execFunc func(args []string) error

// networkStage returns the boot stage for the given [NetworkMode]. It returns
// nil for [NetworkModeNone].
func networkStage(mode NetworkMode) sysinit.Func {
	switch mode {
	case NetworkModeDHCP:
		return dhcp.WithConfigure(dhcp.DefaultConfig())
	case NetworkModeStatic:
		return staticnet.WithConfigure(staticnet.DefaultConfig())
	default:
		return nil
	}
}

// guestStages returns the boot stages of the guest in the order they must
// run.
func guestStages(mode NetworkMode) []sysinit.Func {
	stages := []sysinit.Func{
		sysinit.WithDefaultEnv(sysinit.EnvVars{"PATH": defaultPATH}),
		sysinit.WithInterfaceUp(loopbackLinkName),
		guestfs.WithSetup(guestfs.DefaultConfig(), guestfs.SyscallMounter{}),
	}

	if stage := networkStage(mode); stage != nil {
		stages = append(stages, stage)
	}

	return stages
}

func runGuest(
	ctx context.Context,
	command []string,
	stages []sysinit.Func,
	exec execFunc,
) error {
	err := sysinit.Run(ctx, stages...)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	slog.Debug("Bootstrap done, passing control",
		slog.Any("command", command))

	// Returns only on failure.
	return exec(command) //nolint:wrapcheck
}

// RunGuest is the main entry point for the krun-guest command.
func RunGuest(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseGuestArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	if flags.version {
		return printVersion(cfg.Stdout)
	}

	setupLogging(cfg.Stderr, flags.debug, slog.String("cmd", guestName))

	slog.Debug("Network mode", slog.String("mode", flags.network.String()))

	err = runGuest(ctx, flags.command, guestStages(flags.network), sysinit.Exec)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
