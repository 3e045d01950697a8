// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package guestfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aibor/krunboot/sysinit"
)

// restrictedTmpfs is a size unbounded tmpfs without exec and set-uid
// permissions.
var restrictedTmpfs = sysinit.MountOptions{
	FSType: sysinit.FSTypeTmp,
	Flags:  sysinit.MountFlagsRestricted,
}

// Setup builds the private mount topology of the guest.
//
// The steps run in a fixed order and the first error aborts:
//   - mask VarRun with a private tmpfs,
//   - graft an empty ResolvConfSource over ResolvConf, so it can be written
//     later without touching the root image,
//   - mount a private binfmt_misc instance,
//   - bind mount / onto HostRoot, non-recursively, so it shows the root file
//     system without any of the mounts above,
//   - mask X11SocketDir with a private tmpfs if it exists,
//   - if the root file system has DAX enabled, replace DevShm with the
//     host's shared memory directory from HostRoot.
func Setup(cfg Config, mounter Mounter) error {
	slog.Debug("Mount private tmpfs", slog.String("path", cfg.VarRun))

	if err := mounter.Mount(cfg.VarRun, restrictedTmpfs); err != nil {
		return fmt.Errorf("mount %s: %w", cfg.VarRun, err)
	}

	if err := graftResolvConf(cfg, mounter); err != nil {
		return err
	}

	slog.Debug("Mount binfmt_misc", slog.String("path", cfg.BinfmtMisc))

	binfmtMisc := sysinit.MountOptions{
		FSType: sysinit.FSTypeBinfmtMisc,
		Flags:  sysinit.MountFlagsRestricted,
	}
	if err := mounter.Mount(cfg.BinfmtMisc, binfmtMisc); err != nil {
		return fmt.Errorf("mount %s: %w", cfg.BinfmtMisc, err)
	}

	if err := exposeHostRoot(cfg, mounter); err != nil {
		return err
	}

	if err := maskX11SocketDir(cfg, mounter); err != nil {
		return err
	}

	if !detectDAXFile(cfg.ProcMounts) {
		return nil
	}

	return shareHostDevShm(cfg, mounter)
}

func graftResolvConf(cfg Config, mounter Mounter) error {
	slog.Debug("Graft resolver config",
		slog.String("source", cfg.ResolvConfSource),
		slog.String("target", cfg.ResolvConf),
	)

	if err := sysinit.CreateEmptyFile(cfg.ResolvConfSource); err != nil {
		return err //nolint:wrapcheck
	}

	if err := mounter.Graft(cfg.ResolvConfSource, cfg.ResolvConf); err != nil {
		return fmt.Errorf("graft %s: %w", cfg.ResolvConf, err)
	}

	return nil
}

func exposeHostRoot(cfg Config, mounter Mounter) error {
	slog.Debug("Expose host root", slog.String("path", cfg.HostRoot))

	if err := sysinit.MkdirAll(cfg.HostRoot); err != nil {
		return err //nolint:wrapcheck
	}

	if err := mounter.BindMount("/", cfg.HostRoot); err != nil {
		return fmt.Errorf("bind mount / on %s: %w", cfg.HostRoot, err)
	}

	return nil
}

func maskX11SocketDir(cfg Config, mounter Mounter) error {
	_, err := os.Stat(cfg.X11SocketDir)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Skip missing X11 socket dir",
			slog.String("path", cfg.X11SocketDir))

		return nil
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", cfg.X11SocketDir, err)
	}

	slog.Debug("Mount private tmpfs", slog.String("path", cfg.X11SocketDir))

	if err := mounter.Mount(cfg.X11SocketDir, restrictedTmpfs); err != nil {
		return fmt.Errorf("mount %s: %w", cfg.X11SocketDir, err)
	}

	return nil
}

func shareHostDevShm(cfg Config, mounter Mounter) error {
	hostDevShm := cfg.hostDevShm()

	slog.Debug("DAX detected, share host shared memory",
		slog.String("source", hostDevShm),
		slog.String("target", cfg.DevShm),
	)

	if err := mounter.Unmount(cfg.DevShm); err != nil {
		return fmt.Errorf("unmount %s: %w", cfg.DevShm, err)
	}

	if err := mounter.BindMount(hostDevShm, cfg.DevShm); err != nil {
		return fmt.Errorf("bind mount %s from the host: %w", cfg.DevShm, err)
	}

	return nil
}

// WithSetup returns a setup [sysinit.Func] that wraps [Setup] and can be used
// with [sysinit.Run].
func WithSetup(cfg Config, mounter Mounter) sysinit.Func {
	return func(_ context.Context) error {
		return Setup(cfg, mounter)
	}
}
