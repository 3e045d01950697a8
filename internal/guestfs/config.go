// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package guestfs

import "path/filepath"

// Well-known paths used by [DefaultConfig].
const (
	varRunPath           = "/var/run"
	resolvConfSourcePath = "/tmp/resolv.conf"
	resolvConfPath       = "/etc/resolv.conf"
	binfmtMiscPath       = "/proc/sys/fs/binfmt_misc"
	hostRootPath         = "/run/krun-host"
	x11SocketDirPath     = "/tmp/.X11-unix"
	devShmPath           = "/dev/shm"
	procMountsPath       = "/proc/mounts"
)

// Config defines the paths [Setup] works on.
type Config struct {
	// VarRun is masked by a private tmpfs.
	VarRun string

	// ResolvConfSource is the file created empty and grafted over
	// ResolvConf.
	ResolvConfSource string

	// ResolvConf is the DNS resolver configuration file.
	ResolvConf string

	// BinfmtMisc is where a private binfmt_misc instance is mounted.
	BinfmtMisc string

	// HostRoot is where the unmodified root file system is exposed.
	HostRoot string

	// X11SocketDir is masked by a private tmpfs if it exists.
	X11SocketDir string

	// DevShm is the shared memory file system replaced with the one from
	// HostRoot in DAX mode.
	DevShm string

	// ProcMounts is the live mount table.
	ProcMounts string
}

// DefaultConfig returns the [Config] with the paths used in the guest.
func DefaultConfig() Config {
	return Config{
		VarRun:           varRunPath,
		ResolvConfSource: resolvConfSourcePath,
		ResolvConf:       resolvConfPath,
		BinfmtMisc:       binfmtMiscPath,
		HostRoot:         hostRootPath,
		X11SocketDir:     x11SocketDirPath,
		DevShm:           devShmPath,
		ProcMounts:       procMountsPath,
	}
}

// hostDevShm is the shared memory directory of the host as seen through the
// host root bind mount.
func (c Config) hostDevShm() string {
	return filepath.Join(c.HostRoot, devShmPath)
}
