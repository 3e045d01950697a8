// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// FSType is a file system type.
type FSType string

// Special file system types.
const (
	FSTypeBinfmtMisc FSType = "binfmt_misc"
	FSTypeTmp        FSType = "tmpfs"

	defaultDirMode = 0o755
)

// MountFlags are mount flags as defined by mount(2).
type MountFlags uintptr

// Mount flags.
const (
	MountFlagNoExec   MountFlags = unix.MS_NOEXEC
	MountFlagNoSUID   MountFlags = unix.MS_NOSUID
	MountFlagRelATime MountFlags = unix.MS_RELATIME
	MountFlagBind     MountFlags = unix.MS_BIND

	// MountFlagsRestricted is the set of flags used for private scratch and
	// pseudo file systems that must neither carry executables nor set-uid
	// binaries.
	MountFlagsRestricted = MountFlagNoExec | MountFlagNoSUID | MountFlagRelATime
)

// MountOptions contains parameters for a mount point.
type MountOptions struct {
	// FSType is the files system type. It must be set to an available [FSType].
	FSType FSType

	// Source is the source device to mount. Can be empty for all the special
	// file system types [FSType]s. If empty it is set to the string of the
	// type.
	Source string

	// Flags are optional mount flags as defined by mount(2).
	Flags MountFlags

	// Data are optional additional parameters that depend of the [FSType] used.
	Data string
}

// Mount mounts the file system described by opts at the given path.
//
// The path must exist already. Use [MkdirAll] before if it might not.
func Mount(path string, opts MountOptions) error {
	source := opts.Source
	if source == "" {
		source = string(opts.FSType)
	}

	return mount(source, path, string(opts.FSType), opts.Flags, opts.Data)
}

// BindMount bind mounts source on target.
//
// The bind is not recursive, so mounts nested below source are not visible
// at target.
func BindMount(source, target string) error {
	return mount(source, target, "", MountFlagBind, "")
}

// Unmount unmounts the file system mounted at path.
func Unmount(path string) error {
	return unmount(path)
}

// Graft clones the file or directory at source into a new detached mount and
// attaches it at target.
//
// The cloned mount is independent from the original file's mount, so the
// content can be rewritten later without write access to the file system
// target resides on.
func Graft(source, target string) error {
	fd, err := openTreeClone(source)
	if err != nil {
		return err
	}

	defer unix.Close(fd)

	return moveMount(fd, target)
}

// MkdirAll creates the directory at path and all its parents, if missing.
func MkdirAll(path string) error {
	if err := os.MkdirAll(path, defaultDirMode); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}

	return nil
}

// CreateEmptyFile creates the file at path or truncates it if it already
// exists.
func CreateEmptyFile(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
