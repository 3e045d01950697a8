// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package guestfs

import "github.com/aibor/krunboot/sysinit"

// Mounter performs the mount syscalls for [Setup].
type Mounter interface {
	Mount(path string, opts sysinit.MountOptions) error
	BindMount(source, target string) error
	Graft(source, target string) error
	Unmount(path string) error
}

// SyscallMounter is the [Mounter] backed by the actual syscalls.
type SyscallMounter struct{}

var _ Mounter = SyscallMounter{}

// Mount implements [Mounter].
func (SyscallMounter) Mount(path string, opts sysinit.MountOptions) error {
	return sysinit.Mount(path, opts) //nolint:wrapcheck
}

// BindMount implements [Mounter].
func (SyscallMounter) BindMount(source, target string) error {
	return sysinit.BindMount(source, target) //nolint:wrapcheck
}

// Graft implements [Mounter].
func (SyscallMounter) Graft(source, target string) error {
	return sysinit.Graft(source, target) //nolint:wrapcheck
}

// Unmount implements [Mounter].
func (SyscallMounter) Unmount(path string) error {
	return sysinit.Unmount(path) //nolint:wrapcheck
}
