// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func mount(source, target, fsType string, flags MountFlags, data string) error {
	err := unix.Mount(source, target, fsType, uintptr(flags), data)
	if err != nil {
		return &MountError{Op: "mount", Path: target, Err: err}
	}

	return nil
}

func unmount(path string) error {
	if err := unix.Unmount(path, 0); err != nil {
		return &MountError{Op: "umount", Path: path, Err: err}
	}

	return nil
}

func openTreeClone(path string) (int, error) {
	fd, err := unix.OpenTree(
		unix.AT_FDCWD,
		path,
		unix.OPEN_TREE_CLONE|unix.OPEN_TREE_CLOEXEC,
	)
	if err != nil {
		return -1, &MountError{Op: "open_tree", Path: path, Err: err}
	}

	return fd, nil
}

func moveMount(fd int, target string) error {
	err := unix.MoveMount(
		fd,
		"",
		unix.AT_FDCWD,
		target,
		unix.MOVE_MOUNT_F_EMPTY_PATH,
	)
	if err != nil {
		return &MountError{Op: "move_mount", Path: target, Err: err}
	}

	return nil
}

func sethostname(name string) error {
	if err := unix.Sethostname([]byte(name)); err != nil {
		return fmt.Errorf("sethostname: %w", err)
	}

	return nil
}

func setns(path string, nsType int) error {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("open namespace %s: %w", path, err)
	}

	defer unix.Close(fd)

	if err := unix.Setns(fd, nsType); err != nil {
		return fmt.Errorf("setns %s: %w", path, err)
	}

	return nil
}

func setInterfaceUp(name string) error {
	sock, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("control socket: %w", err)
	}

	defer unix.Close(sock)

	ifReq, err := unix.NewIfreq(name)
	if err != nil {
		return fmt.Errorf("interface request: %w", err)
	}

	if err := unix.IoctlIfreq(sock, unix.SIOCGIFFLAGS, ifReq); err != nil {
		return fmt.Errorf("get flags: %w", err)
	}

	ifReq.SetUint16(ifReq.Uint16() | unix.IFF_UP)

	if err := unix.IoctlIfreq(sock, unix.SIOCSIFFLAGS, ifReq); err != nil {
		return fmt.Errorf("set flags: %w", err)
	}

	return nil
}

func setenv(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("setenv %s: %w", key, err)
	}

	return nil
}

func execve(path string, args []string) error {
	if err := unix.Exec(path, args, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}

	return nil
}
