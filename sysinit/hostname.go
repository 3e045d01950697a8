// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

// HostnameFile is the well-known file the host name is read from.
const HostnameFile = "/etc/hostname"

// ParseHostname returns the host name from the content of a host name file.
//
// Only the first line is used. Everything after the first newline is
// discarded.
func ParseHostname(content string) string {
	hostname, _, _ := strings.Cut(content, "\n")
	return hostname
}

// ReadHostname reads the host name from the file at the given path.
func ReadHostname(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return ParseHostname(string(content)), nil
}

// SetHostname sets the kernel host name.
func SetHostname(hostname string) error {
	return sethostname(hostname)
}

// SetHostnameIn sets the host name in the UTS namespace at the given path,
// like /proc/<pid>/ns/uts.
//
// The namespace is entered on a dedicated OS thread. The thread is never
// unlocked, so it is terminated when the call returns and no other goroutine
// runs in the foreign namespace.
func SetHostnameIn(nsPath, hostname string) error {
	errCh := make(chan error, 1)

	go func() {
		runtime.LockOSThread()

		if err := setns(nsPath, unix.CLONE_NEWUTS); err != nil {
			errCh <- err
			return
		}

		errCh <- sethostname(hostname)
	}()

	return <-errCh
}

// ConfigureHostname reads the host name from the file at the given path and
// passes it to the given set function, usually [SetHostname].
func ConfigureHostname(path string, set func(string) error) error {
	hostname, err := ReadHostname(path)
	if err != nil {
		return err
	}

	if err := set(hostname); err != nil {
		return fmt.Errorf("set hostname %q: %w", hostname, err)
	}

	return nil
}
