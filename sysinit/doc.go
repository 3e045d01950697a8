// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sysinit provides the system primitives used by the krun guest boot
// stages: mounting file systems, grafting files as detached mounts, setting
// the host name, bringing interfaces up and handing control over to the next
// boot stage.
//
// The functions are thin wrappers around the respective syscalls. They do not
// retry and do not roll back. Callers are expected to abort the boot stage on
// the first error.
package sysinit
