// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package guestfs sets up the private file system view of the guest.
//
// [Setup] runs a fixed sequence of mount operations. Any failure aborts the
// sequence immediately, since a half built mount topology is not safe to run
// workloads on.
package guestfs
