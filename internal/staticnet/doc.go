// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package staticnet programs the guest network directly over netlink from a
// static plan passed via environment variables.
//
// It is the alternative to running a DHCP client inside the guest. Only one
// of both must be used per boot.
package staticnet
