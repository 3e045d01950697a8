// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dhcp brings up guest networking by running an external DHCP
// client.
//
// Clients are probed in a fixed priority order. The first client found is
// used exclusively. Its failure is terminal and never a cue to try the next
// client.
package dhcp
