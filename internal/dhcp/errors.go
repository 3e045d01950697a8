// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dhcp

import "errors"

// ErrNoClient is returned if none of the known DHCP clients is present.
var ErrNoClient = errors.New("could not find required `dhcpcd` or `dhclient`")
