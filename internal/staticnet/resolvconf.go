// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package staticnet

import (
	"fmt"
	"net/netip"
	"os"
)

const resolvConfMode = 0o644

// WriteResolvConf overwrites the resolver config at path with the given name
// server as the only entry.
func WriteResolvConf(path string, nameserver netip.Addr) error {
	content := "nameserver " + nameserver.String()

	if err := os.WriteFile(path, []byte(content), resolvConfMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
