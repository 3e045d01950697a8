// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dhcp

import (
	"log/slog"

	"github.com/miekg/dns"
)

// logResolverConfig logs the name servers the DHCP client configured.
//
// Writing the resolver config is up to the client, so a missing or broken
// file is reported but not treated as error.
func logResolverConfig(path string) {
	cfg, err := dns.ClientConfigFromFile(path)
	if err != nil {
		slog.Debug("No resolver config",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return
	}

	slog.Debug("Resolver config",
		slog.String("path", path),
		slog.Any("nameservers", cfg.Servers),
		slog.Any("search", cfg.Search),
	)
}
