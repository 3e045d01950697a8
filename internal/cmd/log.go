// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
)

func setupLogging(writer io.Writer, debug bool, attrs ...slog.Attr) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	).WithAttrs(attrs)

	slog.SetDefault(slog.New(handler))
}
