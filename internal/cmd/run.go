// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/aibor/krunboot/internal/exitcode"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// Parsing already prints errors, so we just exit with an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

// handleRunError logs the error and returns the exit code for it. Failed
// child processes pass their exit code through.
func handleRunError(err error) int {
	slog.Error(err.Error())

	if exitCode, ok := exitcode.From(err); ok && exitCode > 0 {
		return exitCode
	}

	return -1
}

func printVersion(output io.Writer) int {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		slog.Error(ErrReadBuildInfo.Error())
		return -1
	}

	fmt.Fprintf(output, "Version: %s\n", buildInfo.Main.Version)

	return 0
}
