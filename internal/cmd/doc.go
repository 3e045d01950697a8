// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry points for the krun boot stages.
// It handles flag parsing, logging setup, error handling and exit codes.
package cmd
