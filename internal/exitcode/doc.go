// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode classifies how a child process terminated and maps
// termination to errors and process exit codes.
package exitcode
