// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package guestfs

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
)

// daxAlwaysOption is the mount option of a file system with DAX enabled.
const daxAlwaysOption = "dax=always"

// DetectDAX returns true if the first line of the given mount table has DAX
// enabled.
//
// The root file system is expected to be the first entry of the mount table.
// This holds for the krun guest but is not verified. Only the first line is
// considered, so a DAX mount anywhere else is ignored.
func DetectDAX(mountTable io.Reader) bool {
	scanner := bufio.NewScanner(mountTable)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			slog.Debug("Failed to read mount table", slog.Any("error", err))
		}

		return false
	}

	return strings.Contains(scanner.Text(), daxAlwaysOption)
}

// detectDAXFile runs [DetectDAX] on the file at the given path. Any failure
// to open the file is treated as DAX not detected.
func detectDAXFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		slog.Debug("Failed to open mount table",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return false
	}
	defer file.Close()

	return DetectDAX(file)
}
