// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build integration_sysinit

package sysinit_test

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireMountNamespace skips the test unless it runs privileged. The tests
// are meant to be run inside a throw-away VM or mount namespace.
func requireMountNamespace(t *testing.T) {
	t.Helper()

	if os.Geteuid() != 0 {
		t.Skip("requires root in a disposable mount namespace")
	}
}

// readMounts returns the file system type for each mount point.
func readMounts(t *testing.T) map[string]string {
	t.Helper()

	mountsFile, err := os.ReadFile("/proc/mounts")
	require.NoError(t, err)

	actual := map[string]string{}

	scanner := bufio.NewScanner(strings.NewReader(string(mountsFile)))
	for scanner.Scan() {
		columns := strings.Fields(scanner.Text())
		actual[columns[1]] = columns[2]
	}

	require.NoError(t, scanner.Err(), "must read mounts file")

	return actual
}
