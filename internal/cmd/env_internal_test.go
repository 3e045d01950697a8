// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/krunboot/internal/staticnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "krun.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestReadEnvFile(t *testing.T) {
	path := writeEnvFile(t, `# static plan
KRUN_NETWORK_ADDRESS=10.0.2.15
export KRUN_NETWORK_MASK="255.255.255.0"
KRUN_NETWORK_ROUTER: 10.0.2.2
`)

	envVars, err := readEnvFile(path)
	require.NoError(t, err)

	expected := map[string]string{
		staticnet.EnvAddress: "10.0.2.15",
		staticnet.EnvMask:    "255.255.255.0",
		staticnet.EnvRouter:  "10.0.2.2",
	}
	assert.Equal(t, expected, envVars)
}

func TestReadEnvFile_Empty(t *testing.T) {
	envVars, err := readEnvFile("")
	require.NoError(t, err)
	assert.Empty(t, envVars)
}

func TestReadEnvFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.env")

	_, err := readEnvFile(path)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, path)
}

func TestLayeredLookupEnv(t *testing.T) {
	process := map[string]string{
		staticnet.EnvAddress: "192.168.1.2",
		staticnet.EnvMask:    "",
	}
	fileVars := map[string]string{
		staticnet.EnvAddress: "10.0.2.15",
		staticnet.EnvMask:    "255.255.255.0",
		staticnet.EnvRouter:  "10.0.2.2",
	}

	lookup := layeredLookupEnv(func(key string) (string, bool) {
		value, exists := process[key]
		return value, exists
	}, fileVars)

	tests := []struct {
		key            string
		expectedValue  string
		expectedExists bool
	}{
		{key: staticnet.EnvAddress, expectedValue: "192.168.1.2", expectedExists: true},
		{key: staticnet.EnvMask, expectedValue: "", expectedExists: true},
		{key: staticnet.EnvRouter, expectedValue: "10.0.2.2", expectedExists: true},
		{key: "KRUN_OTHER"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			value, exists := lookup(tt.key)
			assert.Equal(t, tt.expectedValue, value)
			assert.Equal(t, tt.expectedExists, exists)
		})
	}
}
