// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGuestArgs(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		expectedNetwork NetworkMode
		expectedCommand []string
		expectedDebug   bool
		expectedErr     error
	}{
		{
			name:            "defaults",
			args:            []string{"/sbin/init"},
			expectedNetwork: NetworkModeDHCP,
			expectedCommand: []string{"/sbin/init"},
		},
		{
			name:            "static with debug",
			args:            []string{"-network", "static", "-debug", "/bin/sh", "-c", "true"},
			expectedNetwork: NetworkModeStatic,
			expectedCommand: []string{"/bin/sh", "-c", "true"},
			expectedDebug:   true,
		},
		{
			name:            "command flags after separator",
			args:            []string{"-network=none", "--", "-weird", "-debug"},
			expectedNetwork: NetworkModeNone,
			expectedCommand: []string{"-weird", "-debug"},
		},
		{
			name:        "invalid network mode",
			args:        []string{"-network", "bridge", "/sbin/init"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "no command",
			args:        []string{"-network", "none"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "help",
			args:        []string{"-help"},
			expectedErr: ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer

			flags, err := parseGuestArgs(tt.args, &output)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, &ParseArgsError{})
				assert.Contains(t, output.String(), "Usage of 'krun-guest'")

				return
			}

			assert.Equal(t, tt.expectedNetwork, flags.network)
			assert.Equal(t, tt.expectedCommand, flags.command)
			assert.Equal(t, tt.expectedDebug, flags.debug)
			assert.Empty(t, output.String())
		})
	}
}

func TestParseGuestArgs_InvalidNetworkMode(t *testing.T) {
	var output bytes.Buffer

	_, err := parseGuestArgs([]string{"-network", "bridge", "/sbin/init"}, &output)
	require.ErrorIs(t, err, &ParseArgsError{})

	assert.Contains(t, output.String(), ErrNetworkModeInvalid.Error())
}

func TestParseGuestArgs_Version(t *testing.T) {
	flags, err := parseGuestArgs([]string{"-version"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.True(t, flags.version)
}

func TestParseNetArgs(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		expectedNetNS   string
		expectedUTS     string
		expectedRoot    string
		expectedEnvFile string
		expectedErr     error
	}{
		{
			name: "defaults",
		},
		{
			name: "guest with derived uts",
			args: []string{
				"-netns", "/proc/42/ns/net",
				"-root", "/var/lib/krun/rootfs",
				"-env-file", "krun.env",
				"-debug",
			},
			expectedNetNS:   "/proc/42/ns/net",
			expectedUTS:     "/proc/42/ns/uts",
			expectedRoot:    "/var/lib/krun/rootfs",
			expectedEnvFile: "krun.env",
		},
		{
			name: "guest with explicit uts",
			args: []string{
				"-netns", "/run/netns/guest",
				"-uts", "/proc/42/ns/uts",
				"-root", "/var/lib/krun/rootfs",
			},
			expectedNetNS: "/run/netns/guest",
			expectedUTS:   "/proc/42/ns/uts",
			expectedRoot:  "/var/lib/krun/rootfs",
		},
		{
			name:        "netns without root",
			args:        []string{"-netns", "/proc/42/ns/net"},
			expectedErr: ErrIncompleteGuestContext,
		},
		{
			name:        "netns without derivable uts",
			args:        []string{"-netns", "/run/netns/guest", "-root", "/var/lib/krun/rootfs"},
			expectedErr: ErrIncompleteGuestContext,
		},
		{
			name:        "root without netns",
			args:        []string{"-root", "/var/lib/krun/rootfs"},
			expectedErr: ErrIncompleteGuestContext,
		},
		{
			name:        "positional args",
			args:        []string{"eth0"},
			expectedErr: ErrUnexpectedArgs,
		},
		{
			name:        "unknown flag",
			args:        []string{"-kernel", "vmlinuz"},
			expectedErr: &ParseArgsError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := parseNetArgs(tt.args, &bytes.Buffer{})
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.expectedNetNS, flags.netNS)
			assert.Equal(t, tt.expectedUTS, flags.uts)
			assert.Equal(t, tt.expectedRoot, flags.root)
			assert.Equal(t, tt.expectedEnvFile, flags.envFile)
		})
	}
}

func TestSiblingUTSNamespace(t *testing.T) {
	tests := []struct {
		netNS    string
		expected string
	}{
		{netNS: "/proc/42/ns/net", expected: "/proc/42/ns/uts"},
		{netNS: "/proc/self/ns/net", expected: "/proc/self/ns/uts"},
		{netNS: "/run/netns/net", expected: ""},
		{netNS: "/run/netns/guest", expected: ""},
		{netNS: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.netNS, func(t *testing.T) {
			assert.Equal(t, tt.expected, siblingUTSNamespace(tt.netNS))
		})
	}
}
