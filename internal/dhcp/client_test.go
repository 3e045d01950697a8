// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dhcp_test

import (
	"fmt"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/aibor/krunboot/internal/dhcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookPath resolves only the given probes. Probes mapped to an error
// return that error. All probes are recorded.
type fakeLookPath struct {
	found  map[string]error
	probes []string
}

func (f *fakeLookPath) lookPath(file string) (string, error) {
	f.probes = append(f.probes, file)

	err, exists := f.found[file]
	if !exists {
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}

	if err != nil {
		return "", err
	}

	return "/resolved/" + file, nil
}

func TestDefaultClients(t *testing.T) {
	clients := dhcp.DefaultClients()
	require.Len(t, clients, 2)

	assert.Equal(t, "dhcpcd", clients[0].Name)
	assert.Equal(t, "/sbin/dhcpcd", clients[0].Fallback)
	assert.Equal(t,
		[]string{"-M", "eth0", "-e", "resolvconf=does-not-exist"},
		clients[0].Args,
	)

	assert.Equal(t, "dhclient", clients[1].Name)
	assert.Equal(t, "/sbin/dhclient", clients[1].Fallback)
	assert.Empty(t, clients[1].Args)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name           string
		found          map[string]error
		expectedName   string
		expectedPath   string
		expectedProbes []string
		expectedErr    error
	}{
		{
			name:           "dhcpcd in path",
			found:          map[string]error{"dhcpcd": nil, "dhclient": nil},
			expectedName:   "dhcpcd",
			expectedPath:   "/resolved/dhcpcd",
			expectedProbes: []string{"dhcpcd"},
		},
		{
			name:           "dhcpcd fallback",
			found:          map[string]error{"/sbin/dhcpcd": nil, "dhclient": nil},
			expectedName:   "dhcpcd",
			expectedPath:   "/resolved//sbin/dhcpcd",
			expectedProbes: []string{"dhcpcd", "/sbin/dhcpcd"},
		},
		{
			name:           "dhclient in path",
			found:          map[string]error{"dhclient": nil, "/sbin/dhclient": nil},
			expectedName:   "dhclient",
			expectedPath:   "/resolved/dhclient",
			expectedProbes: []string{"dhcpcd", "/sbin/dhcpcd", "dhclient"},
		},
		{
			name:           "only dhclient fallback",
			found:          map[string]error{"/sbin/dhclient": nil},
			expectedName:   "dhclient",
			expectedPath:   "/resolved//sbin/dhclient",
			expectedProbes: []string{"dhcpcd", "/sbin/dhcpcd", "dhclient", "/sbin/dhclient"},
		},
		{
			name: "not executable counts as absent",
			found: map[string]error{
				"/sbin/dhcpcd": &fs.PathError{Op: "stat", Path: "/sbin/dhcpcd", Err: fs.ErrPermission},
				"dhclient":     nil,
			},
			expectedName:   "dhclient",
			expectedPath:   "/resolved/dhclient",
			expectedProbes: []string{"dhcpcd", "/sbin/dhcpcd", "dhclient"},
		},
		{
			name: "relative path match counts as absent",
			found: map[string]error{
				"dhcpcd":       &exec.Error{Name: "dhcpcd", Err: exec.ErrDot},
				"/sbin/dhcpcd": nil,
			},
			expectedName:   "dhcpcd",
			expectedPath:   "/resolved//sbin/dhcpcd",
			expectedProbes: []string{"dhcpcd", "/sbin/dhcpcd"},
		},
		{
			name:           "none",
			expectedProbes: []string{"dhcpcd", "/sbin/dhcpcd", "dhclient", "/sbin/dhclient"},
			expectedErr:    dhcp.ErrNoClient,
		},
		{
			name: "lookup error",
			found: map[string]error{
				"dhcpcd":   assert.AnError,
				"dhclient": nil,
			},
			expectedProbes: []string{"dhcpcd"},
			expectedErr:    assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookPath := &fakeLookPath{found: tt.found}

			actual, err := dhcp.Select(dhcp.DefaultClients(), lookPath.lookPath)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expectedName, actual.Name)
			assert.Equal(t, tt.expectedPath, actual.Path)
			assert.Equal(t, tt.expectedProbes, lookPath.probes)
		})
	}
}

func TestSelect_NoClientMessage(t *testing.T) {
	lookPath := &fakeLookPath{}

	_, err := dhcp.Select(dhcp.DefaultClients(), lookPath.lookPath)
	require.ErrorIs(t, err, dhcp.ErrNoClient)

	assert.ErrorContains(t, err, "dhcpcd")
	assert.ErrorContains(t, err, "dhclient")
}

func TestSelect_SkipsEmptyFallback(t *testing.T) {
	lookPath := &fakeLookPath{}
	clients := []dhcp.Client{{Name: "udhcpc"}}

	_, err := dhcp.Select(clients, lookPath.lookPath)
	require.ErrorIs(t, err, dhcp.ErrNoClient)

	assert.Equal(t, []string{"udhcpc"}, lookPath.probes)
}

func ExampleSelect() {
	lookPath := func(file string) (string, error) {
		if file == "/sbin/dhclient" {
			return file, nil
		}

		return "", exec.ErrNotFound
	}

	selection, err := dhcp.Select(dhcp.DefaultClients(), lookPath)
	if err != nil {
		panic(err)
	}

	fmt.Println(selection.Name, selection.Path)
	// Output: dhclient /sbin/dhclient
}
