// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sysinit

import (
	"context"
	"maps"
	"os"
	"slices"
)

// EnvVars is a map of environment variable values by name.
type EnvVars map[string]string

// SetEnv sets the given [EnvVars] in the environment in lexicographic order of
// their names.
func SetEnv(envVars EnvVars) error {
	for _, key := range slices.Sorted(maps.Keys(envVars)) {
		err := setenv(key, envVars[key])
		if err != nil {
			return err
		}
	}

	return nil
}

// SetDefaultEnv sets the given [EnvVars] in the environment unless they are
// set already.
func SetDefaultEnv(envVars EnvVars) error {
	missing := EnvVars{}

	for key, value := range envVars {
		if _, exists := os.LookupEnv(key); !exists {
			missing[key] = value
		}
	}

	return SetEnv(missing)
}

// WithDefaultEnv returns a setup [Func] that wraps [SetDefaultEnv] and can be
// used with [Run].
func WithDefaultEnv(envVars EnvVars) Func {
	return func(_ context.Context) error {
		return SetDefaultEnv(envVars)
	}
}
