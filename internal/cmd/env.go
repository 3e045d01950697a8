// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/aibor/krunboot/internal/staticnet"
	"github.com/joho/godotenv"
)

// readEnvFile reads the variables from the dotenv file at path. An empty path
// results in an empty set.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	envVars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	return envVars, nil
}

// layeredLookupEnv returns a [staticnet.LookupEnvFunc] that prefers the
// process environment and falls back to fileVars.
func layeredLookupEnv(
	lookupEnv staticnet.LookupEnvFunc,
	fileVars map[string]string,
) staticnet.LookupEnvFunc {
	return func(key string) (string, bool) {
		if value, exists := lookupEnv(key); exists {
			return value, true
		}

		value, exists := fileVars[key]

		return value, exists
	}
}
