// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables (SERVER_ADDRESS,
// STORAGE_DB_DSN, APP_TOKEN_SIGN_KEY and friends) using the caarlos0/env
// library. Fields are mapped via the `env` and `envPrefix` tags declared on
// [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails, for example when a value
// cannot be converted to the target type.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
