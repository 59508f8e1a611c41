// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied after all sources are merged and before validation.
const (
	defaultHTTPAddress   = "localhost:4001"
	defaultTokenIssuer   = "go-secret-vault"
	defaultTokenDuration = 4 * time.Hour
)

// applyDefaults fills zero-valued fields that have a sane default so that a
// minimal deployment only needs to provide the DSN and the two secrets.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.CipherKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
