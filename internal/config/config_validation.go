// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied by validate for fields the operator may omit.
const (
	defaultTokenIssuer   = "contact-keeper"
	defaultTokenDuration = 24 * time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in
// defaults for optional fields.
//
// Required: database DSN, token sign key, HTTP listen address.
// Defaulted: token issuer, token duration (24h), bcrypt cost
// (bcrypt.DefaultCost), allowed CORS origins ("*").
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}

	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	return nil
}
