// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// bcrypt accepts costs in [4, 31].
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Documents.Dir == "" {
		return fmt.Errorf("%w: documents directory is not set", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Credentials.File == "" && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: neither credentials file nor database DSN is set", ErrInvalidStorageConfigs)
	}

	if cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: session sign key is not set", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
