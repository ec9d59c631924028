// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/models"
)

// yamlCredentialStorage keeps credentials in a YAML mapping of
// username to bcrypt hash:
//
//	admin: $2a$10$...
//	developer: $2a$10$...
type yamlCredentialStorage struct {
	path   string
	logger *logger.Logger
}

// NewYAMLCredentialStorage returns a [CredentialStorage] backed by the YAML
// file at path. The file is not touched until Load or Persist is called.
func NewYAMLCredentialStorage(path string, logger *logger.Logger) CredentialStorage {
	logger.Debug().Str("path", path).Msg("creating yaml credential storage")
	return &yamlCredentialStorage{
		path:   path,
		logger: logger,
	}
}

func (s *yamlCredentialStorage) Load(ctx context.Context) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Err(err).Str("func", "yamlCredentialStorage.Load").Str("path", s.path).Msg("error reading credentials file")
		return nil, fmt.Errorf("%w: %w", ErrCredentialsUnavailable, err)
	}

	credentials := make(models.Credentials)
	if err := yaml.Unmarshal(data, &credentials); err != nil {
		log.Err(err).Str("func", "yamlCredentialStorage.Load").Str("path", s.path).Msg("error decoding credentials file")
		return nil, fmt.Errorf("%w: %w", ErrCredentialsUnavailable, err)
	}

	// an empty document decodes into a nil map
	if credentials == nil {
		credentials = make(models.Credentials)
	}

	return credentials, nil
}

func (s *yamlCredentialStorage) Persist(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	data, err := yaml.Marshal(map[string]string(credentials))
	if err != nil {
		log.Err(err).Str("func", "yamlCredentialStorage.Persist").Msg("error encoding credentials")
		return fmt.Errorf("error encoding credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		log.Err(err).Str("func", "yamlCredentialStorage.Persist").Str("path", s.path).Msg("error writing credentials file")
		return fmt.Errorf("error writing credentials file: %w", err)
	}

	return nil
}
