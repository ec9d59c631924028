// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/logger"
)

// Storages groups the storage backends used by the service layer.
type Storages struct {
	DocumentStorage   DocumentStorage
	CredentialStorage CredentialStorage

	// db is the SQL connection when the credential backend is a database.
	db *DB
}

// NewStorages initialises the storage layer:
//  1. Creates the documents directory if needed.
//  2. When a DSN is configured, connects to the database and runs pending
//     migrations; otherwise uses the YAML credential file.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	documents, err := NewFileDocumentStorage(cfg.Documents.Dir, logger)
	if err != nil {
		return nil, err
	}

	if cfg.DB.DSN == "" {
		return &Storages{
			DocumentStorage:   documents,
			CredentialStorage: NewYAMLCredentialStorage(cfg.Credentials.File, logger),
		}, nil
	}

	db, err := NewConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DocumentStorage:   documents,
		CredentialStorage: NewSQLCredentialStorage(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
