// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/models"
)

// sqlCredentialStorage keeps credentials in the "users" table. Persist
// replaces the table content inside a single transaction.
type sqlCredentialStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLCredentialStorage constructs a [CredentialStorage] backed by db.
func NewSQLCredentialStorage(db *DB, logger *logger.Logger) CredentialStorage {
	logger.Debug().Msg("creating sql credential storage")
	return &sqlCredentialStorage{
		DB:     db,
		logger: logger,
	}
}

func (s *sqlCredentialStorage) Load(ctx context.Context) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery()
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Load").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Load").Msg("failed to execute query for loading credentials")
		return nil, fmt.Errorf("%w: %w: %w", ErrCredentialsUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make(models.Credentials)
	for rows.Next() {
		var username, hash string
		if err := rows.Scan(&username, &hash); err != nil {
			log.Err(err).Str("func", "sqlCredentialStorage.Load").Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials[username] = hash
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Load").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

func (s *sqlCredentialStorage) Persist(ctx context.Context, credentials models.Credentials) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteCredentialsQuery()
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Persist").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := buildInsertCredentialsQuery(credentials)
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Persist").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Persist").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Persist").Msg("failed to clear users table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if insertQuery != "" {
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).Str("func", "sqlCredentialStorage.Persist").Int("users", len(credentials)).Msg("failed to insert users")
			if postgresError(err) == pgerrcode.UniqueViolation || isSQLiteUniqueViolation(err) {
				return ErrUserAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqlCredentialStorage.Persist").Msg("failed to commit transaction")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func sortedUsernames(credentials models.Credentials) []string {
	return slices.Sorted(maps.Keys(credentials))
}
