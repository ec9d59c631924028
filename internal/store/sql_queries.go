// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cms/models"
)

const (
	usersTable         = "users"
	usernameColumn     = "username"
	passwordHashColumn = "password_hash"
)

// psql builds queries with $N placeholders; both pgx and go-sqlite3 accept them.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectCredentialsQuery selects every username/hash pair.
func buildSelectCredentialsQuery() (string, []any, error) {
	return psql.
		Select(usernameColumn, passwordHashColumn).
		From(usersTable).
		OrderBy(usernameColumn).
		ToSql()
}

// buildDeleteCredentialsQuery removes every row; Persist rewrites the table in full.
func buildDeleteCredentialsQuery() (string, []any, error) {
	return psql.Delete(usersTable).ToSql()
}

// buildInsertCredentialsQuery inserts all entries in one multi-row statement.
// It returns an empty query when credentials is empty.
func buildInsertCredentialsQuery(credentials models.Credentials) (string, []any, error) {
	if len(credentials) == 0 {
		return "", nil, nil
	}

	insert := psql.Insert(usersTable).Columns(usernameColumn, passwordHashColumn)
	for _, username := range sortedUsernames(credentials) {
		insert = insert.Values(username, credentials[username])
	}

	return insert.ToSql()
}
