// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidName is returned when a document name is empty or carries
	// no extension.
	ErrInvalidName = errors.New("invalid document name")

	// ErrDocumentNotFound is returned when the requested document does not
	// exist under the storage root.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrUserAlreadyExists is returned when persisting credentials collides
	// with an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrCredentialsUnavailable is returned when the credential resource
	// cannot be read or decoded.
	ErrCredentialsUnavailable = errors.New("credentials are unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL credential backend when a SQL-level operation fails.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRows         = errors.New("failed to scan credential rows")
)
