// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentStorage manages documents kept as flat files under a single root.
// Names are used as given and identify a document uniquely.
type DocumentStorage interface {
	// List returns the base names of all documents in enumeration order.
	List(ctx context.Context) ([]string, error)
	// Exists reports whether a regular file with that name is present.
	Exists(ctx context.Context, name string) bool
	// Read returns the full content or [ErrDocumentNotFound].
	Read(ctx context.Context, name string) ([]byte, error)
	// Write creates the document if absent and fully overwrites it otherwise.
	Write(ctx context.Context, name string, content []byte) error
	// Create makes an empty document, truncating an existing one.
	Create(ctx context.Context, name string) error
	// Delete removes the document or returns [ErrDocumentNotFound].
	Delete(ctx context.Context, name string) error
	// Duplicate copies the document to "<base>_copy.<ext>" and returns that name.
	Duplicate(ctx context.Context, name string) (string, error)
}

// CredentialStorage loads and persists the whole username → hash mapping.
// Every change is written back in full.
type CredentialStorage interface {
	Load(ctx context.Context) (models.Credentials, error)
	Persist(ctx context.Context, credentials models.Credentials) error
}
