// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-cms/internal/logger"
)

const copySuffix = "_copy"

// fileDocumentStorage is the filesystem implementation of [DocumentStorage].
// All documents live directly under root; names are joined to root as given.
type fileDocumentStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileDocumentStorage returns a [DocumentStorage] rooted at dir. The
// directory is created if it does not exist.
func NewFileDocumentStorage(dir string, logger *logger.Logger) (DocumentStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewFileDocumentStorage").Str("dir", dir).Msg("error creating documents directory")
		return nil, fmt.Errorf("error creating documents directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file document storage")
	return &fileDocumentStorage{
		root:   dir,
		logger: logger,
	}, nil
}

func (s *fileDocumentStorage) path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *fileDocumentStorage) List(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		log.Err(err).Str("func", "fileDocumentStorage.List").Msg("error reading documents directory")
		return nil, fmt.Errorf("error listing documents: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

func (s *fileDocumentStorage) Exists(ctx context.Context, name string) bool {
	if name == "" {
		return false
	}

	info, err := os.Stat(s.path(name))
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

func (s *fileDocumentStorage) Read(ctx context.Context, name string) ([]byte, error) {
	if !s.Exists(ctx, name) {
		return nil, ErrDocumentNotFound
	}

	content, err := os.ReadFile(s.path(name))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileDocumentStorage.Read").Str("name", name).Msg("error reading document")
		return nil, fmt.Errorf("error reading document %q: %w", name, err)
	}

	return content, nil
}

func (s *fileDocumentStorage) Write(ctx context.Context, name string, content []byte) error {
	if name == "" {
		return ErrInvalidName
	}

	if err := os.WriteFile(s.path(name), content, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileDocumentStorage.Write").Str("name", name).Msg("error writing document")
		return fmt.Errorf("error writing document %q: %w", name, err)
	}

	return nil
}

func (s *fileDocumentStorage) Create(ctx context.Context, name string) error {
	if !hasExtension(name) {
		return ErrInvalidName
	}

	return s.Write(ctx, name, nil)
}

func (s *fileDocumentStorage) Delete(ctx context.Context, name string) error {
	if !s.Exists(ctx, name) {
		return ErrDocumentNotFound
	}

	if err := os.Remove(s.path(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrDocumentNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "fileDocumentStorage.Delete").Str("name", name).Msg("error removing document")
		return fmt.Errorf("error deleting document %q: %w", name, err)
	}

	return nil
}

func (s *fileDocumentStorage) Duplicate(ctx context.Context, name string) (string, error) {
	copyName, err := DuplicateName(name)
	if err != nil {
		return "", err
	}

	content, err := s.Read(ctx, name)
	if err != nil {
		return "", err
	}

	if err := s.Write(ctx, copyName, content); err != nil {
		return "", err
	}

	return copyName, nil
}

// DuplicateName derives the copy name by splitting at the first '.':
// "notes.txt" → "notes_copy.txt", "a.tar.gz" → "a_copy.tar.gz".
func DuplicateName(name string) (string, error) {
	base, ext, found := strings.Cut(name, ".")
	if !found || ext == "" || !hasExtension(name) {
		return "", ErrInvalidName
	}

	return base + copySuffix + "." + ext, nil
}

// hasExtension reports whether name is non-empty and has a non-empty
// substring after its last '.'.
func hasExtension(name string) bool {
	i := strings.LastIndexByte(name, '.')
	return i >= 0 && i < len(name)-1
}
