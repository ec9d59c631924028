// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cms/internal/logger"
)

func newTestDocumentStorage(t *testing.T) (DocumentStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileDocumentStorage(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestNewFileDocumentStorage_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := NewFileDocumentStorage(dir, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileDocumentStorage_RootIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := NewFileDocumentStorage(file, logger.Nop())
	assert.Error(t, err)
}

func TestFileDocumentStorage_List(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestDocumentStorage(t)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.Write(ctx, "about.md", []byte("# About")))
	require.NoError(t, s.Write(ctx, "changes.txt", []byte("1995")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"about.md", "changes.txt"}, names)
}

func TestFileDocumentStorage_Exists(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestDocumentStorage(t)
	require.NoError(t, s.Write(ctx, "history.txt", nil))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.txt"), 0o755))

	assert.True(t, s.Exists(ctx, "history.txt"))
	assert.False(t, s.Exists(ctx, "missing.txt"))
	assert.False(t, s.Exists(ctx, "folder.txt"), "directories are not documents")
	assert.False(t, s.Exists(ctx, ""))
}

func TestFileDocumentStorage_ReadWrite(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocumentStorage(t)

	_, err := s.Read(ctx, "history.txt")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, s.Write(ctx, "history.txt", []byte("1993 - Yukihiro Matsumoto dreams up Ruby.")))
	content, err := s.Read(ctx, "history.txt")
	require.NoError(t, err)
	assert.Equal(t, "1993 - Yukihiro Matsumoto dreams up Ruby.", string(content))

	// full overwrite, not append
	require.NoError(t, s.Write(ctx, "history.txt", []byte("short")))
	content, err = s.Read(ctx, "history.txt")
	require.NoError(t, err)
	assert.Equal(t, "short", string(content))
}

func TestFileDocumentStorage_WriteEmptyName(t *testing.T) {
	s, _ := newTestDocumentStorage(t)
	assert.ErrorIs(t, s.Write(context.Background(), "", []byte("x")), ErrInvalidName)
}

func TestFileDocumentStorage_Create(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "empty name", doc: "", wantErr: ErrInvalidName},
		{name: "no extension", doc: "newdoc", wantErr: ErrInvalidName},
		{name: "trailing dot", doc: "newdoc.", wantErr: ErrInvalidName},
		{name: "text document", doc: "newdoc.txt"},
		{name: "markdown document", doc: "readme.md"},
		{name: "unsupported extension is still a valid name", doc: "image.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s, _ := newTestDocumentStorage(t)

			err := s.Create(ctx, tt.doc)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				names, listErr := s.List(ctx)
				require.NoError(t, listErr)
				assert.Empty(t, names)
				return
			}

			require.NoError(t, err)
			assert.True(t, s.Exists(ctx, tt.doc))
			content, err := s.Read(ctx, tt.doc)
			require.NoError(t, err)
			assert.Empty(t, content)
		})
	}
}

func TestFileDocumentStorage_CreateTruncatesExisting(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocumentStorage(t)
	require.NoError(t, s.Write(ctx, "notes.txt", []byte("old content")))

	require.NoError(t, s.Create(ctx, "notes.txt"))

	content, err := s.Read(ctx, "notes.txt")
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestFileDocumentStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocumentStorage(t)
	require.NoError(t, s.Write(ctx, "keep.txt", []byte("keep")))
	require.NoError(t, s.Write(ctx, "drop.txt", []byte("drop")))

	require.NoError(t, s.Delete(ctx, "drop.txt"))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, names)

	err = s.Delete(ctx, "drop.txt")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, names, "failed delete leaves storage unchanged")
}

func TestFileDocumentStorage_Duplicate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocumentStorage(t)
	require.NoError(t, s.Write(ctx, "newtest.txt", []byte("copy me")))

	copyName, err := s.Duplicate(ctx, "newtest.txt")
	require.NoError(t, err)
	assert.Equal(t, "newtest_copy.txt", copyName)
	assert.True(t, s.Exists(ctx, "newtest_copy.txt"))

	content, err := s.Read(ctx, copyName)
	require.NoError(t, err)
	assert.Equal(t, "copy me", string(content))

	source, err := s.Read(ctx, "newtest.txt")
	require.NoError(t, err)
	assert.Equal(t, "copy me", string(source), "source is untouched")
}

func TestFileDocumentStorage_DuplicateErrors(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestDocumentStorage(t)

	_, err := s.Duplicate(ctx, "missing.txt")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, s.Write(ctx, "README", []byte("x")))
	_, err = s.Duplicate(ctx, "README")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestDuplicateName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "newtest.txt", want: "newtest_copy.txt"},
		{in: "about.md", want: "about_copy.md"},
		{in: "archive.tar.gz", want: "archive_copy.tar.gz"},
		{in: "noext", wantErr: true},
		{in: "trailing.", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := DuplicateName(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
