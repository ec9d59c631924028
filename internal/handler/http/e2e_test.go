// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/service"
	"github.com/MKhiriev/go-cms/internal/store"
	"github.com/MKhiriev/go-cms/internal/utils"
)

// newTestServer runs the full stack over a temporary document directory and
// a YAML credential file holding admin/secret.
func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	docsDir := filepath.Join(dir, "data")
	credsFile := filepath.Join(dir, "users.yml")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(credsFile, []byte("admin: "+string(hash)+"\n"), 0o600))

	cfg := config.StructuredConfig{
		App: testAppConfig,
		Storage: config.Storage{
			Documents:   config.Documents{Dir: docsDir},
			Credentials: config.Credentials{File: credsFile},
		},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(ctx, storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg.App, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return srv, docsDir
}

func TestEndToEnd_DocumentLifecycle(t *testing.T) {
	srv, docsDir := newTestServer(t)
	client := utils.NewHTTPClient(srv.URL)

	// sign in
	resp, err := client.R().
		SetFormData(map[string]string{"username": "admin", "password": "secret"}).
		Post("/users/signin")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), "Welcome!")
	assert.Contains(t, resp.String(), "Signed in as admin")

	// create
	resp, err = client.R().SetFormData(map[string]string{"filename": "report.md"}).Post("/create")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), "report.md has been created.")

	// write
	resp, err = client.R().SetFormData(map[string]string{"content": "# Title"}).Post("/report.md")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	// read
	resp, err = client.R().Get("/report.md")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "<h1>Title</h1>")
	assert.Contains(t, resp.String(), "report.md has been updated")

	// duplicate
	resp, err = client.R().Post("/report.md/duplicate")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())
	assert.FileExists(t, filepath.Join(docsDir, "report_copy.md"))

	// sign out
	resp, err = client.R().Post("/users/signout")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	// delete is refused
	resp, err = client.R().Post("/report.md/delete")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), "Sorry, you must be signed in to perform this action.")
	assert.Contains(t, resp.String(), "Sign In")
	assert.FileExists(t, filepath.Join(docsDir, "report.md"))
}

func TestEndToEnd_PlainTextAndMissingDocument(t *testing.T) {
	srv, docsDir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "history.txt"), []byte("1995 - Ruby 0.95 released."), 0o644))
	client := utils.NewHTTPClient(srv.URL)

	resp, err := client.R().Get("/history.txt")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "text/plain", resp.Header().Get("Content-Type"))
	assert.Equal(t, "1995 - Ruby 0.95 released.", resp.String())

	resp, err = client.R().Get("/nonexisting.txt")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), "nonexisting.txt does not exist")

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.NotContains(t, resp.String(), "nonexisting.txt does not exist")
}

func TestEndToEnd_SignUpThenSignIn(t *testing.T) {
	srv, _ := newTestServer(t)
	client := utils.NewHTTPClient(srv.URL)

	resp, err := client.R().
		SetFormData(map[string]string{"username": "guest", "password": "letmein"}).
		Post("/users/signup")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())
	assert.Equal(t, "/users/signin", resp.Header().Get("Location"))

	resp, err = client.R().Get("/users/signin")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), "guest has been registered. Please sign in.")

	resp, err = client.R().
		SetFormData(map[string]string{"username": "guest", "password": "letmein"}).
		Post("/users/signup")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.Contains(t, resp.String(), "Sorry, guest is already taken.")

	resp, err = client.R().
		SetFormData(map[string]string{"username": "guest", "password": "letmein"}).
		Post("/users/signin")
	require.NoError(t, err)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode())

	resp, err = client.R().Get("/")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), "Signed in as guest")
}

func TestEndToEnd_InvalidCredentials(t *testing.T) {
	srv, _ := newTestServer(t)
	client := utils.NewHTTPClient(srv.URL)

	resp, err := client.R().
		SetFormData(map[string]string{"username": "admin", "password": "wrong"}).
		Post("/users/signin")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.Contains(t, resp.String(), "Invalid Credentials")
}
