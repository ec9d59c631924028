// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cms/internal/logger"
)

// makeLoggedRequest puts a logger writing to buf into the request context,
// the way withTraceID does.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeAccessLog(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		handler    http.HandlerFunc
		wantStatus int
		wantSize   int
	}{
		{
			name:   "page rendered",
			method: http.MethodGet,
			path:   "/",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<ul></ul>"))
			},
			wantStatus: http.StatusOK,
			wantSize:   len("<ul></ul>"),
		},
		{
			name:   "redirect after mutation",
			method: http.MethodPost,
			path:   "/about.md/delete",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusSeeOther)
			},
			wantStatus: http.StatusSeeOther,
		},
		{
			name:   "form re-rendered",
			method: http.MethodPost,
			path:   "/create",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte("form"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantSize:   len("form"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			rec := httptest.NewRecorder()
			h.withLogging(tt.handler).ServeHTTP(rec, makeLoggedRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.wantStatus, rec.Code)

			entry := decodeAccessLog(t, &buf)
			assert.Equal(t, tt.path, entry["uri"])
			assert.Equal(t, tt.method, entry["method"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/", &buf))

	entry := decodeAccessLog(t, &buf)
	assert.EqualValues(t, 0, entry["status"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	assert.Panics(t, func() {
		h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})).ServeHTTP(httptest.NewRecorder(), makeLoggedRequest(http.MethodGet, "/", &buf))
	})
}
