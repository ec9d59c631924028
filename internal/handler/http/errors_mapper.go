// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/service"
	"github.com/MKhiriev/go-cms/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrInvalidName:          http.StatusUnprocessableEntity,
	service.ErrInvalidInput:       http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials: http.StatusUnprocessableEntity,
	store.ErrUserAlreadyExists:    http.StatusUnprocessableEntity,

	service.ErrNotAuthorized:       http.StatusSeeOther,
	store.ErrDocumentNotFound:      http.StatusSeeOther,
	service.ErrUnsupportedDocument: http.StatusSeeOther,

	store.ErrCredentialsUnavailable: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:       http.StatusInternalServerError,
	store.ErrExecutingQuery:         http.StatusInternalServerError,
	store.ErrBeginningTransaction:   http.StatusInternalServerError,
	store.ErrCommitingTransaction:   http.StatusInternalServerError,
	store.ErrExecutingStatement:     http.StatusInternalServerError,
	store.ErrScanningRows:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError answers a failed request. Redirect-class failures send the
// client home, where the message left on the session is shown. Validation
// failures re-render form (when there is one) with 422.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, form string, data page) {
	switch status := statusFromError(err); status {
	case http.StatusSeeOther:
		redirectHome(w, r)
	case http.StatusUnprocessableEntity:
		if form == "" {
			redirectHome(w, r)
			return
		}
		h.render(w, r, form, status, data)
	default:
		logger.FromRequest(r).Err(err).Str("func", "*Handler.respondError").Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
	}
}
