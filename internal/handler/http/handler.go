// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/service"
	"github.com/MKhiriev/go-cms/internal/session"
	"github.com/MKhiriev/go-cms/internal/utils"
	"github.com/MKhiriev/go-cms/models"
)

type Handler struct {
	services    *service.Services
	codec       *session.Codec
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		codec:       session.NewCodec(cfg),
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// session returns the session attached by withSession. When it is missing
// the request is answered with 500 and ok is false.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (models.Session, bool) {
	s, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoSession).Str("func", "*Handler.session").Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}

	return s, true
}
