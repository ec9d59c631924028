// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the inbound transport handlers of the CMS.
package handler

import (
	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/handler/http"
	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers for every configured transport. The
// HTTP handler needs the app settings to sign session cookies.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
