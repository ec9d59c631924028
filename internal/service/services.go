// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	AppInfoService  AppInfoService
	SessionGate     SessionGate
}

// NewServices wires the service layer over storages. It fails when the
// credential resource cannot be loaded or the version is missing.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(ctx, storages.CredentialStorage, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	gate := NewSessionGate(logger)
	documentService := NewDocumentService(
		storages.DocumentStorage,
		NewRenderService(logger),
		gate,
		logger,
	)

	return &Services{
		AuthService:     authService,
		DocumentService: documentService,
		AppInfoService:  appInfoService,
		SessionGate:     gate,
	}, nil
}
