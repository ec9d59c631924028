// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/logger"
)

// buildInfo answers /api/version with the version the binary was started with.
type buildInfo struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService returns the service answering /api/version.
// Surrounding whitespace in the configured version is ignored.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &buildInfo{version: version, logger: log}, nil
}

func (b *buildInfo) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("func", "buildInfo.GetAppVersion").Str("version", b.version).Send()
	return b.version
}
