// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/models"
)

type sessionGate struct {
	logger *logger.Logger
}

func NewSessionGate(logger *logger.Logger) SessionGate {
	return &sessionGate{logger: logger}
}

func (g *sessionGate) RequireAuthenticated(ctx context.Context, session models.Session) error {
	if session.Username() != "" {
		return nil
	}

	logger.FromContext(ctx).Debug().Str("func", "sessionGate.RequireAuthenticated").Msg("anonymous session rejected")
	session.SetMessage(MsgSignInRequired)
	return newFailure(ErrNotAuthorized, MsgSignInRequired)
}
