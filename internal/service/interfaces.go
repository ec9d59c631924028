// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RenderService turns document content into something displayable.
type RenderService interface {
	Render(ctx context.Context, name string, content []byte) (models.RenderedDocument, error)
}

// SessionGate decides whether a session may run a guarded operation.
type SessionGate interface {
	// RequireAuthenticated returns nil for a signed-in session. For an
	// anonymous one it sets the sign-in message on the session and returns
	// a [Failure] of kind [ErrNotAuthorized].
	RequireAuthenticated(ctx context.Context, session models.Session) error
}

type AuthService interface {
	Verify(ctx context.Context, username, password string) (bool, error)
	Register(ctx context.Context, username, password string) error

	SignIn(ctx context.Context, session models.Session, username, password string) error
	SignOut(ctx context.Context, session models.Session)
	SignUp(ctx context.Context, session models.Session, username, password string) error
}

// DocumentService runs the document operations on behalf of a session.
// Mutations (and the forms leading to them) require a signed-in session.
type DocumentService interface {
	List(ctx context.Context) ([]string, error)
	View(ctx context.Context, session models.Session, name string) (models.RenderedDocument, error)
	Content(ctx context.Context, session models.Session, name string) ([]byte, error)

	Create(ctx context.Context, session models.Session, name string) error
	Update(ctx context.Context, session models.Session, name string, content []byte) error
	Delete(ctx context.Context, session models.Session, name string) error
	Duplicate(ctx context.Context, session models.Session, name string) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
