// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/utils"
	"github.com/MKhiriev/go-cms/models"
)

// CookieName is the name of the session cookie.
const CookieName = "go_cms_session"

// Codec moves a [Session] in and out of a signed HS256 cookie.
type Codec struct {
	signKey  string
	issuer   string
	duration time.Duration
}

func NewCodec(cfg config.App) *Codec {
	return &Codec{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
	}
}

// Decode restores the session carried by r. A missing, expired, tampered or
// foreign cookie yields a fresh anonymous session; the error is returned
// for logging only.
func (c *Codec) Decode(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return New(), nil
	}

	claims, err := utils.ValidateAndParseSessionToken(cookie.Value, c.signKey, c.issuer)
	if err != nil {
		s := New()
		// the stale cookie is replaced on the way out
		s.dirty = true
		return s, err
	}

	return &Session{
		username: claims.Username,
		message:  claims.Message,
	}, nil
}

// Encode signs s into a cookie valid for the configured duration.
func (c *Codec) Encode(s *Session) (*http.Cookie, error) {
	signed, err := utils.GenerateSessionToken(models.SessionClaims{
		Username: s.username,
		Message:  s.message,
	}, c.issuer, c.duration, c.signKey)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.duration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}
