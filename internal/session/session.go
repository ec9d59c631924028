// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the per-client session bag carried between
// requests in a signed cookie.
package session

// Session is the cookie-backed implementation of models.Session.
// It remembers whether it changed since it was decoded so the cookie is
// only re-issued when needed.
type Session struct {
	username string
	message  string
	dirty    bool
}

// New returns an anonymous session with no pending message.
func New() *Session {
	return &Session{}
}

func (s *Session) Username() string {
	return s.username
}

func (s *Session) SetUsername(username string) {
	if s.username != username {
		s.username = username
		s.dirty = true
	}
}

func (s *Session) ClearUsername() {
	s.SetUsername("")
}

func (s *Session) SetMessage(message string) {
	if s.message != message {
		s.message = message
		s.dirty = true
	}
}

func (s *Session) PopMessage() string {
	message := s.message
	s.SetMessage("")
	return message
}

// Dirty reports whether the session changed since it was created or decoded.
func (s *Session) Dirty() bool {
	return s.dirty
}
