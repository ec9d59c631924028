// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Session is the per-client state bag supplied by the transport layer.
//
// It holds at most one authenticated username and at most one one-shot
// message. An empty Username means the client is anonymous.
type Session interface {
	// Username returns the signed-in username, or "" for an anonymous client.
	Username() string

	// SetUsername marks the session as signed in as username.
	SetUsername(username string)

	// ClearUsername returns the session to the anonymous state.
	ClearUsername()

	// SetMessage stores a message to be shown on the next rendered page.
	// A later call replaces an earlier, not yet consumed message.
	SetMessage(message string)

	// PopMessage returns the pending message and clears it.
	PopMessage() string
}

// SessionClaims is the signed payload of the session cookie.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Username is the signed-in user, empty when anonymous.
	Username string `json:"username,omitempty"`

	// Message is the pending one-shot message.
	Message string `json:"msg,omitempty"`
}
