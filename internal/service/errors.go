// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthorized       = errors.New("not authorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedDocument = errors.New("unsupported document type")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// User-facing messages.
const (
	MsgSignInRequired   = "Sorry, you must be signed in to perform this action."
	MsgInvalidName      = "Sorry, you must enter a valid name and extension."
	MsgEmptyUserInput   = "Sorry, username and password must not be empty."
	MsgPasswordTooLong  = "Sorry, password must not be longer than 72 bytes."
	MsgInvalidLogin     = "Invalid Credentials"
	MsgWelcome          = "Welcome!"
	MsgSignedOut        = "You have been signed out."
	msgNotFoundFmt      = "Sorry, %s does not exist."
	msgUnsupportedFmt   = "Sorry, %s cannot be displayed."
	msgCreatedFmt       = "%s has been created."
	msgUpdatedFmt       = "%s has been updated"
	msgDeletedFmt       = "%s has been deleted"
	msgRegisteredFmt    = "%s has been registered. Please sign in."
	msgUsernameTakenFmt = "Sorry, %s is already taken."
)

// Failure is a recoverable request-level error: an error kind matched with
// errors.Is, plus the message shown to the user.
type Failure struct {
	Kind    error
	Message string
}

func newFailure(kind error, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%v: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Kind
}

// UserMessage returns the user-facing message carried by err, or "" when
// err is not a [Failure].
func UserMessage(err error) string {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Message
	}

	return ""
}
