// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"path/filepath"

	"github.com/MKhiriev/go-cms/models"
)

// Field names accepted by [InputValidator].
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldPassword = "password"
)

// maxPasswordBytes is the longest password bcrypt can hash.
const maxPasswordBytes = 72

// InputValidator validates documents (by name) and sign-up users.
type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Document:
		return v.validateDocument(ctx, value, fields...)
	case *models.Document:
		return v.validateDocument(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateDocument(_ context.Context, document models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if document.Name == "" {
				return ErrEmptyName
			}
			// a bare trailing dot is no extension either
			if len(filepath.Ext(document.Name)) < 2 {
				return ErrMissingExtension
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
