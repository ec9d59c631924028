// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/store"
	"github.com/MKhiriev/go-cms/internal/validators"
	"github.com/MKhiriev/go-cms/models"
)

// authService verifies and registers credentials kept in a
// [store.CredentialStorage]. The mapping is reloaded on every call so
// changes made by other processes are seen; every registration persists the
// whole mapping back.
type authService struct {
	credentials store.CredentialStorage
	validator   validators.Validator

	// bcryptCost is the work factor for newly registered passwords.
	bcryptCost int

	// dummyHash is compared against for unknown usernames.
	dummyHash []byte

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] and loads the credential
// mapping once to make sure the backing resource is usable. A failure here
// is a configuration error.
func NewAuthService(ctx context.Context, credentials store.CredentialStorage, cfg config.App, logger *logger.Logger) (AuthService, error) {
	if _, err := credentials.Load(ctx); err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error loading credentials")
		return nil, fmt.Errorf("error loading credentials: %w", err)
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("go-cms"), cost)
	if err != nil {
		return nil, fmt.Errorf("error preparing password hashing: %w", err)
	}

	return &authService{
		credentials: credentials,
		validator:   validators.NewInputValidator(),
		bcryptCost:  cost,
		dummyHash:   dummyHash,
		logger:      logger,
	}, nil
}

// Verify reports whether username exists and password matches its hash.
// Unknown usernames are not an error.
func (a *authService) Verify(ctx context.Context, username, password string) (bool, error) {
	credentials, err := a.credentials.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("error loading credentials: %w", err)
	}

	hash, ok := credentials[username]
	if !ok {
		// same amount of work as for a known user
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.FromContext(ctx).Warn().Err(err).Str("user", username).Msg("stored password hash is malformed")
		}
		return false, nil
	}

	return true, nil
}

// Register adds username with a fresh bcrypt hash of password and persists
// the whole mapping. An existing entry is never overwritten.
func (a *authService) Register(ctx context.Context, username, password string) error {
	if err := a.validator.Validate(ctx, models.User{Username: username, Password: password}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	credentials, err := a.credentials.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading credentials: %w", err)
	}

	if _, taken := credentials[username]; taken {
		return store.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return fmt.Errorf("error hashing password: %w", err)
	}

	updated := credentials.Clone()
	updated[username] = string(hash)

	if err := a.credentials.Persist(ctx, updated); err != nil {
		return fmt.Errorf("error persisting credentials: %w", err)
	}

	return nil
}

func (a *authService) SignIn(ctx context.Context, session models.Session, username, password string) error {
	log := logger.FromContext(ctx)

	ok, err := a.Verify(ctx, username, password)
	if err != nil {
		log.Err(err).Str("func", "authService.SignIn").Msg("error verifying credentials")
		return err
	}

	if !ok {
		log.Info().Str("user", username).Msg("sign in rejected")
		session.ClearUsername()
		session.SetMessage(MsgInvalidLogin)
		return newFailure(ErrInvalidCredentials, MsgInvalidLogin)
	}

	log.Info().Str("user", username).Msg("signed in")
	session.SetUsername(username)
	session.SetMessage(MsgWelcome)
	return nil
}

func (a *authService) SignOut(ctx context.Context, session models.Session) {
	logger.FromContext(ctx).Info().Str("user", session.Username()).Msg("signed out")
	session.ClearUsername()
	session.SetMessage(MsgSignedOut)
}

// SignUp registers a new user. The session stays anonymous; the user signs
// in afterwards.
func (a *authService) SignUp(ctx context.Context, session models.Session, username, password string) error {
	log := logger.FromContext(ctx)

	var failure *Failure
	switch err := a.Register(ctx, username, password); {
	case err == nil:
		log.Info().Str("user", username).Msg("user registered")
		session.SetMessage(fmt.Sprintf(msgRegisteredFmt, username))
		return nil
	case errors.Is(err, validators.ErrPasswordTooLong), errors.Is(err, bcrypt.ErrPasswordTooLong):
		failure = newFailure(ErrInvalidInput, MsgPasswordTooLong)
	case errors.Is(err, ErrInvalidInput):
		failure = newFailure(ErrInvalidInput, MsgEmptyUserInput)
	case errors.Is(err, store.ErrUserAlreadyExists):
		failure = newFailure(store.ErrUserAlreadyExists, msgUsernameTakenFmt, username)
	default:
		log.Err(err).Str("func", "authService.SignUp").Str("user", username).Msg("registration failed")
		return err
	}

	session.SetMessage(failure.Message)
	return failure
}
