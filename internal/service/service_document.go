// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/store"
	"github.com/MKhiriev/go-cms/internal/validators"
	"github.com/MKhiriev/go-cms/models"
)

// documentService composes the document storage, the renderer and the
// session gate. Every outcome the user should hear about is written to the
// session as a one-shot message; failures are returned as [*Failure].
type documentService struct {
	documents store.DocumentStorage
	renderer  RenderService
	gate      SessionGate
	validator validators.Validator

	logger *logger.Logger
}

func NewDocumentService(documents store.DocumentStorage, renderer RenderService, gate SessionGate, logger *logger.Logger) DocumentService {
	logger.Debug().Msg("creating document service")
	return &documentService{
		documents: documents,
		renderer:  renderer,
		gate:      gate,
		validator: validators.NewInputValidator(),
		logger:    logger,
	}
}

func (d *documentService) List(ctx context.Context) ([]string, error) {
	names, err := d.documents.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.List").Msg("error listing documents")
		return nil, fmt.Errorf("error listing documents: %w", err)
	}

	return names, nil
}

func (d *documentService) View(ctx context.Context, session models.Session, name string) (models.RenderedDocument, error) {
	content, err := d.documents.Read(ctx, name)
	if err != nil {
		return models.RenderedDocument{}, d.fail(ctx, session, err, name)
	}

	rendered, err := d.renderer.Render(ctx, name, content)
	if err != nil {
		return models.RenderedDocument{}, d.fail(ctx, session, err, name)
	}

	return rendered, nil
}

func (d *documentService) Content(ctx context.Context, session models.Session, name string) ([]byte, error) {
	if err := d.gate.RequireAuthenticated(ctx, session); err != nil {
		return nil, err
	}

	content, err := d.documents.Read(ctx, name)
	if err != nil {
		return nil, d.fail(ctx, session, err, name)
	}

	return content, nil
}

func (d *documentService) Create(ctx context.Context, session models.Session, name string) error {
	if err := d.gate.RequireAuthenticated(ctx, session); err != nil {
		return err
	}

	if err := d.validateName(ctx, name); err != nil {
		return d.fail(ctx, session, err, name)
	}

	if err := d.documents.Create(ctx, name); err != nil {
		return d.fail(ctx, session, err, name)
	}

	logger.FromContext(ctx).Info().Str("user", session.Username()).Str("name", name).Msg("document created")
	session.SetMessage(fmt.Sprintf(msgCreatedFmt, name))
	return nil
}

// Update overwrites an existing document. Updating a name that does not
// exist is a NotFound failure rather than an implicit create.
func (d *documentService) Update(ctx context.Context, session models.Session, name string, content []byte) error {
	if err := d.gate.RequireAuthenticated(ctx, session); err != nil {
		return err
	}

	if !d.documents.Exists(ctx, name) {
		return d.fail(ctx, session, store.ErrDocumentNotFound, name)
	}

	if err := d.documents.Write(ctx, name, content); err != nil {
		return d.fail(ctx, session, err, name)
	}

	logger.FromContext(ctx).Info().Str("user", session.Username()).Str("name", name).Int("size", len(content)).Msg("document updated")
	session.SetMessage(fmt.Sprintf(msgUpdatedFmt, name))
	return nil
}

func (d *documentService) Delete(ctx context.Context, session models.Session, name string) error {
	if err := d.gate.RequireAuthenticated(ctx, session); err != nil {
		return err
	}

	if err := d.documents.Delete(ctx, name); err != nil {
		return d.fail(ctx, session, err, name)
	}

	logger.FromContext(ctx).Info().Str("user", session.Username()).Str("name", name).Msg("document deleted")
	session.SetMessage(fmt.Sprintf(msgDeletedFmt, name))
	return nil
}

func (d *documentService) Duplicate(ctx context.Context, session models.Session, name string) (string, error) {
	if err := d.gate.RequireAuthenticated(ctx, session); err != nil {
		return "", err
	}

	if err := d.validateName(ctx, name); err != nil {
		return "", d.fail(ctx, session, err, name)
	}

	copyName, err := d.documents.Duplicate(ctx, name)
	if err != nil {
		return "", d.fail(ctx, session, err, name)
	}

	logger.FromContext(ctx).Info().Str("user", session.Username()).Str("name", name).Str("copy", copyName).Msg("document duplicated")
	session.SetMessage(fmt.Sprintf(msgCreatedFmt, copyName))
	return copyName, nil
}

// validateName rejects names the document store would refuse to create.
func (d *documentService) validateName(ctx context.Context, name string) error {
	if err := d.validator.Validate(ctx, models.Document{Name: name}, validators.FieldName); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidName, err)
	}

	return nil
}

// fail turns a storage or render error into a [*Failure] and stores its
// message on the session. Errors without a user-facing meaning are
// returned wrapped as they are.
func (d *documentService) fail(ctx context.Context, session models.Session, err error, name string) error {
	var failure *Failure

	switch {
	case errors.Is(err, store.ErrDocumentNotFound):
		failure = newFailure(store.ErrDocumentNotFound, msgNotFoundFmt, name)
	case errors.Is(err, store.ErrInvalidName):
		failure = newFailure(store.ErrInvalidName, MsgInvalidName)
	case errors.Is(err, ErrUnsupportedDocument):
		failure = newFailure(ErrUnsupportedDocument, msgUnsupportedFmt, name)
	default:
		logger.FromContext(ctx).Err(err).Str("func", "documentService").Str("name", name).Msg("document operation failed")
		return fmt.Errorf("document operation on %q failed: %w", name, err)
	}

	session.SetMessage(failure.Message)
	return failure
}
