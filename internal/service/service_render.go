// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/models"
)

type renderService struct {
	markdown goldmark.Markdown
	logger   *logger.Logger
}

// NewRenderService returns a [RenderService] dispatching on the document
// kind. Markdown is converted with goldmark; raw HTML inside markdown is
// kept as written.
func NewRenderService(logger *logger.Logger) RenderService {
	return &renderService{
		markdown: goldmark.New(
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		logger: logger,
	}
}

func (s *renderService) Render(ctx context.Context, name string, content []byte) (models.RenderedDocument, error) {
	kind := models.KindOf(name)

	switch kind {
	case models.KindPlainText:
		return models.RenderedDocument{
			Name:        name,
			Kind:        kind,
			Body:        string(content),
			ContentType: models.ContentTypePlainText,
			Standalone:  true,
		}, nil
	case models.KindMarkdown:
		var buf bytes.Buffer
		if err := s.markdown.Convert(content, &buf); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "renderService.Render").Str("name", name).Msg("error converting markdown")
			return models.RenderedDocument{}, fmt.Errorf("error rendering %q: %w", name, err)
		}
		return models.RenderedDocument{
			Name:        name,
			Kind:        kind,
			Body:        buf.String(),
			ContentType: models.ContentTypeHTML,
		}, nil
	default:
		return models.RenderedDocument{}, fmt.Errorf("%w: %q", ErrUnsupportedDocument, name)
	}
}
