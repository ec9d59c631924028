// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path/filepath"

// DocumentKind is the closed set of document types the CMS knows how to
// display. The kind is derived from the filename extension only.
type DocumentKind int

const (
	// KindUnsupported is any extension without a renderer.
	KindUnsupported DocumentKind = iota
	// KindPlainText is a ".txt" document, served as-is.
	KindPlainText
	// KindMarkdown is a ".md" document, rendered to HTML.
	KindMarkdown
)

// Content types declared for rendered documents.
const (
	ContentTypePlainText = "text/plain"
	ContentTypeHTML      = "text/html"
)

// KindOf resolves the kind of the document called name.
func KindOf(name string) DocumentKind {
	switch filepath.Ext(name) {
	case ".txt":
		return KindPlainText
	case ".md":
		return KindMarkdown
	default:
		return KindUnsupported
	}
}

// String returns a short human-readable label of the kind.
func (k DocumentKind) String() string {
	switch k {
	case KindPlainText:
		return "plain text"
	case KindMarkdown:
		return "markdown"
	default:
		return "unsupported"
	}
}

// Document is a single flat file managed by the CMS.
// Its Name (base name + extension) is the only identity it has.
type Document struct {
	// Name is the filename relative to the document store root.
	Name string `json:"name"`

	// Content is the raw file content.
	Content []byte `json:"-"`
}

// RenderedDocument is the output of rendering a document for display.
type RenderedDocument struct {
	// Name of the document that was rendered.
	Name string

	// Kind the renderer dispatched on.
	Kind DocumentKind

	// Body is the raw text (plain text) or an HTML fragment (markdown).
	Body string

	// ContentType is the content declaration that goes with Body.
	ContentType string

	// Standalone reports whether Body is served on its own. When false the
	// body is an HTML fragment that belongs inside the page layout.
	Standalone bool
}
