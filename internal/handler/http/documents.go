// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/utils"
)

const filenameParam = "filename"

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	names, err := h.services.DocumentService.List(r.Context())
	if err != nil {
		h.respondError(w, r, err, "", page{})
		return
	}

	h.render(w, r, viewIndex, http.StatusOK, page{Documents: names})
}

func (h *Handler) newDocument(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.services.SessionGate.RequireAuthenticated(r.Context(), s); err != nil {
		h.respondError(w, r, err, "", page{})
		return
	}

	h.render(w, r, viewNew, http.StatusOK, page{})
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	name := r.FormValue(filenameParam)
	if err := h.services.DocumentService.Create(r.Context(), s, name); err != nil {
		h.respondError(w, r, err, viewNew, page{Name: name})
		return
	}

	redirectHome(w, r)
}

// viewDocument serves plain text on its own and places rendered markdown
// inside the layout.
func (h *Handler) viewDocument(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, filenameParam)
	rendered, err := h.services.DocumentService.View(r.Context(), s, name)
	if err != nil {
		h.respondError(w, r, err, "", page{})
		return
	}

	if rendered.Standalone {
		if _, err := utils.WriteText(w, rendered.ContentType, rendered.Body, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.viewDocument").Msg("error writing document")
		}
		return
	}

	h.render(w, r, viewDocument, http.StatusOK, page{
		Name: name,
		// produced by the markdown renderer, raw HTML is allowed on purpose
		Body: template.HTML(rendered.Body),
	})
}

func (h *Handler) editDocument(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, filenameParam)
	content, err := h.services.DocumentService.Content(r.Context(), s, name)
	if err != nil {
		h.respondError(w, r, err, "", page{})
		return
	}

	h.render(w, r, viewEdit, http.StatusOK, page{Name: name, Content: string(content)})
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, filenameParam)
	content := r.FormValue("content")
	if err := h.services.DocumentService.Update(r.Context(), s, name, []byte(content)); err != nil {
		h.respondError(w, r, err, viewEdit, page{Name: name, Content: content})
		return
	}

	redirectHome(w, r)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, filenameParam)
	if err := h.services.DocumentService.Delete(r.Context(), s, name); err != nil {
		h.respondError(w, r, err, "", page{})
		return
	}

	redirectHome(w, r)
}

func (h *Handler) duplicateDocument(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, filenameParam)
	if _, err := h.services.DocumentService.Duplicate(r.Context(), s, name); err != nil {
		h.respondError(w, r, err, "", page{})
		return
	}

	redirectHome(w, r)
}
