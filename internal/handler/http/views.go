// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/utils"
)

// Names of the pages rendered inside the layout.
const (
	viewIndex    = "index"
	viewNew      = "new"
	viewEdit     = "edit"
	viewDocument = "document"
	viewSignIn   = "signin"
	viewSignUp   = "signup"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = parseViews(viewIndex, viewNew, viewEdit, viewDocument, viewSignIn, viewSignUp)

// parseViews pairs every page with the shared layout. Each page defines its
// own "content" block, so every page gets a template set of its own.
func parseViews(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}

	return parsed
}

// page is the data every view is executed with.
type page struct {
	// Message is the one-shot session message, popped right before rendering.
	Message string
	// Username is the signed-in user, empty for anonymous clients.
	Username string

	Documents []string
	Name      string
	Content   string
	Body      template.HTML
	Form      formValues
}

// formValues echoes non-secret form input back on a re-rendered form.
type formValues struct {
	Username string
}

// render executes view into a buffer and writes it with status. The pending
// session message is consumed here, so it is shown exactly once.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, view string, status int, data page) {
	log := logger.FromRequest(r)

	if s, ok := utils.GetSessionFromContext(r.Context()); ok {
		data.Message = s.PopMessage()
		data.Username = s.Username()
	}

	tmpl, ok := views[view]
	if !ok {
		log.Error().Str("func", "*Handler.render").Str("view", view).Msg("unknown view")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("view", view).Msg("error executing template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteText(w, "text/html; charset=utf-8", buf.String(), status); err != nil {
		log.Err(err).Str("func", "*Handler.render").Msg("error writing response")
	}
}

// redirectHome sends the client back to the document list.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
