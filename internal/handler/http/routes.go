// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withSession)

	router.Get("/", h.index)
	router.Get("/new", h.newDocument)
	router.Post("/create", h.createDocument)

	router.Get("/users/signin", h.signInForm)
	router.Post("/users/signin", h.signIn)
	router.Post("/users/signout", h.signOut)
	router.Get("/users/signup", h.signUpForm)
	router.Post("/users/signup", h.signUp)

	router.Get("/api/version", h.getServerVersion)

	// static routes above take precedence over the filename parameter
	router.Get("/{filename}", h.viewDocument)
	router.Post("/{filename}", h.updateDocument)
	router.Get("/{filename}/edit", h.editDocument)
	router.Post("/{filename}/delete", h.deleteDocument)
	router.Post("/{filename}/duplicate", h.duplicateDocument)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
