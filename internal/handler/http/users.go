// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms/models"
)

func userFromForm(r *http.Request) models.User {
	return models.User{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
}

func (h *Handler) signInForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, viewSignIn, http.StatusOK, page{})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	user := userFromForm(r)
	if err := h.services.AuthService.SignIn(r.Context(), s, user.Username, user.Password); err != nil {
		h.respondError(w, r, err, viewSignIn, page{Form: formValues{Username: user.Username}})
		return
	}

	redirectHome(w, r)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	h.services.AuthService.SignOut(r.Context(), s)
	redirectHome(w, r)
}

func (h *Handler) signUpForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, viewSignUp, http.StatusOK, page{})
}

// signUp registers the user and sends them to the sign-in form; the session
// itself stays anonymous.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	user := userFromForm(r)
	if err := h.services.AuthService.SignUp(r.Context(), s, user.Username, user.Password); err != nil {
		h.respondError(w, r, err, viewSignUp, page{Form: formValues{Username: user.Username}})
		return
	}

	http.Redirect(w, r, "/users/signin", http.StatusSeeOther)
}
