// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/session"
	"github.com/MKhiriev/go-cms/internal/utils"
)

// withSession decodes the session cookie into the request context. A
// changed session is signed back into the cookie right before the response
// header goes out.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		s, err := h.codec.Decode(r)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.withSession").Msg("discarding invalid session cookie")
		}

		sw := &sessionWriter{
			ResponseWriter: w,
			session:        s,
			codec:          h.codec,
			logger:         log,
		}

		next.ServeHTTP(sw, r.WithContext(utils.WithSession(r.Context(), s)))

		if !sw.wroteHeader {
			sw.WriteHeader(http.StatusOK)
		}
	})
}

type sessionWriter struct {
	http.ResponseWriter

	session     *session.Session
	codec       *session.Codec
	logger      *logger.Logger
	wroteHeader bool
}

func (w *sessionWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if w.session.Dirty() {
		cookie, err := w.codec.Encode(w.session)
		if err != nil {
			w.logger.Err(err).Str("func", "*sessionWriter.WriteHeader").Msg("error encoding session cookie")
		} else {
			http.SetCookie(w.ResponseWriter, cookie)
		}
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
