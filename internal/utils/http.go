// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
)

// WriteText writes body to the HTTP response with the given content type.
//
// It sets the "Content-Type" header and writes the provided HTTP status code
// before sending the response body.
//
// Returns the number of bytes written and any error from the writer.
//
// Example usage:
//
//	WriteText(w, "text/plain", "1.0.0", http.StatusOK)
func WriteText(w http.ResponseWriter, contentType string, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}
