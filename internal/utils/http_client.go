// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// The client keeps cookies between requests and never follows redirects,
// so a caller sees the redirect response (and its Set-Cookie) itself.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:4567")
//	resp, err := client.R().SetFormData(map[string]string{"username": "admin"}).Post("/users/signin")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL. Each call returns an
// independent client with its own cookie jar and connection pool.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &HTTPClient{Client: client}
}
