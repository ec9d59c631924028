// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTML front end of the CMS.
//
// It wires the chi routes for the document list, document views and forms,
// and the sign-in / sign-up pages, and renders them with html/template
// views embedded into the binary. Request tracing, access logging, response
// compression and the signed session cookie are handled by middleware
// before a request reaches the service layer.
package http
