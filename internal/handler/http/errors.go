// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoSession is reported when a handler runs without the session
// middleware in front of it.
var ErrNoSession = errors.New("no session in request context")
