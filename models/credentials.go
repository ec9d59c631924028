// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials maps a username to its salted password hash (bcrypt format,
// e.g. "$2a$10$..."). The mapping is always loaded and persisted as a whole.
type Credentials map[string]string

// Clone returns an independent copy of the mapping.
func (c Credentials) Clone() Credentials {
	clone := make(Credentials, len(c))
	for username, hash := range c {
		clone[username] = hash
	}

	return clone
}

// User is a sign-in or sign-up request submitted by a client.
type User struct {
	// Username is the unique account name.
	Username string `json:"username"`

	// Password is the plain-text password as typed by the user.
	// It is never persisted; only its salted hash is.
	Password string `json:"-"`
}
