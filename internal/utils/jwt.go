// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-cms/models"
)

// GenerateSessionToken signs claims as an HMAC-SHA256 JWT.
//
// The registered claims of the token are overwritten:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	signed, err := utils.GenerateSessionToken(models.SessionClaims{Username: "admin"}, "go-cms", time.Hour, "secret")
func GenerateSessionToken(claims models.SessionClaims, issuer string, duration time.Duration, signKey string) (string, error) {
	if issuer == "" || duration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseSessionToken validates tokenString and returns its claims.
//
// Validation includes:
//   - Signature verification with signKey, HS256 only
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim check
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.SessionClaims, error) {
	var claims models.SessionClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.SessionClaims{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	return claims, nil
}
