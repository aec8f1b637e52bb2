// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceAccountClaims are the claims of an OAuth2 JWT-bearer assertion
// signed by a Google service account.
type ServiceAccountClaims struct {
	// Scope is the space separated list of requested OAuth2 scopes.
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateServiceAccountAssertion creates an RS256 signed assertion for the
// OAuth2 JWT-bearer grant.
//
// The assertion carries the following claims:
//   - Issuer    (iss): the service-account email
//   - Audience  (aud): the token endpoint the assertion is exchanged at
//   - Scope   (scope): the requested scopes
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus lifetime (at most one hour is accepted by Google)
//
// keyID is sent as the "kid" header when not empty.
func GenerateServiceAccountAssertion(key *rsa.PrivateKey, keyID, email, scope, audience string, now time.Time, lifetime time.Duration) (string, error) {
	if key == nil || email == "" || audience == "" || lifetime <= 0 {
		return "", errors.New("invalid params for generating service account assertion")
	}

	claims := &ServiceAccountClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    email,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if keyID != "" {
		token.Header["kid"] = keyID
	}

	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing service account assertion: %w", err)
	}
	return signed, nil
}

// ValidateServiceAccountAssertion verifies the signature, audience and expiry
// of assertion and returns its claims. Token endpoints and tests use it to
// check what GenerateServiceAccountAssertion produced.
func ValidateServiceAccountAssertion(assertion string, key *rsa.PublicKey, audience string) (ServiceAccountClaims, error) {
	var claims ServiceAccountClaims
	_, err := jwt.ParseWithClaims(assertion, &claims, func(token *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithAudience(audience))
	if err != nil {
		return ServiceAccountClaims{}, fmt.Errorf("error occurred validating service account assertion: %w", err)
	}

	if claims.Issuer == "" {
		return ServiceAccountClaims{}, errors.New("empty issuer error")
	}
	return claims, nil
}

// ParseRSAPrivateKey decodes a PEM encoded PKCS#1 or PKCS#8 RSA key, the
// format of the private_key field of service-account key files.
func ParseRSAPrivateKey(pemKey string) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("error parsing service account private key: %w", err)
	}
	return key, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
