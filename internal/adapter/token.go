// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/utils"
)

const (
	// SheetsScope is the OAuth2 scope granting read and write access to
	// spreadsheets.
	SheetsScope = "https://www.googleapis.com/auth/spreadsheets"

	defaultTokenURI = "https://oauth2.googleapis.com/token"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	assertionLifetime = time.Hour
	expiryLeeway      = time.Minute
)

// ServiceAccountKey is the subset of a Google service-account JSON key file
// needed for the JWT-bearer grant.
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ClientEmail  string `json:"client_email"`
	PrivateKey   string `json:"private_key"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type serviceAccountTokenSource struct {
	client *utils.HTTPClient

	email    string
	keyID    string
	key      *rsa.PrivateKey
	tokenURI string

	now func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time

	logger *logger.Logger
}

// NewServiceAccountTokenSource reads the service-account key file at path and
// returns a [TokenSource] that exchanges signed assertions for access tokens
// at the key's token URI. Tokens are cached until shortly before they expire.
func NewServiceAccountTokenSource(path string, timeout time.Duration, logger *logger.Logger) (TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading service account key: %w", err)
	}

	var key ServiceAccountKey
	if err = json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return newServiceAccountTokenSource(key, utils.NewHTTPClient("", timeout), time.Now, logger)
}

func newServiceAccountTokenSource(key ServiceAccountKey, client *utils.HTTPClient, now func() time.Time, logger *logger.Logger) (*serviceAccountTokenSource, error) {
	if key.Type != "" && key.Type != "service_account" {
		return nil, fmt.Errorf("%w: key type %q", ErrInvalidCredentials, key.Type)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("%w: client_email and private_key are required", ErrInvalidCredentials)
	}

	rsaKey, err := utils.ParseRSAPrivateKey(key.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	tokenURI := key.TokenURI
	if tokenURI == "" {
		tokenURI = defaultTokenURI
	}

	return &serviceAccountTokenSource{
		client:   client,
		email:    key.ClientEmail,
		keyID:    key.PrivateKeyID,
		key:      rsaKey,
		tokenURI: tokenURI,
		now:      now,
		logger:   logger,
	}, nil
}

// Token implements [TokenSource].
func (s *serviceAccountTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && now.Before(s.expiry.Add(-expiryLeeway)) {
		return s.token, nil
	}

	assertion, err := utils.GenerateServiceAccountAssertion(s.key, s.keyID, s.email, SheetsScope, s.tokenURI, now, assertionLifetime)
	if err != nil {
		return "", fmt.Errorf("error signing token assertion: %w", err)
	}

	var result tokenResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		SetResult(&result).
		Post(s.tokenURI)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrMalformedResponse)
	}

	s.token = result.AccessToken
	s.expiry = now.Add(time.Duration(result.ExpiresIn) * time.Second)
	s.logger.Debug().Str("client_email", s.email).Time("expiry", s.expiry).Msg("access token refreshed")

	return s.token, nil
}
