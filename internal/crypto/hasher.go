// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
)

const argon2idPrefix = "$argon2id$"

// NewPasswordHasher returns the hasher selected by cfg.PasswordHasher. New
// hashes are produced with that algorithm; Verify accepts hashes of both
// bcrypt and argon2id so switching the setting keeps existing accounts usable.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	b := &bcryptHasher{cost: cfg.BcryptCost}
	if b.cost == 0 {
		b.cost = bcrypt.DefaultCost
	}
	a := newArgon2idHasher()

	switch cfg.PasswordHasher {
	case config.HasherBcrypt, "":
		return &dispatchHasher{primary: b, bcrypt: b, argon2id: a}, nil
	case config.HasherArgon2id:
		return &dispatchHasher{primary: a, bcrypt: b, argon2id: a}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.PasswordHasher)
	}
}

// dispatchHasher hashes with primary and verifies by the prefix of the
// stored hash.
type dispatchHasher struct {
	primary  PasswordHasher
	bcrypt   *bcryptHasher
	argon2id *argon2idHasher
}

func (d *dispatchHasher) Hash(password string) (string, error) {
	return d.primary.Hash(password)
}

func (d *dispatchHasher) Verify(hash, password string) error {
	switch {
	case strings.HasPrefix(hash, argon2idPrefix):
		return d.argon2id.Verify(hash, password)
	case strings.HasPrefix(hash, "$2"):
		return d.bcrypt.Verify(hash, password)
	default:
		return ErrUnknownHashFormat
	}
}

type bcryptHasher struct {
	cost int
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

func (b *bcryptHasher) Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatchedPassword
	default:
		return fmt.Errorf("%w: %w", ErrUnknownHashFormat, err)
	}
}

// argon2idHasher encodes hashes in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type argon2idHasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

// newArgon2idHasher uses the OWASP recommended parameters.
func newArgon2idHasher() *argon2idHasher {
	return &argon2idHasher{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
		keyLen:  32,
		saltLen: 16,
	}
}

func (a *argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, a.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memory, a.threads, a.keyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix, argon2.Version, a.memory, a.time, a.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (a *argon2idHasher) Verify(hash, password string) error {
	// "", "argon2id", "v=19", "m=...,t=...,p=...", salt, key
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return ErrUnknownHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return ErrUnknownHashFormat
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return ErrUnknownHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return ErrUnknownHashFormat
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return ErrUnknownHashFormat
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, candidate) != 1 {
		return ErrMismatchedPassword
	}
	return nil
}
