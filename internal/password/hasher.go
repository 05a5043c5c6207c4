// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package password hashes and verifies user credentials with bcrypt.
// Plaintext credentials must never be logged or persisted.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a credential does not match the stored hash.
var ErrMismatch = errors.New("credential does not match")

// ErrTooLong is returned for credentials bcrypt would silently truncate.
var ErrTooLong = errors.New("credential exceeds 72 bytes")

const maxCredentialBytes = 72

type Hasher struct {
	cost int
}

// Hash returns a salted bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > maxCredentialBytes {
		return "", ErrTooLong
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}

	return string(b), nil
}

// Compare checks password against hash in constant time, returning
// ErrMismatch when they differ.
func (h *Hasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}

	return fmt.Errorf("failed to compare credential: %w", err)
}

// Cost returns the bcrypt cost in use.
func (h *Hasher) Cost() int {
	return h.cost
}

// NewHasher clamps cost into the range bcrypt accepts, 0 selects the default.
func NewHasher(cost int) *Hasher {
	switch {
	case cost <= 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &Hasher{cost: cost}
}
