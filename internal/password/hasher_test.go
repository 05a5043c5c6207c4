// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "secret" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if err := h.Compare(hash, "secret"); err != nil {
		t.Errorf("expected match, got %v", err)
	}

	if err := h.Compare(hash, "Secret"); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, _ := h.Hash("secret")
	second, _ := h.Hash("secret")

	if first == second {
		t.Error("expected different hashes for the same credential")
	}
}

func TestHashTooLong(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("a", 73)); !errors.Is(err, ErrTooLong) {
		t.Errorf("expected ErrTooLong, got %v", err)
	}
}

func TestCompareInvalidHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	err := h.Compare("not-a-hash", "secret")
	if err == nil || errors.Is(err, ErrMismatch) {
		t.Errorf("expected a non mismatch error, got %v", err)
	}
}

func TestNewHasherCost(t *testing.T) {
	tests := []struct {
		cost     int
		expected int
	}{
		{cost: 0, expected: bcrypt.DefaultCost},
		{cost: 2, expected: bcrypt.MinCost},
		{cost: 12, expected: 12},
		{cost: 99, expected: bcrypt.MaxCost},
	}

	for _, tt := range tests {
		if got := NewHasher(tt.cost).Cost(); got != tt.expected {
			t.Errorf("NewHasher(%d).Cost() = %d, expected %d", tt.cost, got, tt.expected)
		}
	}
}
