// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrapConstraintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			expected: ErrDuplicateKey,
		},
		{
			name:     "wrapped unique violation",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}),
			expected: ErrDuplicateKey,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			expected: ErrForeignKeyViolation,
		},
		{
			name:     "check violation",
			err:      &pgconn.PgError{Code: "23514", ConstraintName: "tasks_dates_ordered"},
			expected: ErrCheckViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapConstraintError(tt.err, "insert row")
			if !errors.Is(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWrapConstraintErrorPassthrough(t *testing.T) {
	base := errors.New("connection reset")
	got := wrapConstraintError(base, "insert row")

	if !errors.Is(got, base) {
		t.Errorf("expected wrapped base error, got %v", got)
	}

	for _, sentinel := range []error{ErrDuplicateKey, ErrForeignKeyViolation, ErrCheckViolation} {
		if errors.Is(got, sentinel) {
			t.Errorf("unexpected sentinel %v", sentinel)
		}
	}
}

func TestPgErrorPredicates(t *testing.T) {
	if IsDuplicateKeyError(errors.New("plain")) {
		t.Error("plain errors are not duplicate key errors")
	}
	if !IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("expected foreign key violation")
	}
	if IsCheckViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation is not a check violation")
	}
}
