// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/internal/types"
)

var errQueryNotServed = errors.New("query not served")

type capturedStatement struct {
	query string
	args  []any
}

// captureRunner records every statement and answers from canned values.
type captureRunner struct {
	statements   []capturedStatement
	row          []any
	rowErr       error
	rowsAffected int64
}

func (r *captureRunner) record(query string, args []any) {
	r.statements = append(r.statements, capturedStatement{query: query, args: args})
}

func (r *captureRunner) last(t *testing.T) capturedStatement {
	t.Helper()
	if len(r.statements) == 0 {
		t.Fatal("no statement was run")
	}
	return r.statements[len(r.statements)-1]
}

func (r *captureRunner) Exec(query string, args ...any) (sql.Result, error) {
	return r.ExecContext(context.Background(), query, args...)
}

func (r *captureRunner) Query(query string, args ...any) (*sql.Rows, error) {
	return r.QueryContext(context.Background(), query, args...)
}

func (r *captureRunner) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	r.record(query, args)
	return captureResult(r.rowsAffected), nil
}

func (r *captureRunner) QueryContext(_ context.Context, query string, args ...any) (*sql.Rows, error) {
	r.record(query, args)
	return nil, errQueryNotServed
}

func (r *captureRunner) QueryRowContext(_ context.Context, query string, args ...any) sq.RowScanner {
	r.record(query, args)
	return captureRow{values: r.row, err: r.rowErr}
}

type captureResult int64

func (captureResult) LastInsertId() (int64, error) { return 0, nil }

func (r captureResult) RowsAffected() (int64, error) { return int64(r), nil }

type captureRow struct {
	values []any
	err    error
}

func (r captureRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan into %d destinations, %d values", len(dest), len(r.values))
	}
	for i, v := range r.values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type captureClient struct {
	runner *captureRunner
}

func (c captureClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.runner)
}

func (c captureClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (captureClient) Ping(context.Context) error { return nil }

func (captureClient) Close() {}

func newCaptureStorage(runner *captureRunner) *Storage {
	logger := logging.NewNoopLogger()
	return NewStorage(captureClient{runner: runner}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func assertNoTimeArgs(t *testing.T, args []any) {
	t.Helper()
	for _, a := range args {
		if _, ok := a.(time.Time); ok {
			t.Errorf("timestamps must come from the database clock, got argument %v", a)
		}
	}
}

func TestCreateOrganizationUsesDatabaseClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runner := &captureRunner{row: []any{"org-1", "Ada's Organization", now, now}}
	s := newCaptureStorage(runner)

	org, err := s.CreateOrganization(context.Background(), &types.Organization{Name: "Ada's Organization"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stmt := runner.last(t)
	if !strings.Contains(stmt.query, "VALUES ($1,$2,now(),now())") {
		t.Errorf("unexpected insert %q", stmt.query)
	}
	if len(stmt.args) != 2 || stmt.args[1] != "Ada's Organization" {
		t.Errorf("unexpected arguments %v", stmt.args)
	}
	assertNoTimeArgs(t, stmt.args)

	if !org.CreatedAt.Equal(now) || !org.UpdatedAt.Equal(now) {
		t.Errorf("expected timestamps read back from the database, got %+v", org)
	}
}

func TestCreateOrgMemberUsesDatabaseClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runner := &captureRunner{row: []any{"member-1", "org-1", "user-1", types.RoleAdmin, now, now}}
	s := newCaptureStorage(runner)

	member, err := s.CreateOrgMember(context.Background(), &types.OrgMember{OrgID: "org-1", UserID: "user-1", Role: types.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stmt := runner.last(t)
	if !strings.Contains(stmt.query, "VALUES ($1,$2,$3,$4,now(),now())") {
		t.Errorf("unexpected insert %q", stmt.query)
	}
	if len(stmt.args) != 4 || stmt.args[1] != "org-1" || stmt.args[2] != "user-1" || stmt.args[3] != "admin" {
		t.Errorf("unexpected arguments %v", stmt.args)
	}
	assertNoTimeArgs(t, stmt.args)

	if member.CreatedAt.IsZero() || member.Role != types.RoleAdmin {
		t.Errorf("unexpected member %+v", member)
	}
}

func TestInvalidateOtpsOnlyTouchesOutstandingCodes(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	runner := &captureRunner{rowsAffected: 2}
	s := newCaptureStorage(runner)

	n, err := s.InvalidateOtps(context.Background(), "user-1", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 invalidated codes, got %d", n)
	}

	stmt := runner.last(t)
	for _, fragment := range []string{"UPDATE otps SET consumed_at = $1", "consumed_at IS NULL", "user_id = $2"} {
		if !strings.Contains(stmt.query, fragment) {
			t.Errorf("expected %q in %q", fragment, stmt.query)
		}
	}
	if len(stmt.args) != 2 || stmt.args[0] != at || stmt.args[1] != "user-1" {
		t.Errorf("unexpected arguments %v", stmt.args)
	}
}

func TestConsumeOtp(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rowsAffected int64
		expected     error
	}{
		{name: "outstanding code", rowsAffected: 1},
		{name: "already consumed", rowsAffected: 0, expected: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &captureRunner{rowsAffected: tt.rowsAffected}
			s := newCaptureStorage(runner)

			err := s.ConsumeOtp(context.Background(), "otp-1", at)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}

			stmt := runner.last(t)
			if !strings.Contains(stmt.query, "consumed_at IS NULL") || !strings.Contains(stmt.query, "id = $2") {
				t.Errorf("consume must be conditional on the code being outstanding, got %q", stmt.query)
			}
		})
	}
}

func TestLockUser(t *testing.T) {
	tests := []struct {
		name     string
		row      []any
		rowErr   error
		expected error
	}{
		{name: "existing user", row: []any{"user-1"}},
		{name: "unknown user", rowErr: sql.ErrNoRows, expected: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &captureRunner{row: tt.row, rowErr: tt.rowErr}
			s := newCaptureStorage(runner)

			err := s.LockUser(context.Background(), "user-1")
			if !errors.Is(err, tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, err)
			}

			stmt := runner.last(t)
			if !strings.HasSuffix(stmt.query, "FOR UPDATE") {
				t.Errorf("expected a row lock, got %q", stmt.query)
			}
		})
	}
}

func TestListTasksOrgFilter(t *testing.T) {
	tests := []struct {
		name     string
		orgID    string
		joined   bool
		argCount int
	}{
		{name: "all organizations", orgID: ""},
		{name: "one organization", orgID: "org-1", joined: true, argCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := new(captureRunner)
			s := newCaptureStorage(runner)

			if _, err := s.ListTasks(context.Background(), tt.orgID, 2, 10); !errors.Is(err, errQueryNotServed) {
				t.Fatalf("expected the runner error, got %v", err)
			}

			stmt := runner.last(t)
			if got := strings.Contains(stmt.query, "JOIN org_members m ON t.org_member_id = m.id"); got != tt.joined {
				t.Errorf("expected join %v in %q", tt.joined, stmt.query)
			}
			if tt.joined && !strings.Contains(stmt.query, "m.org_id = $1") {
				t.Errorf("expected org filter in %q", stmt.query)
			}
			if !strings.Contains(stmt.query, "LIMIT 10 OFFSET 10") {
				t.Errorf("expected second page of 10 in %q", stmt.query)
			}
			if len(stmt.args) != tt.argCount {
				t.Errorf("expected %d arguments, got %v", tt.argCount, stmt.args)
			}
		})
	}
}
