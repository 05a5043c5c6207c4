// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/canonical/workload-service/internal/logging"
)

var errUnreachable = errors.New("database unreachable")

// unreachableConnector fails every connection attempt and counts them.
type unreachableConnector struct {
	attempts *atomic.Int32
}

func (c unreachableConnector) Connect(context.Context) (driver.Conn, error) {
	c.attempts.Add(1)
	return nil, errUnreachable
}

func (c unreachableConnector) Driver() driver.Driver { return unreachableDriver{} }

type unreachableDriver struct{}

func (unreachableDriver) Open(string) (driver.Conn, error) { return nil, errUnreachable }

func TestOffset(t *testing.T) {
	tests := []struct {
		page     int64
		size     uint64
		expected uint64
	}{
		{page: 0, size: 100, expected: 0},
		{page: -3, size: 10, expected: 0},
		{page: 1, size: 10, expected: 0},
		{page: 3, size: 25, expected: 50},
		{page: 1<<62 + 1, size: 500, expected: uint64(MaxPage-1) * 500},
	}

	for _, tt := range tests {
		if got := Offset(tt.page, tt.size); got != tt.expected {
			t.Errorf("Offset(%d, %d) = %d, expected %d", tt.page, tt.size, got, tt.expected)
		}
	}
}

func TestPageSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected uint64
	}{
		{size: 0, expected: defaultPageSize},
		{size: -1, expected: defaultPageSize},
		{size: 20, expected: 20},
		{size: 10000, expected: maxPageSize},
	}

	for _, tt := range tests {
		if got := PageSize(tt.size); got != tt.expected {
			t.Errorf("PageSize(%d) = %d, expected %d", tt.size, got, tt.expected)
		}
	}
}

func TestWithTxWithoutStatementsDoesNotOpenTransaction(t *testing.T) {
	// no *sql.DB: any attempt to open a transaction would panic
	d := new(DBClient)

	called := false
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		called = true
		if lazyTxFromContext(ctx) == nil {
			t.Error("expected a transaction scope in the context")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected fn to be called")
	}
}

func TestWithTxNestedJoinsOuterScope(t *testing.T) {
	d := new(DBClient)

	err := d.WithTx(context.Background(), func(outer context.Context) error {
		return d.WithTx(outer, func(inner context.Context) error {
			if lazyTxFromContext(inner) != lazyTxFromContext(outer) {
				t.Error("nested scope must reuse the outer transaction")
			}
			return nil
		})
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithTxBeginFailureNeverFallsBackToPool(t *testing.T) {
	attempts := new(atomic.Int32)

	d := new(DBClient)
	d.db = sql.OpenDB(unreachableConnector{attempts: attempts})
	d.logger = logging.NewNoopLogger()
	defer d.db.Close()

	var insertErr, selectErr error
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		_, insertErr = d.Statement(ctx).
			Insert("organizations").
			Columns("id", "name").
			Values("org-1", "Ada's Organization").
			ExecContext(ctx)

		var id string
		selectErr = d.Statement(ctx).
			Select("id").
			From("organizations").
			QueryRowContext(ctx).
			Scan(&id)

		// swallowed on purpose, the scope must still fail
		return nil
	})

	if !errors.Is(err, errUnreachable) {
		t.Fatalf("expected begin error from WithTx, got %v", err)
	}
	if !errors.Is(insertErr, errUnreachable) || !errors.Is(selectErr, errUnreachable) {
		t.Errorf("expected statements to fail with the begin error, got %v and %v", insertErr, selectErr)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("expected a single connection attempt for the begin, got %d", got)
	}
}
