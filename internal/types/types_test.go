// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestRoleValid(t *testing.T) {
	tests := []struct {
		role     Role
		expected bool
	}{
		{RoleAdmin, true},
		{RoleMember, true},
		{Role("owner"), false},
		{Role(""), false},
		{Role("Admin"), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.expected {
			t.Errorf("Role(%q).Valid() = %v, expected %v", tt.role, got, tt.expected)
		}
	}
}

func TestOtpExpired(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	o := &Otp{CreatedAt: created, ExpiresAt: created.Add(2 * time.Minute)}

	if o.Expired(created.Add(time.Minute)) {
		t.Error("code must be valid before expiry")
	}

	if o.Expired(created.Add(2 * time.Minute)) {
		t.Error("code must still be valid at the exact expiry instant")
	}

	if !o.Expired(created.Add(2*time.Minute + time.Nanosecond)) {
		t.Error("code must be expired after expiry")
	}
}
