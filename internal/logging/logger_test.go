// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := newSecurityLogger(zap.New(core))

	s.SystemStartup()
	s.UserCreated("user-1", WithRequest("req-1", "10.0.0.1"))
	s.AuthnLoginFail("invalid credentials")
	s.OtpFailed("user-1", "expired", WithLabel("component", "otp"))

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	expectedEvents := []string{"sys_startup", "user_created:user-1", "authn_login_fail", "otp_failed:user-1"}
	for i, e := range entries {
		if got := e.ContextMap()["event"]; got != expectedEvents[i] {
			t.Errorf("entry %d: expected event %q, got %v", i, expectedEvents[i], got)
		}
	}

	if got := entries[1].ContextMap()["request_id"]; got != "req-1" {
		t.Errorf("expected request_id req-1, got %v", got)
	}

	if _, ok := entries[2].ContextMap()["user_id"]; ok {
		t.Errorf("login failures must not carry a user id")
	}

	if entries[3].Level != zap.WarnLevel {
		t.Errorf("expected warn level for otp failure, got %v", entries[3].Level)
	}
}
