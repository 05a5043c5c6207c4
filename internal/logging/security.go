// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	appID = "workload-service"

	levelInfo = "INFO"
	levelWarn = "WARN"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// Option adds extra fields to a security event.
type Option func(*[]zap.Field)

// WithRequest attaches the request id and client address to the event.
func WithRequest(requestID, remoteAddr string) Option {
	return func(fields *[]zap.Field) {
		*fields = append(*fields,
			zap.String("request_id", requestID),
			zap.String("source_ip", remoteAddr),
		)
	}
}

// WithLabel attaches an arbitrary key/value to the event.
func WithLabel(key, value string) Option {
	return func(fields *[]zap.Field) {
		*fields = append(*fields, zap.String(key, value))
	}
}

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup(opts ...Option) {
	s.log(levelInfo, "sys_startup", "", "system started", opts...)
}

func (s *SecurityLogger) SystemShutdown(opts ...Option) {
	s.log(levelInfo, "sys_shutdown", "", "system shutting down", opts...)
}

func (s *SecurityLogger) UserCreated(userID string, opts ...Option) {
	s.log(levelWarn, fmt.Sprintf("user_created:%s", userID), userID, "user account created", opts...)
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string, opts ...Option) {
	s.log(levelInfo, fmt.Sprintf("authn_login_success:%s", userID), userID, "user logged in", opts...)
}

// AuthnLoginFail does not take the attempted identifier, unknown accounts and
// wrong credentials must not be told apart in the logs either.
func (s *SecurityLogger) AuthnLoginFail(reason string, opts ...Option) {
	s.log(levelWarn, "authn_login_fail", "", fmt.Sprintf("login failed: %s", reason), opts...)
}

func (s *SecurityLogger) OtpIssued(userID string, opts ...Option) {
	s.log(levelInfo, fmt.Sprintf("otp_issued:%s", userID), userID, "one time code issued", opts...)
}

func (s *SecurityLogger) OtpVerified(userID string, opts ...Option) {
	s.log(levelInfo, fmt.Sprintf("otp_verified:%s", userID), userID, "one time code verified", opts...)
}

func (s *SecurityLogger) OtpFailed(userID, reason string, opts ...Option) {
	s.log(levelWarn, fmt.Sprintf("otp_failed:%s", userID), userID, fmt.Sprintf("one time code rejected: %s", reason), opts...)
}

func (s *SecurityLogger) log(level, event, userID, description string, opts ...Option) {
	fields := []zap.Field{
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", event),
		zap.String("level", level),
		zap.String("datetime", time.Now().UTC().Format(time.RFC3339)),
	}

	if userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}

	for _, opt := range opts {
		opt(&fields)
	}

	if level == levelWarn {
		s.l.Warn(description, fields...)
		return
	}

	s.l.Info(description, fields...)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
