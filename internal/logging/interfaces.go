// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits security relevant events using the OWASP
// logging vocabulary.
//
// See https://cheatsheetseries.owasp.org/cheatsheets/Logging_Vocabulary_Cheat_Sheet.html
type SecurityLoggerInterface interface {
	SystemStartup(...Option)
	SystemShutdown(...Option)
	UserCreated(userID string, opts ...Option)
	AuthnLoginSuccess(userID string, opts ...Option)
	AuthnLoginFail(reason string, opts ...Option)
	OtpIssued(userID string, opts ...Option)
	OtpVerified(userID string, opts ...Option)
	OtpFailed(userID, reason string, opts ...Option)
}
