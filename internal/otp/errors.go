// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package otp

import "errors"

var (
	// ErrNotFound covers unknown, malformed, consumed and superseded codes alike
	ErrNotFound = errors.New("invalid OTP")
	ErrExpired  = errors.New("OTP expired")
)
