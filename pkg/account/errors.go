// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUserNotFound   = errors.New("user not found")
	// ErrInvalidCredentials is returned for every login failure so callers
	// cannot tell unknown emails from wrong passwords
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyVerified    = errors.New("user already verified")
	ErrInvalidInput       = errors.New("invalid input")
)
