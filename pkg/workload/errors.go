// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workload

import "errors"

var (
	ErrOrgMemberNotFound = errors.New("org member not found")
	ErrInvalidTask       = errors.New("invalid task")
)
