// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the access role held by a user inside its organization.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

type Organization struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// User never exposes CredentialHash through JSON, it is only read back by the
// login flow.
type User struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Email          string  `db:"email"`
	CredentialHash *string `db:"credential_hash"`
	OrgID          string  `db:"org_id"`
	EmailVerified  bool    `db:"email_verified"`
	Role           Role    `db:"role"`
}

type OrgMember struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	UserID    string    `db:"user_id"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Task struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	OrgMemberID string    `db:"org_member_id"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Description string    `db:"description"`
}

// Otp is a one time code issued to a user. Only CodeHash is persisted, Code
// is populated on issuance so the caller can deliver it.
type Otp struct {
	ID         string     `db:"id"`
	UserID     string     `db:"user_id"`
	Code       string     `db:"-"`
	CodeHash   string     `db:"code_hash"`
	CreatedAt  time.Time  `db:"created_at"`
	ExpiresAt  time.Time  `db:"expires_at"`
	ConsumedAt *time.Time `db:"consumed_at"`
}

// Expired reports whether the code is past its expiry at instant now.
func (o *Otp) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
