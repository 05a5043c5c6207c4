// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"

	"github.com/canonical/workload-service/internal/types"
)

// ServiceInterface drives a user from signup through OTP verification to login.
type ServiceInterface interface {
	Signup(ctx context.Context, name, email string) (*Challenge, error)
	VerifyOtp(ctx context.Context, userID, code, password string) error
	Login(ctx context.Context, email, password string) (*types.User, error)
	ResendOtp(ctx context.Context, userID string) (*Challenge, error)
}

// StorageInterface is the subset of internal/storage used by the account flows.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	SetUserCredential(ctx context.Context, id, credentialHash string) error
	CreateOrgMember(ctx context.Context, member *types.OrgMember) (*types.OrgMember, error)
}

// OTPInterface is the subset of internal/otp used by the account flows.
type OTPInterface interface {
	Issue(ctx context.Context, userID string) (*types.Otp, error)
	Validate(ctx context.Context, userID, code string) (*types.Otp, error)
	Consume(ctx context.Context, o *types.Otp) error
}

type HasherInterface interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TxInterface runs fn inside one database transaction, see internal/db.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
