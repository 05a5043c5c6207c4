// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/workload-service/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	SetUserCredential(ctx context.Context, id, credentialHash string) error
	LockUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, orgID string, page, size int64) ([]*types.User, error)

	CreateOrgMember(ctx context.Context, member *types.OrgMember) (*types.OrgMember, error)
	GetOrgMemberByUserID(ctx context.Context, userID string) (*types.OrgMember, error)
	ListOrgMembersByOrgID(ctx context.Context, orgID string, page, size int64) ([]*types.OrgMember, error)

	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	ListTasks(ctx context.Context, orgID string, page, size int64) ([]*types.Task, error)

	CreateOtp(ctx context.Context, o *types.Otp) (*types.Otp, error)
	GetOutstandingOtp(ctx context.Context, userID, codeHash string) (*types.Otp, error)
	InvalidateOtps(ctx context.Context, userID string, at time.Time) (int64, error)
	ConsumeOtp(ctx context.Context, id string, at time.Time) error
}
