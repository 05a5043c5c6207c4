// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workload

import (
	"context"

	"github.com/canonical/workload-service/internal/types"
)

type ServiceInterface interface {
	ListUsers(ctx context.Context, orgID string, page, size int64) ([]*types.User, error)
	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	ListTasks(ctx context.Context, orgID string, page, size int64) ([]*types.Task, error)
	ListOrgMembers(ctx context.Context, orgID string, page, size int64) ([]*types.OrgMember, error)
	GetOrgMemberByUser(ctx context.Context, userID string) (*types.OrgMember, error)
}

// StorageInterface is the subset of internal/storage used by the query surface.
type StorageInterface interface {
	ListUsers(ctx context.Context, orgID string, page, size int64) ([]*types.User, error)
	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	ListTasks(ctx context.Context, orgID string, page, size int64) ([]*types.Task, error)
	ListOrgMembersByOrgID(ctx context.Context, orgID string, page, size int64) ([]*types.OrgMember, error)
	GetOrgMemberByUserID(ctx context.Context, userID string) (*types.OrgMember, error)
}
