// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workload

import (
	"time"

	"github.com/canonical/workload-service/internal/types"
)

// dateLayout is the calendar date format used for task dates on the wire.
const dateLayout = time.DateOnly

type CreateTaskRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	OrgMemberID string `json:"org_member_id" validate:"required,uuid"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"max=4096"`
}

// Task converts the request, dates are expected to be validated already.
func (r *CreateTaskRequest) Task() (*types.Task, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &types.Task{
		Name:        r.Name,
		OrgMemberID: r.OrgMemberID,
		StartDate:   start,
		EndDate:     end,
		Description: r.Description,
	}, nil
}

type TaskResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	OrgMemberID string `json:"org_member_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

func NewTaskResponse(t *types.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		OrgMemberID: t.OrgMemberID,
		StartDate:   t.StartDate.Format(dateLayout),
		EndDate:     t.EndDate.Format(dateLayout),
		Description: t.Description,
	}
}

type OrgMemberResponse struct {
	ID        string     `json:"id"`
	OrgID     string     `json:"org_id"`
	UserID    string     `json:"user_id"`
	Role      types.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewOrgMemberResponse(m *types.OrgMember) *OrgMemberResponse {
	return &OrgMemberResponse{
		ID:        m.ID,
		OrgID:     m.OrgID,
		UserID:    m.UserID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ListResponse wraps every list endpoint so pagination is visible to clients.
type ListResponse[T any] struct {
	Data []T   `json:"data"`
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}
