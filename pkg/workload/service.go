// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/storage"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListUsers(ctx context.Context, orgID string, page, size int64) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "workload.Service.ListUsers")
	defer span.End()

	users, err := s.storage.ListUsers(ctx, orgID, page, size)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		u.CredentialHash = nil
	}

	return users, nil
}

// CreateTask stores a task for an existing org member, the end date may not
// precede the start date.
func (s *Service) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "workload.Service.CreateTask")
	defer span.End()

	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidTask)
	}

	if t.EndDate.Before(t.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidTask)
	}

	task, err := s.storage.CreateTask(ctx, t)
	switch {
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, ErrOrgMemberNotFound
	case errors.Is(err, storage.ErrCheckViolation):
		return nil, fmt.Errorf("%w: %v", ErrInvalidTask, err)
	case err != nil:
		return nil, err
	}

	s.logger.Debugf("created task %s for org member %s", task.ID, task.OrgMemberID)

	return task, nil
}

func (s *Service) ListTasks(ctx context.Context, orgID string, page, size int64) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "workload.Service.ListTasks")
	defer span.End()

	return s.storage.ListTasks(ctx, orgID, page, size)
}

func (s *Service) ListOrgMembers(ctx context.Context, orgID string, page, size int64) ([]*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "workload.Service.ListOrgMembers")
	defer span.End()

	return s.storage.ListOrgMembersByOrgID(ctx, orgID, page, size)
}

func (s *Service) GetOrgMemberByUser(ctx context.Context, userID string) (*types.OrgMember, error) {
	ctx, span := s.tracer.Start(ctx, "workload.Service.GetOrgMemberByUser")
	defer span.End()

	m, err := s.storage.GetOrgMemberByUserID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrOrgMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
