// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workload

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/storage"
	"github.com/canonical/workload-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package workload -destination ./mock_workload.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workload -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workload -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(ctrl *gomock.Controller, span string) (*Service, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), span).Return(context.Background(), trace.SpanFromContext(context.Background()))

	logger := logging.NewNoopLogger()

	return NewService(mockStorage, mockTracer, monitoring.NewNoopMonitor("test", logger), logger), mockStorage
}

func TestService_ListUsersStripsCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl, "workload.Service.ListUsers")

	hash := "$2a$12$hash"
	mockStorage.EXPECT().ListUsers(gomock.Any(), "org-1", int64(1), int64(100)).Return(
		[]*types.User{{ID: "user-1", CredentialHash: &hash}, {ID: "user-2"}},
		nil,
	)

	users, err := s.ListUsers(context.Background(), "org-1", 1, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	for _, u := range users {
		if u.CredentialHash != nil {
			t.Errorf("user %s still carries a credential", u.ID)
		}
	}
}

func TestService_CreateTask(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		task        *types.Task
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			task: &types.Task{Name: " Plan ", OrgMemberID: "member-1", StartDate: start, EndDate: start.AddDate(0, 0, 3)},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, t *types.Task) (*types.Task, error) {
						if t.Name != "Plan" {
							return nil, fmt.Errorf("expected trimmed name, got %q", t.Name)
						}
						created := *t
						created.ID = "task-1"
						return &created, nil
					},
				)
			},
		},
		{
			name: "same day task",
			task: &types.Task{Name: "Plan", OrgMemberID: "member-1", StartDate: start, EndDate: start},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(&types.Task{ID: "task-1"}, nil)
			},
		},
		{
			name:        "end before start",
			task:        &types.Task{Name: "Plan", OrgMemberID: "member-1", StartDate: start, EndDate: start.AddDate(0, 0, -1)},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidTask,
		},
		{
			name:        "blank name",
			task:        &types.Task{Name: "  ", OrgMemberID: "member-1", StartDate: start, EndDate: start},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvalidTask,
		},
		{
			name: "unknown org member",
			task: &types.Task{Name: "Plan", OrgMemberID: "member-x", StartDate: start, EndDate: start},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("insert task: %w", storage.ErrForeignKeyViolation))
			},
			expectedErr: ErrOrgMemberNotFound,
		},
		{
			name: "check constraint",
			task: &types.Task{Name: "Plan", OrgMemberID: "member-1", StartDate: start, EndDate: start},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("insert task: %w", storage.ErrCheckViolation))
			},
			expectedErr: ErrInvalidTask,
		},
		{
			name: "storage error",
			task: &types.Task{Name: "Plan", OrgMemberID: "member-1", StartDate: start, EndDate: start},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl, "workload.Service.CreateTask")
			tc.setupMocks(mockStorage)

			task, err := s.CreateTask(context.Background(), tc.task)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if task.ID != "task-1" {
				t.Errorf("expected task-1, got %s", task.ID)
			}
		})
	}
}

func TestService_ListTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl, "workload.Service.ListTasks")
	mockStorage.EXPECT().ListTasks(gomock.Any(), "", int64(2), int64(10)).Return([]*types.Task{{ID: "task-1"}}, nil)

	tasks, err := s.ListTasks(context.Background(), "", 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 1 || tasks[0].ID != "task-1" {
		t.Errorf("unexpected tasks %v", tasks)
	}
}

func TestService_ListOrgMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage := newTestService(ctrl, "workload.Service.ListOrgMembers")
	mockStorage.EXPECT().ListOrgMembersByOrgID(gomock.Any(), "org-1", int64(1), int64(100)).Return(nil, errors.New("db error"))

	if _, err := s.ListOrgMembers(context.Background(), "org-1", 1, 100); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}

func TestService_GetOrgMemberByUser(t *testing.T) {
	testCases := []struct {
		name        string
		member      *types.OrgMember
		storageErr  error
		expectedErr error
	}{
		{
			name:   "found",
			member: &types.OrgMember{ID: "member-1", UserID: "user-1", Role: types.RoleAdmin},
		},
		{
			name:        "not found",
			storageErr:  storage.ErrNotFound,
			expectedErr: ErrOrgMemberNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(ctrl, "workload.Service.GetOrgMemberByUser")
			mockStorage.EXPECT().GetOrgMemberByUserID(gomock.Any(), "user-1").Return(tc.member, tc.storageErr)

			m, err := s.GetOrgMemberByUser(context.Background(), "user-1")

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}

			if tc.expectedErr == nil && m.ID != "member-1" {
				t.Errorf("unexpected member %+v", m)
			}
		})
	}
}
