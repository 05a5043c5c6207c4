// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package otp

import (
	"context"
	"time"

	"github.com/canonical/workload-service/internal/types"
)

type ServiceInterface interface {
	Issue(ctx context.Context, userID string) (*types.Otp, error)
	Validate(ctx context.Context, userID, code string) (*types.Otp, error)
	Consume(ctx context.Context, o *types.Otp) error
}

type StorageInterface interface {
	LockUser(ctx context.Context, userID string) error
	CreateOtp(ctx context.Context, o *types.Otp) (*types.Otp, error)
	GetOutstandingOtp(ctx context.Context, userID, codeHash string) (*types.Otp, error)
	InvalidateOtps(ctx context.Context, userID string, at time.Time) (int64, error)
	ConsumeOtp(ctx context.Context, id string, at time.Time) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
