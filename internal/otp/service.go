// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/storage"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/internal/types"
)

const DefaultTTL = 2 * time.Minute

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	// TTL is the lifetime of an issued code
	TTL time.Duration
	// SingleUse makes Consume retire a code, when false a code stays valid
	// until it expires or a newer one is issued
	SingleUse bool
}

type Service struct {
	storage StorageInterface
	tx      TxInterface

	ttl       time.Duration
	singleUse bool

	random io.Reader
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Issue retires every outstanding code of the user and stores a new one.
// The returned record carries the plaintext code, only its hash is stored.
// Issuers for the same user are serialized on the user row, so at most one
// code is outstanding once the surrounding transaction commits. Callers log
// the issuance once that transaction has committed.
func (s *Service) Issue(ctx context.Context, userID string) (*types.Otp, error) {
	ctx, span := s.tracer.Start(ctx, "otp.Service.Issue")
	defer span.End()

	code, err := generateCode(s.random)
	if err != nil {
		return nil, err
	}

	var created *types.Otp

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.LockUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to lock user: %w", err)
		}

		now := s.now().UTC()

		invalidated, err := s.storage.InvalidateOtps(ctx, userID, now)
		if err != nil {
			return fmt.Errorf("failed to invalidate previous codes: %w", err)
		}

		if invalidated > 0 {
			s.logger.Debugf("invalidated %d outstanding codes for user %s", invalidated, userID)
		}

		created, err = s.storage.CreateOtp(ctx, &types.Otp{
			UserID:    userID,
			CodeHash:  hashCode(userID, code),
			CreatedAt: now,
			ExpiresAt: now.Add(s.ttl),
		})
		if err != nil {
			return fmt.Errorf("failed to store otp: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	created.Code = code

	return created, nil
}

// Validate finds the outstanding code of the user. It does not consume it.
func (s *Service) Validate(ctx context.Context, userID, code string) (*types.Otp, error) {
	ctx, span := s.tracer.Start(ctx, "otp.Service.Validate")
	defer span.End()

	if !validFormat(code) {
		s.logger.Security().OtpFailed(userID, "malformed code", logging.RequestOptions(ctx)...)
		return nil, ErrNotFound
	}

	o, err := s.storage.GetOutstandingOtp(ctx, userID, hashCode(userID, code))
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().OtpFailed(userID, "unknown code", logging.RequestOptions(ctx)...)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up otp: %w", err)
	}

	if o.Expired(s.now()) {
		s.logger.Security().OtpFailed(userID, "expired code", logging.RequestOptions(ctx)...)
		return nil, ErrExpired
	}

	return o, nil
}

// Consume retires a validated code. Losing a race against another consumer of
// the same code yields ErrNotFound.
func (s *Service) Consume(ctx context.Context, o *types.Otp) error {
	ctx, span := s.tracer.Start(ctx, "otp.Service.Consume")
	defer span.End()

	if !s.singleUse {
		return nil
	}

	err := s.storage.ConsumeOtp(ctx, o.ID, s.now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}

	return nil
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx

	s.ttl = cfg.TTL
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	s.singleUse = cfg.SingleUse

	s.random = rand.Reader
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
