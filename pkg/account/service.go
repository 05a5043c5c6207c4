// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/password"
	"github.com/canonical/workload-service/internal/storage"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	otp     OTPInterface
	hasher  HasherInterface
	tx      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NormalizeEmail is applied to every email before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates the organization, the admin user and its membership, then
// issues the first code. Everything happens in one transaction, a failure at
// any step leaves no rows behind.
func (s *Service) Signup(ctx context.Context, name, email string) (*Challenge, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Signup")
	defer span.End()

	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" || email == "" {
		return nil, ErrInvalidInput
	}

	var (
		user      *types.User
		challenge *Challenge
	)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		_, err := s.storage.GetUserByEmail(ctx, email)
		if err == nil {
			return ErrDuplicateEmail
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		org, err := s.storage.CreateOrganization(ctx, &types.Organization{Name: fmt.Sprintf("%s's Organization", name)})
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		user, err = s.storage.CreateUser(
			ctx,
			&types.User{
				Name:  name,
				Email: email,
				OrgID: org.ID,
				Role:  types.RoleAdmin,
			},
		)
		if errors.Is(err, storage.ErrDuplicateKey) {
			return ErrDuplicateEmail
		}
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		_, err = s.storage.CreateOrgMember(
			ctx,
			&types.OrgMember{
				OrgID:  org.ID,
				UserID: user.ID,
				Role:   user.Role,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to create org member: %w", err)
		}

		challenge, err = s.issue(ctx, user.ID)
		return err
	})

	if err != nil {
		return nil, err
	}

	opts := logging.RequestOptions(ctx)
	s.logger.Security().UserCreated(user.ID, opts...)
	s.logger.Security().OtpIssued(user.ID, opts...)

	return challenge, nil
}

// VerifyOtp checks the code, sets the credential and marks the email verified.
// It does not require the user to be unverified, verifying again replaces the
// credential.
func (s *Service) VerifyOtp(ctx context.Context, userID, code, pw string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.VerifyOtp")
	defer span.End()

	if pw == "" {
		return ErrInvalidInput
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		o, err := s.otp.Validate(ctx, userID, code)
		if err != nil {
			return err
		}

		if _, err := s.storage.GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		hash, err := s.hasher.Hash(pw)
		if errors.Is(err, password.ErrTooLong) {
			return ErrInvalidInput
		}
		if err != nil {
			return fmt.Errorf("failed to hash credential: %w", err)
		}

		if err := s.storage.SetUserCredential(ctx, userID, hash); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to set credential: %w", err)
		}

		return s.otp.Consume(ctx, o)
	})

	if err != nil {
		return err
	}

	s.logger.Security().OtpVerified(userID, logging.RequestOptions(ctx)...)

	return nil
}

// Login returns ErrInvalidCredentials for any failure caused by the caller's
// input, the reason only reaches the security log.
func (s *Service) Login(ctx context.Context, email, pw string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.Login")
	defer span.End()

	opts := logging.RequestOptions(ctx)

	user, err := s.storage.GetUserByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().AuthnLoginFail("unknown account", opts...)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.EmailVerified || user.CredentialHash == nil {
		s.logger.Security().AuthnLoginFail("account not verified", opts...)
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(*user.CredentialHash, pw); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.logger.Errorf("failed to compare credential of user %s: %v", user.ID, err)
		}
		s.logger.Security().AuthnLoginFail("credential mismatch", opts...)
		return nil, ErrInvalidCredentials
	}

	s.logger.Security().AuthnLoginSuccess(user.ID, opts...)

	user.CredentialHash = nil

	return user, nil
}

// ResendOtp replaces the outstanding code of an unverified user.
func (s *Service) ResendOtp(ctx context.Context, userID string) (*Challenge, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.ResendOtp")
	defer span.End()

	var challenge *Challenge

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		user, err := s.storage.GetUserByID(ctx, userID)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		if user.EmailVerified {
			return ErrAlreadyVerified
		}

		challenge, err = s.issue(ctx, user.ID)
		return err
	})

	if err != nil {
		return nil, err
	}

	s.logger.Security().OtpIssued(userID, logging.RequestOptions(ctx)...)

	return challenge, nil
}

func (s *Service) issue(ctx context.Context, userID string) (*Challenge, error) {
	o, err := s.otp.Issue(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue otp: %w", err)
	}

	return &Challenge{UserID: userID, Code: o.Code, ExpiresAt: o.ExpiresAt}, nil
}

func NewService(
	storage StorageInterface,
	otp OTPInterface,
	hasher HasherInterface,
	tx TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.otp = otp
	s.hasher = hasher
	s.tx = tx

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
