// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"time"

	"github.com/canonical/workload-service/internal/types"
)

// Challenge is the outcome of a code issuance, Code is the plaintext value to
// deliver to the user.
type Challenge struct {
	UserID    string
	Code      string
	ExpiresAt time.Time
}

type SignupRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=320"`
}

type VerifyOtpRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Otp      string `json:"otp" validate:"required,len=6,numeric"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResendOtpRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type ChallengeResponse struct {
	Message      string    `json:"message"`
	UserID       string    `json:"user_id"`
	GeneratedOtp string    `json:"generated_otp,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of a user, it never carries the credential.
type UserResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	OrgID         string     `json:"org_id"`
	EmailVerified bool       `json:"email_verified"`
	Role          types.Role `json:"access_role"`
}

func NewUserResponse(u *types.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		OrgID:         u.OrgID,
		EmailVerified: u.EmailVerified,
		Role:          u.Role,
	}
}
