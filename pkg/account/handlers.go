// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/workload-service/internal/http/types"
	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/otp"
)

const (
	signupMessage   = "Signup successful. Use the OTP to verify and set your password."
	resendMessage   = "A new OTP has been issued, previous codes are no longer valid."
	verifiedMessage = "OTP verified and password set successfully."
)

type API struct {
	service ServiceInterface
	// echoOtp returns the plaintext code in the response body, there is no
	// delivery channel otherwise
	echoOtp  bool
	validate *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/signup/", a.signup)
	mux.Post("/verify-otp/", a.verifyOtp)
	mux.Post("/resend-otp/", a.resendOtp)
	mux.Post("/login/", a.login)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	req := new(SignupRequest)
	if err := httptypes.DecodeJSON(r, req, a.validate); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, httptypes.ErrorKindInvalidRequest, err.Error())
		return
	}

	challenge, err := a.service.Signup(r.Context(), req.Name, req.Email)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, a.challengeResponse(challenge, signupMessage))
}

func (a *API) verifyOtp(w http.ResponseWriter, r *http.Request) {
	req := new(VerifyOtpRequest)
	if err := httptypes.DecodeJSON(r, req, a.validate); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, httptypes.ErrorKindInvalidRequest, err.Error())
		return
	}

	if err := a.service.VerifyOtp(r.Context(), req.UserID, req.Otp, req.Password); err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, MessageResponse{Message: verifiedMessage})
}

func (a *API) resendOtp(w http.ResponseWriter, r *http.Request) {
	req := new(ResendOtpRequest)
	if err := httptypes.DecodeJSON(r, req, a.validate); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, httptypes.ErrorKindInvalidRequest, err.Error())
		return
	}

	challenge, err := a.service.ResendOtp(r.Context(), req.UserID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, a.challengeResponse(challenge, resendMessage))
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	req := new(LoginRequest)
	if err := httptypes.DecodeJSON(r, req, a.validate); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, httptypes.ErrorKindInvalidRequest, err.Error())
		return
	}

	user, err := a.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, NewUserResponse(user))
}

func (a *API) challengeResponse(c *Challenge, message string) *ChallengeResponse {
	resp := &ChallengeResponse{
		Message:   message,
		UserID:    c.UserID,
		ExpiresAt: c.ExpiresAt,
	}

	if a.echoOtp {
		resp.GeneratedOtp = c.Code
	} else {
		a.logger.Debugf("otp for user %s is %s", c.UserID, c.Code)
	}

	return resp
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httptypes.WriteError(w, http.StatusBadRequest, httptypes.ErrorKindInvalidRequest, err.Error())
	case errors.Is(err, ErrDuplicateEmail):
		httptypes.WriteError(w, http.StatusConflict, "duplicate_email", "Email already exists")
	case errors.Is(err, ErrAlreadyVerified):
		httptypes.WriteError(w, http.StatusConflict, "already_verified", "User is already verified")
	case errors.Is(err, ErrUserNotFound):
		httptypes.WriteError(w, http.StatusNotFound, "user_not_found", "User not found")
	case errors.Is(err, otp.ErrNotFound):
		httptypes.WriteError(w, http.StatusBadRequest, "invalid_otp", "Invalid OTP")
	case errors.Is(err, otp.ErrExpired):
		httptypes.WriteError(w, http.StatusGone, "otp_expired", "OTP expired")
	case errors.Is(err, ErrInvalidCredentials):
		httptypes.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	default:
		a.logger.Errorf("account request failed: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, httptypes.ErrorKindInternal, "Internal server error")
	}
}

func NewAPI(service ServiceInterface, echoOtp bool, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.echoOtp = echoOtp
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.logger = logger

	return a
}
