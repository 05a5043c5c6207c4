// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/workload-service/internal/http/types"
	"github.com/canonical/workload-service/internal/otp"
	"github.com/canonical/workload-service/internal/types"
)

const validUserID = "01963e4a-7c1b-7d2e-9f3a-5b6c7d8e9f01"

func body(v any) io.Reader {
	if s, ok := v.(string); ok {
		return strings.NewReader(s)
	}

	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func decodeError(t *testing.T, r io.Reader) httptypes.ErrorResponse {
	t.Helper()

	var resp httptypes.ErrorResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	return resp
}

func TestAPI_Signup(t *testing.T) {
	expiresAt := time.Date(2026, 3, 1, 10, 2, 0, 0, time.UTC)
	challenge := &Challenge{UserID: validUserID, Code: "482913", ExpiresAt: expiresAt}

	tests := []struct {
		name           string
		echoOtp        bool
		requestBody    any
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedKind   string
		validateResp   func(*testing.T, *ChallengeResponse)
	}{
		{
			name:        "success with echo",
			echoOtp:     true,
			requestBody: SignupRequest{Name: "Ada", Email: "ada@example.com"},
			setupMocks: func(mockSvc *MockServiceInterface, _ *MockLoggerInterface) {
				mockSvc.EXPECT().Signup(gomock.Any(), "Ada", "ada@example.com").Return(challenge, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, resp *ChallengeResponse) {
				if resp.UserID != validUserID || resp.GeneratedOtp != "482913" {
					t.Errorf("unexpected response %+v", resp)
				}
				if resp.Message != signupMessage {
					t.Errorf("unexpected message %q", resp.Message)
				}
			},
		},
		{
			name:        "success without echo",
			echoOtp:     false,
			requestBody: SignupRequest{Name: "Ada", Email: "ada@example.com"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Signup(gomock.Any(), "Ada", "ada@example.com").Return(challenge, nil)
				mockLogger.EXPECT().Debugf(gomock.Any(), validUserID, "482913")
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, resp *ChallengeResponse) {
				if resp.GeneratedOtp != "" {
					t.Errorf("code must not be echoed, got %q", resp.GeneratedOtp)
				}
			},
		},
		{
			name:        "duplicate email",
			echoOtp:     true,
			requestBody: SignupRequest{Name: "Ada", Email: "ada@example.com"},
			setupMocks: func(mockSvc *MockServiceInterface, _ *MockLoggerInterface) {
				mockSvc.EXPECT().Signup(gomock.Any(), "Ada", "ada@example.com").Return(nil, ErrDuplicateEmail)
			},
			expectedStatus: http.StatusConflict,
			expectedKind:   "duplicate_email",
		},
		{
			name:           "invalid email",
			echoOtp:        true,
			requestBody:    SignupRequest{Name: "Ada", Email: "not-an-email"},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   httptypes.ErrorKindInvalidRequest,
		},
		{
			name:           "malformed body",
			echoOtp:        true,
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   httptypes.ErrorKindInvalidRequest,
		},
		{
			name:        "internal error",
			echoOtp:     true,
			requestBody: SignupRequest{Name: "Ada", Email: "ada@example.com"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Signup(gomock.Any(), "Ada", "ada@example.com").Return(nil, errors.New("connection refused"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   httptypes.ErrorKindInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			test.setupMocks(mockSvc, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockSvc, test.echoOtp, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/signup/", body(test.requestBody))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, res.StatusCode)
			}

			if test.expectedKind != "" {
				if resp := decodeError(t, res.Body); resp.Error != test.expectedKind || resp.Status != test.expectedStatus {
					t.Errorf("unexpected error response %+v", resp)
				}
				return
			}

			resp := new(ChallengeResponse)
			if err := json.NewDecoder(res.Body).Decode(resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			test.validateResp(t, resp)
		})
	}
}

func TestAPI_VerifyOtp(t *testing.T) {
	valid := VerifyOtpRequest{UserID: validUserID, Otp: "482913", Password: "correct horse battery"}

	tests := []struct {
		name           string
		requestBody    any
		serviceErr     error
		callsService   bool
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "success",
			requestBody:    valid,
			callsService:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid otp",
			requestBody:    valid,
			serviceErr:     otp.ErrNotFound,
			callsService:   true,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "invalid_otp",
		},
		{
			name:           "expired otp",
			requestBody:    valid,
			serviceErr:     otp.ErrExpired,
			callsService:   true,
			expectedStatus: http.StatusGone,
			expectedKind:   "otp_expired",
		},
		{
			name:           "user not found",
			requestBody:    valid,
			serviceErr:     ErrUserNotFound,
			callsService:   true,
			expectedStatus: http.StatusNotFound,
			expectedKind:   "user_not_found",
		},
		{
			name:           "rejected password",
			requestBody:    valid,
			serviceErr:     ErrInvalidInput,
			callsService:   true,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   httptypes.ErrorKindInvalidRequest,
		},
		{
			name:           "short password",
			requestBody:    VerifyOtpRequest{UserID: validUserID, Otp: "482913", Password: "secret"},
			callsService:   true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty password",
			requestBody:    VerifyOtpRequest{UserID: validUserID, Otp: "482913"},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   httptypes.ErrorKindInvalidRequest,
		},
		{
			name:           "password over bcrypt limit",
			requestBody:    VerifyOtpRequest{UserID: validUserID, Otp: "482913", Password: strings.Repeat("p", 73)},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   httptypes.ErrorKindInvalidRequest,
		},
		{
			name:           "non numeric otp",
			requestBody:    VerifyOtpRequest{UserID: validUserID, Otp: "48a913", Password: "correct horse battery"},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   httptypes.ErrorKindInvalidRequest,
		},
		{
			name:           "bad user id",
			requestBody:    VerifyOtpRequest{UserID: "42", Otp: "482913", Password: "correct horse battery"},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   httptypes.ErrorKindInvalidRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			if test.callsService {
				req := test.requestBody.(VerifyOtpRequest)
				mockSvc.EXPECT().VerifyOtp(gomock.Any(), req.UserID, req.Otp, req.Password).Return(test.serviceErr)
			}

			mux := chi.NewMux()
			NewAPI(mockSvc, true, mockLogger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/verify-otp/", body(test.requestBody)))

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			if test.expectedKind != "" {
				if resp := decodeError(t, w.Body); resp.Error != test.expectedKind {
					t.Errorf("expected kind %s, got %+v", test.expectedKind, resp)
				}
				return
			}

			var resp MessageResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Message != verifiedMessage {
				t.Errorf("unexpected message %q", resp.Message)
			}
		})
	}
}

func TestAPI_Login(t *testing.T) {
	hash := "$2a$12$hash"
	user := &types.User{ID: validUserID, Name: "Ada", Email: "ada@example.com", OrgID: "org-1", EmailVerified: true, Role: types.RoleAdmin, CredentialHash: &hash}

	tests := []struct {
		name           string
		serviceUser    *types.User
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "success",
			serviceUser:    user,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid credentials",
			serviceErr:     ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockSvc.EXPECT().Login(gomock.Any(), "ada@example.com", "pw").Return(test.serviceUser, test.serviceErr)

			mux := chi.NewMux()
			NewAPI(mockSvc, true, NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login/", body(LoginRequest{Email: "ada@example.com", Password: "pw"})))

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			if test.serviceErr != nil {
				if resp := decodeError(t, w.Body); resp.Error != "invalid_credentials" {
					t.Errorf("unexpected error response %+v", resp)
				}
				return
			}

			if strings.Contains(w.Body.String(), hash) || strings.Contains(w.Body.String(), "credential") {
				t.Errorf("credential leaked in response: %s", w.Body.String())
			}

			var resp UserResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.ID != validUserID || resp.Role != types.RoleAdmin || !resp.EmailVerified {
				t.Errorf("unexpected user %+v", resp)
			}
		})
	}
}

func TestAPI_ResendOtp(t *testing.T) {
	tests := []struct {
		name           string
		challenge      *Challenge
		serviceErr     error
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "success",
			challenge:      &Challenge{UserID: validUserID, Code: "654321"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "user not found",
			serviceErr:     ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedKind:   "user_not_found",
		},
		{
			name:           "already verified",
			serviceErr:     ErrAlreadyVerified,
			expectedStatus: http.StatusConflict,
			expectedKind:   "already_verified",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockSvc.EXPECT().ResendOtp(gomock.Any(), validUserID).Return(test.challenge, test.serviceErr)

			mux := chi.NewMux()
			NewAPI(mockSvc, true, NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/resend-otp/", body(ResendOtpRequest{UserID: validUserID})))

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, w.Code)
			}

			if test.expectedKind != "" {
				if resp := decodeError(t, w.Body); resp.Error != test.expectedKind {
					t.Errorf("expected kind %s, got %+v", test.expectedKind, resp)
				}
				return
			}

			var resp ChallengeResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.GeneratedOtp != "654321" || resp.Message != resendMessage {
				t.Errorf("unexpected response %+v", resp)
			}
		})
	}
}
