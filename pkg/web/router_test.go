// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/internal/types"
	"github.com/canonical/workload-service/pkg/account"
	"github.com/canonical/workload-service/pkg/workload"
)

func newTestRouter(t *testing.T, cfg Config) (http.Handler, *account.MockServiceInterface, *workload.MockServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)

	accounts := account.NewMockServiceInterface(ctrl)
	workloads := workload.NewMockServiceInterface(ctrl)
	logger := logging.NewNoopLogger()

	router := NewRouter(cfg, accounts, workloads, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return router, accounts, workloads
}

func TestRouterServesAllSurfaces(t *testing.T) {
	router, accounts, workloads := newTestRouter(t, Config{EchoOtp: true})

	accounts.EXPECT().Login(gomock.Any(), "ada@example.com", "pw").Return(nil, account.ErrInvalidCredentials)
	workloads.EXPECT().ListTasks(gomock.Any(), "", int64(1), int64(100)).Return([]*types.Task{}, nil)

	tests := []struct {
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{http.MethodGet, "/api/v0/status", "", http.StatusOK},
		{http.MethodGet, "/api/v0/version", "", http.StatusOK},
		{http.MethodGet, "/api/v0/metrics", "", http.StatusOK},
		{http.MethodPost, "/login/", `{"email":"ada@example.com","password":"pw"}`, http.StatusUnauthorized},
		{http.MethodGet, "/tasks/", "", http.StatusOK},
		{http.MethodGet, "/unknown/", "", http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.method+" "+test.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(test.method, test.path, strings.NewReader(test.body)))

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, w.Code)
			}
		})
	}
}

func TestRouterCORS(t *testing.T) {
	router, _, _ := newTestRouter(t, Config{CORSAllowedOrigins: []string{"https://app.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/signup/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("expected allowed origin header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/signup/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allowed origin for unknown origin, got %q", got)
	}
}
