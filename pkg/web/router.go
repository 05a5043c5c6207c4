// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/workload-service/internal/db"
	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/pkg/account"
	"github.com/canonical/workload-service/pkg/metrics"
	"github.com/canonical/workload-service/pkg/status"
	"github.com/canonical/workload-service/pkg/workload"
)

type Config struct {
	CORSAllowedOrigins []string
	// EchoOtp returns issued codes in signup and resend responses
	EchoOtp bool
}

func NewRouter(
	cfg Config,
	accounts account.ServiceInterface,
	workloads workload.ServiceInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		logging.RequestMiddleware,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)
	account.NewAPI(accounts, cfg.EchoOtp, logger).RegisterEndpoints(router)
	workload.NewAPI(workloads, dbClient, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
