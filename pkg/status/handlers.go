// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/workload-service/internal/http/types"
	"github.com/canonical/workload-service/internal/logging"
	"github.com/canonical/workload-service/internal/monitoring"
	"github.com/canonical/workload-service/internal/tracing"
	"github.com/canonical/workload-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status    string     `json:"status"`
	Database  string     `json:"database"`
	BuildInfo *BuildInfo `json:"buildInfo,omitempty"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

// alive reports 200 while the process serves requests, the database state is
// informational so a flaky database does not get the pod restarted.
func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	status := Status{
		Status:    "ok",
		Database:  "ok",
		BuildInfo: buildInfo(),
	}

	if a.db != nil {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := a.db.Ping(ctx); err != nil {
			a.logger.Warnf("database ping failed: %v", err)
			status.Database = "unavailable"
		}
	}

	httptypes.WriteJSON(w, http.StatusOK, status)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, buildInfo())
}

func buildInfo() *BuildInfo {
	info := &BuildInfo{
		Version: version.Version,
		Name:    "workload-service",
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" {
			info.CommitHash = setting.Value
		}
	}

	return info
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
