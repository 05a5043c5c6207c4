// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/workload-service/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	m := NewMonitor("workload-service-test", logging.NewNoopLogger())

	if m.GetService() != "workload-service-test" {
		t.Fatalf("unexpected service name %s", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "POST/signup/", "status": "201"}, 0.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "postgres"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.dependencyAvailability.WithLabelValues("postgres")); got != 1 {
		t.Errorf("expected dependency gauge 1, got %v", got)
	}

	if got := testutil.CollectAndCount(m.responseTime); got != 1 {
		t.Errorf("expected 1 response time series, got %d", got)
	}
}

func TestMonitorNotInstantiated(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Error("expected error for missing histogram")
	}

	if err := m.SetDependencyAvailability(nil, 1); err == nil {
		t.Error("expected error for missing gauge")
	}
}
