// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	// SetDependencyAvailability records 1 for a reachable dependency, 0 otherwise.
	SetDependencyAvailability(map[string]string, float64) error
	// IncFlowOutcome counts linking flows by final state and failure reason.
	IncFlowOutcome(map[string]string) error
}
