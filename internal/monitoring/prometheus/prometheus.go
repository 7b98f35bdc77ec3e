// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/client-portal/internal/logging"
	"github.com/canonical/client-portal/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	flowOutcomes *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.labels(tags)).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(m.labels(tags)).Set(value)

	return nil
}

// IncFlowOutcome counts identity linking flows by final state and reason.
func (m *Monitor) IncFlowOutcome(tags map[string]string) error {
	if m.flowOutcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.flowOutcomes.With(m.labels(tags)).Inc()

	return nil
}

func (m *Monitor) labels(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}

	for k, v := range tags {
		labels[k] = v
	}

	return labels
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("histogram already registered: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)

	if err := prometheus.Register(m.dependencies); err != nil {
		m.logger.Debugf("gauge already registered: %v", err)
	}
}

func (m *Monitor) registerCounters() {
	m.flowOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "identity_linking_flow_total",
			Help: "identity linking flows by final state",
		},
		[]string{"state", "reason", "service"},
	)

	if err := prometheus.Register(m.flowOutcomes); err != nil {
		m.logger.Debugf("counter already registered: %v", err)
	}
}

// NewMonitor creates a new monitor
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
