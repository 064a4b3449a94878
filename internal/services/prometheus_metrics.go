package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricOperation         = "savings.operation"
	MetricOperationRejected = "savings.operation.rejected"
	MetricLockConflict      = "savings.lock_conflict"
	MetricRegulationUpdated = "regulation.updated"
	MetricRegulationVersion = "regulation.version"
	MetricInterestPaid      = "savings.interest_paid"
	MetricReportGenerated   = "report.generated"
)

type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	rejectionsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	lockConflicts     prometheus.Counter
	regulationUpdates prometheus.Counter
	regulationVersion prometheus.Gauge
	interestPaid      prometheus.Histogram
	reportsTotal      *prometheus.CounterVec
	reportDuration    *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_operations_total",
				Help: "Total number of savings operations committed",
			},
			[]string{"operation"},
		),
		rejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_operations_rejected_total",
				Help: "Total number of savings operations rejected by rule",
			},
			[]string{"operation", "category", "reason"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "savings_operation_duration_milliseconds",
				Help:    "Savings operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		lockConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "savings_lock_conflicts_total",
				Help: "Total number of optimistic lock conflicts on accounts",
			},
		),
		regulationUpdates: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "regulation_updates_total",
				Help: "Total number of regulation updates",
			},
		),
		regulationVersion: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "regulation_current_version",
				Help: "Version of the regulation currently in effect",
			},
		),
		interestPaid: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "savings_interest_paid",
				Help:    "Interest paid per withdrawal in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of reports generated",
			},
			[]string{"report"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricOperation:
		m.operationsTotal.WithLabelValues(operation).Inc()
	case MetricOperationRejected:
		m.rejectionsTotal.WithLabelValues(operation, tags["category"], tags["reason"]).Inc()
	case MetricLockConflict:
		m.lockConflicts.Inc()
	case MetricRegulationUpdated:
		m.regulationUpdates.Inc()
	case MetricReportGenerated:
		if report := tags["report"]; report != "" {
			m.reportsTotal.WithLabelValues(report).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case operationOpen, operationDeposit, operationWithdraw, operationClose:
		m.operationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	case reportDaily, reportMonthly, reportDashboard, reportRecent:
		m.reportDuration.WithLabelValues(name).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRegulationVersion:
		m.regulationVersion.Set(value)
	case MetricInterestPaid:
		m.interestPaid.Observe(value)
	}
}
