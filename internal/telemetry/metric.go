package telemetry

import (
	"ecotutor/config"
	"ecotutor/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	RequestSuccessTotal *prometheus.CounterVec
	RequestFailTotal    *prometheus.CounterVec
	QueriesTotal        *prometheus.CounterVec
	GatewayFailTotal    prometheus.Counter
	LedgerFailTotal     prometheus.Counter
	EnergyKWhTotal      prometheus.Counter
	CO2KgTotal          prometheus.Counter
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		RequestSuccessTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricRequestSuccessTotal),
				Help: "Requests answered successfully",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		RequestFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricRequestFailTotal),
				Help: "Requests failed count",
			},
			labelNames(core.MetricLabelReason),
		),
		QueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricQueriesTotal),
				Help: "Submitted queries by pipeline outcome",
			},
			labelNames(core.MetricLabelOutcome),
		),
		GatewayFailTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricGatewayFailTotal),
				Help: "Upstream completion calls that failed",
			},
		),
		LedgerFailTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricLedgerFailTotal),
				Help: "Ledger writes that failed after a successful answer",
			},
		),
		EnergyKWhTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricEnergyKWhTotal),
				Help: "Accumulated estimated energy (kWh) of accepted queries",
			},
		),
		CO2KgTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricCO2KgTotal),
				Help: "Accumulated estimated CO2 (kg) of accepted queries",
			},
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
