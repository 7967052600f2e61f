package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the funding service. A nil
// *Metrics is valid and turns every recording method into a no-op, so wiring
// can disable metrics without sprinkling conditionals.
type Metrics struct {
	PledgesTotal          *prometheus.CounterVec
	PledgedAmountTotal    *prometheus.CounterVec
	FeePoolCreditedTotal  prometheus.Counter
	CampaignsCreatedTotal prometheus.Counter
	CampaignsExpiredTotal prometheus.Counter
	WithdrawalsTotal      prometheus.Counter
	HandoffsTotal         *prometheus.CounterVec
	HandoffValueTotal     prometheus.Counter
	ExecuteSeconds        prometheus.Histogram

	registry *prometheus.Registry
}

// New creates a Metrics instance with all collectors registered on a private
// registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		PledgesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dreamfund_pledges_total",
				Help: "Total number of accepted pledges",
			},
			[]string{"destination"},
		),
		PledgedAmountTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dreamfund_pledged_amount_total",
				Help: "Total donation value credited, in smallest currency units",
			},
			[]string{"destination"},
		),
		FeePoolCreditedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dreamfund_fee_pool_credited_total",
				Help: "Total fee value credited to the shared prize pool",
			},
		),
		CampaignsCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dreamfund_campaigns_created_total",
				Help: "Total number of campaigns created",
			},
		),
		CampaignsExpiredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dreamfund_campaigns_expired_total",
				Help: "Total number of campaigns expired by the coordinator",
			},
		),
		WithdrawalsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dreamfund_withdrawals_total",
				Help: "Total number of successful withdrawals",
			},
		),
		HandoffsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dreamfund_handoffs_total",
				Help: "Total prize pool handoff attempts by result",
			},
			[]string{"result"},
		),
		HandoffValueTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dreamfund_handoff_value_total",
				Help: "Total prize pool value handed off to the distribution service",
			},
		),
		ExecuteSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dreamfund_execute_duration_seconds",
				Help:    "Duration of coordinator execute invocations",
				Buckets: prometheus.DefBuckets,
			},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.PledgesTotal,
		m.PledgedAmountTotal,
		m.FeePoolCreditedTotal,
		m.CampaignsCreatedTotal,
		m.CampaignsExpiredTotal,
		m.WithdrawalsTotal,
		m.HandoffsTotal,
		m.HandoffValueTotal,
		m.ExecuteSeconds,
	)
	return m
}

// Handler returns an http.Handler serving this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordPledge counts an accepted pledge to the given destination
// ("campaign" or "platform").
func (m *Metrics) RecordPledge(destination string, donation, fee int64) {
	if m == nil {
		return
	}
	m.PledgesTotal.WithLabelValues(destination).Inc()
	m.PledgedAmountTotal.WithLabelValues(destination).Add(float64(donation))
	m.FeePoolCreditedTotal.Add(float64(fee))
}

// RecordCampaignCreated counts a campaign creation.
func (m *Metrics) RecordCampaignCreated() {
	if m == nil {
		return
	}
	m.CampaignsCreatedTotal.Inc()
}

// RecordExpiration counts a campaign expiration.
func (m *Metrics) RecordExpiration() {
	if m == nil {
		return
	}
	m.CampaignsExpiredTotal.Inc()
}

// RecordWithdrawal counts a successful withdrawal.
func (m *Metrics) RecordWithdrawal() {
	if m == nil {
		return
	}
	m.WithdrawalsTotal.Inc()
}

// RecordHandoff counts a handoff attempt and, on success, its value.
func (m *Metrics) RecordHandoff(ok bool, amount int64) {
	if m == nil {
		return
	}
	if ok {
		m.HandoffsTotal.WithLabelValues("ok").Inc()
		m.HandoffValueTotal.Add(float64(amount))
	} else {
		m.HandoffsTotal.WithLabelValues("failed").Inc()
	}
}

// ObserveExecute records the duration of an execute invocation.
func (m *Metrics) ObserveExecute(seconds float64) {
	if m == nil {
		return
	}
	m.ExecuteSeconds.Observe(seconds)
}
