// Package metrics счетчики приема вебхуков и сверки заказов в формате prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "qrpay"

type Metrics struct {
	registry                *prometheus.Registry
	webhookEvents           *prometheus.CounterVec
	pendingMaterializations prometheus.Gauge
	httpRequests            *prometheus.CounterVec
}

// New создает метрики в собственном реестре, глобальный prometheus.DefaultRegisterer не используется.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Processed payment webhook events by event kind and outcome.",
		}, []string{"event", "outcome"}),
		pendingMaterializations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_order_materializations",
			Help:      "Captured payments older than the grace period that have no order.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
	}

	registry.MustRegister(
		m.webhookEvents,
		m.pendingMaterializations,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// WebhookEvent увеличивает счетчик обработанных событий.
func (m *Metrics) WebhookEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) SetPendingMaterializations(count int) {
	if m == nil {
		return
	}
	m.pendingMaterializations.Set(float64(count))
}

func (m *Metrics) HTTPRequest(route, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, status).Inc()
}

// Handler отдает метрики реестра для GET /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
