package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bizhub"

// Metrics owns a private registry with the HTTP and business collectors
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ordersPlaced prometheus.Counter
	orderRevenue prometheus.Counter
	orderItems   prometheus.Counter
	conversions  *prometheus.CounterVec
	domainEvents *prometheus.CounterVec
}

// NewMetrics creates and registers every collector
func NewMetrics() *Metrics {
	m := &Metrics{
		registry:     prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of storefront orders placed.",
		}),
		orderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_amount_total",
			Help:      "Sum of the totals of placed storefront orders.",
		}),
		orderItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_items_total",
			Help:      "Total number of line items on placed storefront orders.",
		}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_conversions_total",
			Help:      "Orders converted into bills or invoices.",
		}, []string{"document"}),
		domainEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_events_total",
			Help:      "Domain events published, by type.",
		}, []string{"type"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.ordersPlaced,
		m.orderRevenue,
		m.orderItems,
		m.conversions,
		m.domainEvents,
	)
	return m
}

// Registry exposes the registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished request. route is the matched pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handle counts domain events; it is subscribed on the event bus
func (m *Metrics) Handle(_ context.Context, ev shared.DomainEvent) error {
	m.domainEvents.WithLabelValues(ev.EventType()).Inc()

	switch e := ev.(type) {
	case *commerce.OrderPlacedEvent:
		m.ordersPlaced.Inc()
		m.orderRevenue.Add(e.TotalAmount.InexactFloat64())
		m.orderItems.Add(float64(e.ItemCount))
	case *trade.PurchaseOrderConvertedEvent:
		m.conversions.WithLabelValues("vendor_bill").Inc()
	case *trade.SalesOrderConvertedEvent:
		m.conversions.WithLabelValues("customer_invoice").Inc()
	}
	return nil
}
