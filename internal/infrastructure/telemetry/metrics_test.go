package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := NewMetrics()

	m.ObserveHTTP(http.MethodGet, "/api/v1/products", 200, 15*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/products", 200, 5*time.Millisecond)
	m.ObserveHTTP(http.MethodPost, "", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/products", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "unmatched", "404")))
}

func TestMetrics_HandleEvents(t *testing.T) {
	m := NewMetrics()
	ctx := context.Background()

	order := &commerce.Order{OrderNumber: "ORD-000001", TotalAmount: decimal.RequireFromString("120.50")}
	order.ID = 1
	order.CreatedBy = 9
	require.NoError(t, m.Handle(ctx, commerce.NewOrderPlacedEvent(order)))

	po := &trade.PurchaseOrder{PONumber: "PO-000001"}
	require.NoError(t, m.Handle(ctx, trade.NewPurchaseOrderConvertedEvent(po, 4, "BILL-000001", 9)))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersPlaced))
	assert.Equal(t, 120.5, testutil.ToFloat64(m.orderRevenue))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversions.WithLabelValues("vendor_bill")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.conversions.WithLabelValues("customer_invoice")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.domainEvents.WithLabelValues(commerce.EventTypeOrderPlaced)))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTP(http.MethodGet, "/health", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `bizhub_http_requests_total{method="GET",route="/health",status="200"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
