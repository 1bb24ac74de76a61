package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzametrics/internal/export"
	"pizzametrics/internal/metrics"
)

func testSnapshot() metrics.Snapshot {
	return metrics.Snapshot{
		HTTP: metrics.HTTPStats{
			TotalRequests:          7,
			RequestsByMethod:       metrics.MethodCounts{GET: 3, POST: 2, PUT: 1, DELETE: 1},
			AverageRequestDuration: 12.5,
		},
		Users: metrics.UserStats{ActiveUsers: 2},
		Auth: metrics.AuthStats{
			TotalSuccessful: 4,
			TotalFailed:     1,
			PerMinute:       metrics.AuthRate{Successful: 3, Failed: 1, Total: 4},
		},
		Pizza: metrics.PizzaStats{
			TotalSold:              5,
			SoldPerMinute:          2,
			CreationFailures:       1,
			TotalRevenue:           0.0125,
			RevenuePerMinute:       0.005,
			AverageCreationLatency: 230,
		},
		Endpoints: map[string]metrics.EndpointStats{
			"POST /api/order":     {Average: 200, Count: 2, Min: 150, Max: 250},
			"GET /api/order/menu": {Average: 5, Count: 1, Min: 5, Max: 5},
		},
		System:     metrics.SystemStats{CPUUsage: 12.5, MemoryUsage: 40.25},
		CapturedAt: time.UnixMilli(1_000_000),
	}
}

func byName(ms []export.Metric) map[string]export.Metric {
	out := make(map[string]export.Metric, len(ms))
	for _, m := range ms {
		if _, ok := m.Attr("endpoint"); ok {
			continue
		}
		out[m.Name] = m
	}
	return out
}

func TestSanitizeEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"POST /api/order", "POST__api_order"},
		{"GET /api/order/menu", "GET__api_order_menu"},
		{"already_safe_123", "already_safe_123"},
		{"", ""},
		{"DELETE /api/auth?x=1", "DELETE__api_auth_x_1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, export.SanitizeEndpoint(tt.in))
		})
	}
}

func TestEncode_GlobalMetrics(t *testing.T) {
	ms := byName(export.Encode(testSnapshot(), "jwt-pizza-service"))

	tests := []struct {
		name  string
		kind  export.Kind
		value export.Value
	}{
		{"http_requests_total", export.KindSum, export.IntValue(7)},
		{"http_requests_get", export.KindSum, export.IntValue(3)},
		{"http_requests_post", export.KindSum, export.IntValue(2)},
		{"http_requests_put", export.KindSum, export.IntValue(1)},
		{"http_requests_delete", export.KindSum, export.IntValue(1)},
		{"http_request_duration_avg", export.KindGauge, export.DoubleValue(12.5)},
		{"active_users", export.KindGauge, export.IntValue(2)},
		{"auth_attempts_successful_total", export.KindSum, export.IntValue(4)},
		{"auth_attempts_failed_total", export.KindSum, export.IntValue(1)},
		{"auth_attempts_successful_per_minute", export.KindGauge, export.IntValue(3)},
		{"auth_attempts_failed_per_minute", export.KindGauge, export.IntValue(1)},
		{"pizzas_sold_total", export.KindSum, export.IntValue(5)},
		{"pizzas_sold_per_minute", export.KindGauge, export.IntValue(2)},
		{"pizza_creation_failures_total", export.KindSum, export.IntValue(1)},
		{"pizza_revenue_total", export.KindSum, export.DoubleValue(0.0125)},
		{"pizza_revenue_per_minute", export.KindGauge, export.DoubleValue(0.005)},
		{"pizza_creation_latency_avg", export.KindGauge, export.DoubleValue(230)},
		{"system_cpu_usage", export.KindGauge, export.DoubleValue(12.5)},
		{"system_memory_usage", export.KindGauge, export.DoubleValue(40.25)},
	}

	require.Len(t, ms, len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ms[tt.name]
			require.True(t, ok)
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.value, m.Value)
			assert.Equal(t, time.UnixMilli(1_000_000), m.Time)
			require.NotEmpty(t, m.Attributes)
			assert.Equal(t, export.Attribute{Key: "source", Value: "jwt-pizza-service"}, m.Attributes[0])
		})
	}
}

func TestEncode_EndpointMetricsSortedAndSanitized(t *testing.T) {
	ms := export.Encode(testSnapshot(), "svc")

	var endpoints []export.Metric
	for _, m := range ms {
		if _, ok := m.Attr("endpoint"); ok {
			endpoints = append(endpoints, m)
		}
	}
	require.Len(t, endpoints, 6)

	want := []struct {
		name     string
		endpoint string
		value    float64
	}{
		{"endpoint_latency_avg", "GET__api_order_menu", 5},
		{"endpoint_latency_min", "GET__api_order_menu", 5},
		{"endpoint_latency_max", "GET__api_order_menu", 5},
		{"endpoint_latency_avg", "POST__api_order", 200},
		{"endpoint_latency_min", "POST__api_order", 150},
		{"endpoint_latency_max", "POST__api_order", 250},
	}
	for i, w := range want {
		m := endpoints[i]
		assert.Equal(t, w.name, m.Name)
		assert.Equal(t, export.KindGauge, m.Kind)
		assert.InDelta(t, w.value, m.Value.Float(), 1e-9)
		assert.Equal(t, []export.Attribute{
			{Key: "source", Value: "svc"},
			{Key: "endpoint", Value: w.endpoint},
		}, m.Attributes)
	}
}

func TestEncode_EmptySnapshot(t *testing.T) {
	ms := export.Encode(metrics.Snapshot{}, "svc")

	assert.Len(t, ms, 19)
	for _, m := range ms {
		assert.Zero(t, m.Value.Float(), m.Name)
	}
}

func TestEncode_SumsNeverNegative(t *testing.T) {
	snap := metrics.Snapshot{Pizza: metrics.PizzaStats{TotalRevenue: -3}}

	ms := byName(export.Encode(snap, "svc"))
	assert.Zero(t, ms["pizza_revenue_total"].Value.Double)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "sum", export.KindSum.String())
	assert.Equal(t, "gauge", export.KindGauge.String())
	assert.Equal(t, "unknown", export.Kind(9).String())
}
