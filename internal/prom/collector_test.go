package prom_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzametrics/internal/metrics"
	"pizzametrics/internal/prom"
)

type staticSource struct {
	snap metrics.Snapshot
}

func (s staticSource) Snapshot() metrics.Snapshot { return s.snap }

func newSnapshot() metrics.Snapshot {
	return metrics.Snapshot{
		HTTP: metrics.HTTPStats{
			TotalRequests:    3,
			RequestsByMethod: metrics.MethodCounts{GET: 2, POST: 1},
		},
		Users: metrics.UserStats{ActiveUsers: 1},
		Pizza: metrics.PizzaStats{TotalSold: 2, TotalRevenue: 0.005},
		Endpoints: map[string]metrics.EndpointStats{
			"POST /api/order": {Average: 200, Count: 2, Min: 150, Max: 250},
		},
	}
}

func TestCollector_GlobalMetrics(t *testing.T) {
	c := prom.NewCollector(staticSource{snap: newSnapshot()}, "svc")

	expected := `
# HELP http_requests_total http_requests_total (requests)
# TYPE http_requests_total counter
http_requests_total{source="svc"} 3
# HELP active_users active_users (users)
# TYPE active_users gauge
active_users{source="svc"} 1
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected), "http_requests_total", "active_users")
	require.NoError(t, err)
}

func TestCollector_EndpointLabels(t *testing.T) {
	c := prom.NewCollector(staticSource{snap: newSnapshot()}, "svc")

	expected := `
# HELP endpoint_latency_max endpoint_latency_max (ms)
# TYPE endpoint_latency_max gauge
endpoint_latency_max{endpoint="POST__api_order",source="svc"} 250
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected), "endpoint_latency_max")
	require.NoError(t, err)
}

func TestCollector_RegistersAndGathers(t *testing.T) {
	snap := newSnapshot()
	snap.CapturedAt = time.UnixMilli(1_000_000)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(prom.NewCollector(staticSource{snap: snap}, "svc")))

	families, err := reg.Gather()
	require.NoError(t, err)

	// 19 global metrics plus avg/min/max for one endpoint.
	assert.Len(t, families, 22)
	assert.Equal(t, 22, testutil.CollectAndCount(prom.NewCollector(staticSource{snap: snap}, "svc")))
}
