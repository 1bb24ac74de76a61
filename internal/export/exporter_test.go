package export_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	colmetricspb "go.opentelemetry.io/proto/otlp/collector/metrics/v1"
	"google.golang.org/protobuf/encoding/protojson"
	testclock "k8s.io/utils/clock/testing"

	"pizzametrics/internal/config"
	"pizzametrics/internal/export"
	"pizzametrics/internal/metrics"
)

type staticSource struct {
	snap metrics.Snapshot
}

func (s staticSource) Snapshot() metrics.Snapshot { return s.snap }

type capture struct {
	mu      sync.Mutex
	headers []http.Header
	bodies  [][]byte
	calls   atomic.Int32
	status  int
}

func (c *capture) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	c.mu.Lock()
	c.headers = append(c.headers, r.Header.Clone())
	c.bodies = append(c.bodies, body)
	c.mu.Unlock()
	c.calls.Add(1)

	if c.status != 0 {
		w.WriteHeader(c.status)
		_, _ = w.Write([]byte("backend unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func newExportConfig(url string) *config.MetricsConfig {
	return &config.MetricsConfig{
		Source:         "jwt-pizza-service",
		URL:            url,
		UserID:         "1234",
		APIKey:         "secret",
		ExportInterval: 30 * time.Second,
		ExportTimeout:  time.Second,
	}
}

func TestExporter_PushesImmediatelyAndOnTick(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()

	clk := testclock.NewFakeClock(time.Now())
	exp := export.NewExporter(staticSource{snap: testSnapshot()}, newExportConfig(srv.URL), clk, newTestLogger())
	exp.Start(context.Background())
	defer exp.Close()

	assert.Eventually(t, func() bool { return c.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	clk.Step(30 * time.Second)
	assert.Eventually(t, func() bool { return c.calls.Load() == 2 }, time.Second, 5*time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()

	h := c.headers[0]
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "Bearer 1234:secret", h.Get("Authorization"))

	var req colmetricspb.ExportMetricsServiceRequest
	require.NoError(t, protojson.Unmarshal(c.bodies[0], &req))
	got := req.GetResourceMetrics()[0].GetScopeMetrics()[0].GetMetrics()
	assert.Len(t, got, 19+6)
	assert.Equal(t, "http_requests_total", got[0].GetName())
}

func TestExporter_BearerWithoutUserID(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()

	cfg := newExportConfig(srv.URL)
	cfg.UserID = ""

	exp := export.NewExporter(staticSource{}, cfg, testclock.NewFakeClock(time.Now()), newTestLogger())
	exp.Start(context.Background())
	defer exp.Close()

	require.Eventually(t, func() bool { return c.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, "Bearer secret", c.headers[0].Get("Authorization"))
}

func TestExporter_KeepsTickingAfterFailure(t *testing.T) {
	c := &capture{status: http.StatusInternalServerError}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()

	clk := testclock.NewFakeClock(time.Now())
	exp := export.NewExporter(staticSource{}, newExportConfig(srv.URL), clk, newTestLogger())
	exp.Start(context.Background())
	defer exp.Close()

	assert.Eventually(t, func() bool { return c.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	clk.Step(30 * time.Second)
	assert.Eventually(t, func() bool { return c.calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestExporter_SlowPushDoesNotDelayNextTick(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	var held atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		if calls.Add(1) == 1 {
			held.Store(true)
			select {
			case <-release:
			case <-r.Context().Done():
			}
			held.Store(false)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := newExportConfig(srv.URL)
	cfg.ExportTimeout = 10 * time.Second

	clk := testclock.NewFakeClock(time.Now())
	exp := export.NewExporter(staticSource{snap: testSnapshot()}, cfg, clk, newTestLogger())
	exp.Start(context.Background())
	defer exp.Close()
	defer close(release)

	require.Eventually(t, held.Load, time.Second, 5*time.Millisecond)

	clk.Step(30 * time.Second)
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, held.Load(), "first push should still be in flight")
}

func TestExporter_UnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	exp := export.NewExporter(staticSource{}, newExportConfig(url), testclock.NewFakeClock(time.Now()), newTestLogger())
	exp.Start(context.Background())
	exp.Close()
}

func TestExporter_DisabledWithoutCredentials(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()

	cfg := newExportConfig(srv.URL)
	cfg.APIKey = ""

	clk := testclock.NewFakeClock(time.Now())
	exp := export.NewExporter(staticSource{}, cfg, clk, newTestLogger())
	exp.Start(context.Background())
	defer exp.Close()

	assert.False(t, clk.HasWaiters())
	assert.Never(t, func() bool { return c.calls.Load() > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestExporter_CloseIsIdempotent(t *testing.T) {
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(c.handler))
	defer srv.Close()

	clk := testclock.NewFakeClock(time.Now())
	exp := export.NewExporter(staticSource{}, newExportConfig(srv.URL), clk, newTestLogger())
	exp.Start(context.Background())

	exp.Close()
	exp.Close()

	calls := c.calls.Load()
	clk.Step(time.Minute)
	assert.Never(t, func() bool { return c.calls.Load() > calls }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestStatusError(t *testing.T) {
	err := &export.StatusError{StatusCode: 503, Body: "down"}
	assert.Equal(t, "unexpected status 503: down", err.Error())
}
