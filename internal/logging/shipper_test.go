package logging_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testclock "k8s.io/utils/clock/testing"

	"pizzametrics/internal/config"
	"pizzametrics/internal/logging"
)

type pushBody struct {
	Streams []struct {
		Stream map[string]string `json:"stream"`
		Values [][2]string       `json:"values"`
	} `json:"streams"`
}

type loki struct {
	mu      sync.Mutex
	auth    []string
	pushes  []pushBody
	calls   atomic.Int32
	failing bool
}

func (l *loki) handler(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body pushBody
	_ = json.Unmarshal(raw, &body)

	l.mu.Lock()
	l.auth = append(l.auth, r.Header.Get("Authorization"))
	l.pushes = append(l.pushes, body)
	l.mu.Unlock()
	l.calls.Add(1)

	if l.failing {
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (l *loki) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, p := range l.pushes {
		for _, s := range p.Streams {
			for _, v := range s.Values {
				out = append(out, v[1])
			}
		}
	}
	return out
}

func newLoggingConfig(url string) *config.LoggingConfig {
	return &config.LoggingConfig{
		Source:        "jwt-pizza-service",
		URL:           url,
		UserID:        "42",
		APIKey:        "glc_secret",
		BufferSize:    100,
		BatchSize:     3,
		FlushInterval: time.Second,
		RPS:           1000,
		Burst:         1000,
	}
}

func discard() slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}

func entry(line string) logging.Entry {
	return logging.Entry{
		Time:  time.Unix(1700000000, 0),
		Level: "info",
		Type:  "http",
		Line:  line,
	}
}

func TestShipper_FlushesFullBatch(t *testing.T) {
	backend := &loki{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	clk := testclock.NewFakeClock(time.Now())
	s := logging.NewShipper(newLoggingConfig(srv.URL), clk, discard())
	s.Start(context.Background())
	defer s.Close()

	for _, line := range []string{"a", "b", "c"} {
		require.True(t, s.Enqueue(entry(line)))
	}

	require.Eventually(t, func() bool { return backend.calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, "Bearer 42:glc_secret", backend.auth[0])
	require.Len(t, backend.pushes[0].Streams, 1)

	st := backend.pushes[0].Streams[0]
	assert.Equal(t, map[string]string{
		"component": "jwt-pizza-service",
		"level":     "info",
		"type":      "http",
	}, st.Stream)
	require.Len(t, st.Values, 3)
	assert.Equal(t, "1700000000000000000", st.Values[0][0])
	assert.Equal(t, "a", st.Values[0][1])
	assert.Equal(t, "c", st.Values[2][1])
}

func TestShipper_FlushesOnTick(t *testing.T) {
	backend := &loki{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	cfg := newLoggingConfig(srv.URL)
	cfg.BatchSize = 100

	clk := testclock.NewFakeClock(time.Now())
	s := logging.NewShipper(cfg, clk, discard())
	s.Start(context.Background())
	defer s.Close()

	require.True(t, s.Enqueue(entry("partial")))

	assert.Eventually(t, func() bool {
		clk.Step(cfg.FlushInterval)
		return backend.calls.Load() > 0
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"partial"}, backend.lines())
}

func TestShipper_CloseFlushesRemaining(t *testing.T) {
	backend := &loki{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	cfg := newLoggingConfig(srv.URL)
	cfg.BatchSize = 100

	s := logging.NewShipper(cfg, testclock.NewFakeClock(time.Now()), discard())
	s.Start(context.Background())

	s.Enqueue(entry("one"))
	s.Enqueue(entry("two"))
	s.Close()
	s.Close()

	assert.Equal(t, []string{"one", "two"}, backend.lines())
}

func TestShipper_GroupsStreamsByLevelAndType(t *testing.T) {
	backend := &loki{}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	cfg := newLoggingConfig(srv.URL)
	cfg.BatchSize = 100

	s := logging.NewShipper(cfg, testclock.NewFakeClock(time.Now()), discard())
	s.Start(context.Background())

	s.Enqueue(logging.Entry{Time: time.Unix(1, 0), Level: "info", Type: "http", Line: "1"})
	s.Enqueue(logging.Entry{Time: time.Unix(2, 0), Level: "error", Type: "db", Line: "2"})
	s.Enqueue(logging.Entry{Time: time.Unix(3, 0), Level: "info", Type: "http", Line: "3"})
	s.Close()

	backend.mu.Lock()
	defer backend.mu.Unlock()
	require.Len(t, backend.pushes, 1)
	streams := backend.pushes[0].Streams
	require.Len(t, streams, 2)
	assert.Equal(t, "http", streams[0].Stream["type"])
	assert.Equal(t, [][2]string{{"1000000000", "1"}, {"3000000000", "3"}}, streams[0].Values)
	assert.Equal(t, "error", streams[1].Stream["level"])
}

func TestShipper_BackendFailureDoesNotStop(t *testing.T) {
	backend := &loki{failing: true}
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	defer srv.Close()

	cfg := newLoggingConfig(srv.URL)
	cfg.BatchSize = 1

	s := logging.NewShipper(cfg, testclock.NewFakeClock(time.Now()), discard())
	s.Start(context.Background())
	defer s.Close()

	s.Enqueue(entry("first"))
	require.Eventually(t, func() bool { return backend.calls.Load() == 1 }, time.Second, 10*time.Millisecond)

	s.Enqueue(entry("second"))
	assert.Eventually(t, func() bool { return backend.calls.Load() == 2 }, time.Second, 10*time.Millisecond)
}

func TestShipper_DropsWhenBufferFull(t *testing.T) {
	cfg := newLoggingConfig("http://127.0.0.1:0")
	cfg.BufferSize = 2

	s := logging.NewShipper(cfg, testclock.NewFakeClock(time.Now()), discard())

	assert.True(t, s.Enqueue(entry("a")))
	assert.True(t, s.Enqueue(entry("b")))
	assert.False(t, s.Enqueue(entry("c")))
	assert.Equal(t, int64(1), s.Dropped())
}

func TestShipper_DropsOverRateLimit(t *testing.T) {
	cfg := newLoggingConfig("http://127.0.0.1:0")
	cfg.RPS = 0.001
	cfg.Burst = 2

	s := logging.NewShipper(cfg, testclock.NewFakeClock(time.Now()), discard())

	assert.True(t, s.Enqueue(entry("a")))
	assert.True(t, s.Enqueue(entry("b")))
	assert.False(t, s.Enqueue(entry("c")))
	assert.Equal(t, int64(1), s.Dropped())
}

func TestShipper_DisabledWithoutURL(t *testing.T) {
	clk := testclock.NewFakeClock(time.Now())
	s := logging.NewShipper(newLoggingConfig(""), clk, discard())

	s.Start(context.Background())
	defer s.Close()

	assert.False(t, clk.HasWaiters())
}
