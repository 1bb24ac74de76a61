package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
	"k8s.io/utils/clock"

	"pizzametrics/internal/config"
)

const (
	pushTimeout  = 10 * time.Second
	maxErrorBody = 512
)

type Entry struct {
	Time  time.Time
	Level string
	Type  string
	Line  string
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

// Shipper batches log entries and pushes them to Loki. Enqueue never blocks:
// entries beyond the rate limit or buffer capacity are dropped and counted.
type Shipper struct {
	cfg      *config.LoggingConfig
	client   *http.Client
	limiter  *rate.Limiter
	clock    clock.WithTicker
	fallback *slog.Logger

	entries chan Entry
	dropped atomic.Int64

	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewShipper reports its own failures through fallback, which must not route
// back into the shipper.
func NewShipper(cfg *config.LoggingConfig, clk clock.WithTicker, fallback slog.Handler) *Shipper {
	return &Shipper{
		cfg:        cfg,
		client:     &http.Client{Timeout: pushTimeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RPS), max(1, cfg.Burst)),
		clock:      clk,
		fallback:   slog.New(fallback),
		entries:    make(chan Entry, max(1, cfg.BufferSize)),
		shutdownCh: make(chan struct{}),
	}
}

func (s *Shipper) Enqueue(e Entry) bool {
	if !s.limiter.Allow() {
		s.dropped.Add(1)
		return false
	}
	select {
	case s.entries <- e:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

func (s *Shipper) Dropped() int64 {
	return s.dropped.Load()
}

func (s *Shipper) Start(ctx context.Context) {
	if !s.cfg.ShippingEnabled() {
		return
	}

	ticker := s.clock.NewTicker(max(time.Millisecond, s.cfg.FlushInterval))

	s.wg.Add(1)
	go s.run(ctx, ticker)
}

// Close flushes whatever is buffered and stops the shipper.
func (s *Shipper) Close() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownCh)
		s.wg.Wait()
	})
}

func (s *Shipper) run(ctx context.Context, ticker clock.Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	batchSize := max(1, s.cfg.BatchSize)
	batch := make([]Entry, 0, batchSize)

	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := s.push(ctx, batch); err != nil {
			s.fallback.Error("failed to ship logs",
				slog.Int("count", len(batch)),
				slog.String("error", err.Error()))
		}
		batch = make([]Entry, 0, batchSize)
	}

	for {
		select {
		case e := <-s.entries:
			batch = append(batch, e)
			if len(batch) >= batchSize {
				flush(ctx)
			}
		case <-ticker.C():
			flush(ctx)
		case <-ctx.Done():
			s.finalFlush(&batch, flush)
			return
		case <-s.shutdownCh:
			s.finalFlush(&batch, flush)
			return
		}
	}
}

func (s *Shipper) finalFlush(batch *[]Entry, flush func(context.Context)) {
	for {
		select {
		case e := <-s.entries:
			*batch = append(*batch, e)
		default:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			flush(ctx)
			cancel()
			return
		}
	}
}

func (s *Shipper) push(ctx context.Context, batch []Entry) error {
	body, err := json.Marshal(s.buildRequest(batch))
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		credentials := s.cfg.APIKey
		if s.cfg.UserID != "" {
			credentials = s.cfg.UserID + ":" + credentials
		}
		req.Header.Set("Authorization", "Bearer "+credentials)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, excerpt)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// buildRequest groups entries into one stream per (level, type) pair,
// preserving arrival order within a stream.
func (s *Shipper) buildRequest(batch []Entry) pushRequest {
	type key struct{ level, typ string }

	index := make(map[key]int)
	var req pushRequest
	for _, e := range batch {
		k := key{e.Level, e.Type}
		i, ok := index[k]
		if !ok {
			i = len(req.Streams)
			index[k] = i
			req.Streams = append(req.Streams, stream{
				Stream: map[string]string{
					"component": s.cfg.Source,
					"level":     e.Level,
					"type":      e.Type,
				},
			})
		}
		ts := strconv.FormatInt(e.Time.UnixNano(), 10)
		req.Streams[i].Values = append(req.Streams[i].Values, [2]string{ts, e.Line})
	}
	return req
}
