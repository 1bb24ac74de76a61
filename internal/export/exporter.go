package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"k8s.io/utils/clock"

	"pizzametrics/internal/config"
	"pizzametrics/internal/metrics"
)

const maxErrorBody = 512

type SnapshotSource interface {
	Snapshot() metrics.Snapshot
}

// Exporter pushes the full metric set to an OTLP/HTTP endpoint once on
// start and then on every interval tick. Pushes run in their own goroutines,
// so a slow backend never delays the next tick. Failures are logged and
// dropped.
type Exporter struct {
	source       SnapshotSource
	cfg          *config.MetricsConfig
	client       *http.Client
	clock        clock.WithTicker
	logger       *slog.Logger
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewExporter(source SnapshotSource, cfg *config.MetricsConfig, clk clock.WithTicker, logger *slog.Logger) *Exporter {
	return &Exporter{
		source:     source,
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.ExportTimeout},
		clock:      clk,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}
}

func (e *Exporter) Start(ctx context.Context) {
	if !e.cfg.ExportEnabled() {
		e.logger.Info("metrics export disabled")
		return
	}
	if e.cfg.ExportInterval <= 0 {
		e.logger.Warn("metrics export disabled", slog.Duration("interval", e.cfg.ExportInterval))
		return
	}

	ticker := e.clock.NewTicker(e.cfg.ExportInterval)

	e.wg.Add(1)
	go e.run(ctx, ticker)

	e.logger.Info("metrics exporter started",
		slog.String("url", e.cfg.URL),
		slog.Duration("interval", e.cfg.ExportInterval))
}

// Close stops ticking and waits for in-flight pushes.
func (e *Exporter) Close() {
	e.shutdownOnce.Do(func() {
		close(e.shutdownCh)
		e.wg.Wait()
	})
}

func (e *Exporter) run(ctx context.Context, ticker clock.Ticker) {
	defer e.wg.Done()
	defer ticker.Stop()

	e.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-e.shutdownCh:
			return
		case <-ticker.C():
			e.tick(ctx)
		}
	}
}

// tick copies and encodes the snapshot before handing it to a push
// goroutine; the store lock is never held during I/O.
func (e *Exporter) tick(ctx context.Context) {
	defer e.recoverPanic("metrics export tick failed")

	batch := Encode(e.source.Snapshot(), e.cfg.Source)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer e.recoverPanic("metrics push failed")

		if err := e.push(ctx, batch); err != nil {
			e.logger.Error("failed to push metrics",
				slog.Int("count", len(batch)),
				slog.String("error", err.Error()))
			return
		}
		e.logger.Debug("pushed metrics", slog.Int("count", len(batch)))
	}()
}

func (e *Exporter) push(ctx context.Context, batch []Metric) error {
	body, err := MarshalJSON(batch, e.cfg.Source)
	if err != nil {
		return err
	}

	if e.cfg.ExportTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.ExportTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", e.authorization())

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(excerpt)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (e *Exporter) authorization() string {
	if e.cfg.UserID != "" {
		return "Bearer " + e.cfg.UserID + ":" + e.cfg.APIKey
	}
	return "Bearer " + e.cfg.APIKey
}

func (e *Exporter) recoverPanic(msg string) {
	if r := recover(); r != nil {
		e.logger.Error(msg, slog.Any("panic", r))
	}
}

// StatusError reports a non-2xx response from the metrics backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
