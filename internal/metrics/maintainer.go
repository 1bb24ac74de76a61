package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

type Pruner interface {
	Prune()
}

// Maintainer periodically prunes windowed state so memory stays bounded by
// roughly one minute of events. Queries stay correct without it; they filter
// by timestamp on every read.
type Maintainer struct {
	pruner       Pruner
	interval     time.Duration
	clock        clock.WithTicker
	logger       *slog.Logger
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewMaintainer(pruner Pruner, interval time.Duration, clk clock.WithTicker, logger *slog.Logger) *Maintainer {
	return &Maintainer{
		pruner:     pruner,
		interval:   interval,
		clock:      clk,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}
}

func (m *Maintainer) Start(ctx context.Context) {
	if m.interval <= 0 {
		m.logger.Warn("window maintenance disabled", slog.Duration("interval", m.interval))
		return
	}

	ticker := m.clock.NewTicker(m.interval)

	m.wg.Add(1)
	go m.run(ctx, ticker)

	m.logger.Info("window maintainer started", slog.Duration("interval", m.interval))
}

func (m *Maintainer) Close() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownCh)
		m.wg.Wait()
	})
}

func (m *Maintainer) run(ctx context.Context, ticker clock.Ticker) {
	defer m.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.shutdownCh:
			return
		case <-ticker.C():
			m.prune()
		}
	}
}

func (m *Maintainer) prune() {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("window prune failed", slog.Any("panic", r))
		}
	}()
	m.pruner.Prune()
}
