package prom

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"pizzametrics/internal/repository"
)

type PoolSource interface {
	PoolStats() repository.PoolStats
}

type SessionSource interface {
	Stats() (hits, misses uint64, ratio float64)
}

type DropSource interface {
	Dropped() int64
}

// RegisterInfra exposes runtime, process, connection pool and session cache
// state on reg. logs may be nil when log shipping is disabled.
func RegisterInfra(reg prometheus.Registerer, pool PoolSource, sessions SessionSource, logs DropSource) error {
	cs := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	cs = append(cs, poolCollectors(pool)...)
	cs = append(cs, sessionCollectors(sessions)...)
	if logs != nil {
		cs = append(cs, prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "log_entries_dropped_total",
			Help: "Log entries dropped before shipping because the buffer was full or rate limited.",
		}, func() float64 { return float64(logs.Dropped()) }))
	}

	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("failed to register infra collector: %w", err)
		}
	}
	return nil
}

func poolCollectors(pool PoolSource) []prometheus.Collector {
	gauge := func(name, help string, value func(repository.PoolStats) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "pizza",
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(value(pool.PoolStats())) })
	}

	return []prometheus.Collector{
		gauge("acquired_connections", "Connections currently checked out.",
			func(s repository.PoolStats) int32 { return s.Acquired }),
		gauge("idle_connections", "Idle connections in the pool.",
			func(s repository.PoolStats) int32 { return s.Idle }),
		gauge("total_connections", "Open connections in the pool.",
			func(s repository.PoolStats) int32 { return s.Total }),
		gauge("max_connections", "Pool size limit.",
			func(s repository.PoolStats) int32 { return s.Max }),
	}
}

func sessionCollectors(sessions SessionSource) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "pizza",
			Subsystem: "session_cache",
			Name:      "hits_total",
			Help:      "Session lookups served from the cache.",
		}, func() float64 {
			hits, _, _ := sessions.Stats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "pizza",
			Subsystem: "session_cache",
			Name:      "misses_total",
			Help:      "Session lookups that found no cached token.",
		}, func() float64 {
			_, misses, _ := sessions.Stats()
			return float64(misses)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "pizza",
			Subsystem: "session_cache",
			Name:      "hit_ratio",
			Help:      "Session cache hit ratio.",
		}, func() float64 {
			_, _, ratio := sessions.Stats()
			return ratio
		}),
	}
}
