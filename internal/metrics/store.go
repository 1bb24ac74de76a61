// Package metrics aggregates runtime events into running and trailing-minute
// statistics and hands out consistent snapshots of them.
package metrics

import (
	"strings"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"pizzametrics/internal/config"
	"pizzametrics/internal/series"
	"pizzametrics/internal/window"
)

// Store owns every counter, series and window. All methods are safe for
// concurrent use; each runs under a single mutex so a Snapshot never observes
// a half-applied mutation.
type Store struct {
	mu      sync.Mutex
	clock   clock.PassiveClock
	sampler SystemSampler
	cfg     *config.MetricsConfig
	state   *state
}

type state struct {
	totalRequests    int64
	requestsByMethod MethodCounts
	requestDurations *series.Bounded[float64]

	activeUsers map[string]struct{}

	authSuccessful   int64
	authFailed        int64
	authSuccessWindow *window.Counter
	authFailureWindow *window.Counter

	pizzasSold            int64
	pizzaRevenue          float64
	pizzaCreationFailures int64
	pizzasSoldWindow      *window.Counter
	pizzaRevenueWindow    *window.Counter
	pizzaLatencies        *series.Bounded[float64]

	endpointLatencies map[EndpointKey]*series.Bounded[float64]
}

func newState(cfg *config.MetricsConfig) *state {
	return &state{
		requestDurations:   series.New[float64](cfg.SeriesCapacity),
		activeUsers:        make(map[string]struct{}),
		authSuccessWindow:  window.NewCounter(),
		authFailureWindow:  window.NewCounter(),
		pizzasSoldWindow:   window.NewCounter(),
		pizzaRevenueWindow: window.NewCounter(),
		pizzaLatencies:     series.New[float64](cfg.SeriesCapacity),
		endpointLatencies:  make(map[EndpointKey]*series.Bounded[float64]),
	}
}

func NewStore(cfg *config.MetricsConfig, clk clock.PassiveClock, sampler SystemSampler) *Store {
	return &Store{
		clock:   clk,
		sampler: sampler,
		cfg:     cfg,
		state:   newState(cfg),
	}
}

func (s *Store) RecordRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.totalRequests++
}

// RecordRequestMethod counts GET, PUT, POST and DELETE; other methods are ignored.
func (s *Store) RecordRequestMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch strings.ToUpper(method) {
	case "GET":
		s.state.requestsByMethod.GET++
	case "PUT":
		s.state.requestsByMethod.PUT++
	case "POST":
		s.state.requestsByMethod.POST++
	case "DELETE":
		s.state.requestsByMethod.DELETE++
	}
}

func (s *Store) RecordRequestDuration(ms float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.requestDurations.Push(series.Sample[float64]{Value: ms, Time: s.clock.Now()})
}

func (s *Store) AddActiveUser(userID string) {
	if userID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.activeUsers[userID] = struct{}{}
}

func (s *Store) RemoveActiveUser(userID string) {
	if userID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.activeUsers, userID)
}

func (s *Store) ActiveUserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.activeUsers)
}

func (s *Store) RecordAuthSuccess(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.authSuccessful++
	s.state.authSuccessWindow.Record(1, s.clock.Now())
	if userID != "" {
		s.state.activeUsers[userID] = struct{}{}
	}
}

func (s *Store) RecordAuthFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.authFailed++
	s.state.authFailureWindow.Record(1, s.clock.Now())
}

func (s *Store) AuthAttemptsPerMinute() AuthRate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authRate(window.Horizon(s.clock.Now()))
}

func (s *Store) authRate(horizon time.Time) AuthRate {
	ok := s.state.authSuccessWindow.CountSince(horizon)
	failed := s.state.authFailureWindow.CountSince(horizon)
	return AuthRate{Successful: ok, Failed: failed, Total: ok + failed}
}

func (s *Store) RecordPizzaSale(revenue float64, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.state.pizzasSold += int64(count)
	s.state.pizzasSoldWindow.Record(float64(count), now)
	s.state.pizzaRevenue += revenue
	s.state.pizzaRevenueWindow.Record(revenue, now)
}

func (s *Store) RecordPizzaCreationFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.pizzaCreationFailures++
}

func (s *Store) PizzasSoldPerMinute() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(s.state.pizzasSoldWindow.SumSince(window.Horizon(s.clock.Now())))
}

func (s *Store) RevenuePerMinute() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.pizzaRevenueWindow.SumSince(window.Horizon(s.clock.Now()))
}

func (s *Store) RecordPizzaCreationLatency(ms float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.pizzaLatencies.Push(series.Sample[float64]{Value: ms, Time: s.clock.Now()})
}

func (s *Store) AveragePizzaCreationLatency() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.pizzaLatencies.Average()
}

func (s *Store) RecordEndpointLatency(route, method string, ms float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := EndpointKey{Method: method, Route: route}
	latencies, ok := s.state.endpointLatencies[key]
	if !ok {
		latencies = series.New[float64](s.cfg.EndpointSeriesCapacity)
		s.state.endpointLatencies[key] = latencies
	}
	latencies.Push(series.Sample[float64]{Value: ms, Time: s.clock.Now()})
}

func (s *Store) AverageEndpointLatency(route, method string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	latencies, ok := s.state.endpointLatencies[EndpointKey{Method: method, Route: route}]
	if !ok {
		return 0
	}
	return latencies.Average()
}

// AllEndpointLatencies omits endpoints whose series is empty.
func (s *Store) AllEndpointLatencies() map[string]EndpointStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endpointStats()
}

func (s *Store) endpointStats() map[string]EndpointStats {
	out := make(map[string]EndpointStats, len(s.state.endpointLatencies))
	for key, latencies := range s.state.endpointLatencies {
		lo, ok := latencies.Min()
		if !ok {
			continue
		}
		hi, _ := latencies.Max()
		out[key.String()] = EndpointStats{
			Average: latencies.Average(),
			Count:   latencies.Len(),
			Min:     lo,
			Max:     hi,
		}
	}
	return out
}

// Prune drops windowed events that fell out of the trailing minute.
func (s *Store) Prune() {
	s.mu.Lock()
	defer s.mu.Unlock()

	horizon := window.Horizon(s.clock.Now())
	s.state.authSuccessWindow.PruneBefore(horizon)
	s.state.authFailureWindow.PruneBefore(horizon)
	s.state.pizzasSoldWindow.PruneBefore(horizon)
	s.state.pizzaRevenueWindow.PruneBefore(horizon)
}

// WindowedEvents returns how many events the trailing-minute windows currently retain.
func (s *Store) WindowedEvents() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.authSuccessWindow.Len() +
		s.state.authFailureWindow.Len() +
		s.state.pizzasSoldWindow.Len() +
		s.state.pizzaRevenueWindow.Len()
}

// Reset replaces all state with the zero value.
func (s *Store) Reset() {
	fresh := newState(s.cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fresh
}

// Snapshot reads every statistic under one lock acquisition. System usage is
// sampled before the lock is taken.
func (s *Store) Snapshot() Snapshot {
	system := s.sampler.Sample()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	horizon := window.Horizon(now)

	return Snapshot{
		HTTP: HTTPStats{
			TotalRequests:          s.state.totalRequests,
			RequestsByMethod:       s.state.requestsByMethod,
			AverageRequestDuration: s.state.requestDurations.Average(),
		},
		Users: UserStats{
			ActiveUsers: len(s.state.activeUsers),
		},
		Auth: AuthStats{
			TotalSuccessful: s.state.authSuccessful,
			TotalFailed:     s.state.authFailed,
			PerMinute:       s.authRate(horizon),
		},
		Pizza: PizzaStats{
			TotalSold:              s.state.pizzasSold,
			SoldPerMinute:          int64(s.state.pizzasSoldWindow.SumSince(horizon)),
			CreationFailures:       s.state.pizzaCreationFailures,
			TotalRevenue:           s.state.pizzaRevenue,
			RevenuePerMinute:       s.state.pizzaRevenueWindow.SumSince(horizon),
			AverageCreationLatency: s.state.pizzaLatencies.Average(),
		},
		Endpoints:  s.endpointStats(),
		System:     system,
		CapturedAt: now,
	}
}
