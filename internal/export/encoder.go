package export

import (
	"maps"
	"regexp"
	"slices"

	"pizzametrics/internal/metrics"
)

var unsafeEndpointChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// SanitizeEndpoint replaces every character outside [a-zA-Z0-9_] with '_'.
func SanitizeEndpoint(key string) string {
	return unsafeEndpointChars.ReplaceAllString(key, "_")
}

// Encode converts a snapshot into wire metrics. Every metric carries the
// source attribute; per-endpoint metrics also carry a sanitized endpoint
// attribute. Endpoints are emitted in key order so output is deterministic.
func Encode(s metrics.Snapshot, source string) []Metric {
	e := encoder{source: source, snap: s}

	e.sum("http_requests_total", "requests", IntValue(s.HTTP.TotalRequests))
	e.sum("http_requests_get", "requests", IntValue(s.HTTP.RequestsByMethod.GET))
	e.sum("http_requests_post", "requests", IntValue(s.HTTP.RequestsByMethod.POST))
	e.sum("http_requests_put", "requests", IntValue(s.HTTP.RequestsByMethod.PUT))
	e.sum("http_requests_delete", "requests", IntValue(s.HTTP.RequestsByMethod.DELETE))
	e.gauge("http_request_duration_avg", "ms", DoubleValue(s.HTTP.AverageRequestDuration))

	e.gauge("active_users", "users", IntValue(int64(s.Users.ActiveUsers)))

	e.sum("auth_attempts_successful_total", "attempts", IntValue(s.Auth.TotalSuccessful))
	e.sum("auth_attempts_failed_total", "attempts", IntValue(s.Auth.TotalFailed))
	e.gauge("auth_attempts_successful_per_minute", "attempts/min", IntValue(int64(s.Auth.PerMinute.Successful)))
	e.gauge("auth_attempts_failed_per_minute", "attempts/min", IntValue(int64(s.Auth.PerMinute.Failed)))

	e.sum("pizzas_sold_total", "pizzas", IntValue(s.Pizza.TotalSold))
	e.gauge("pizzas_sold_per_minute", "pizzas/min", IntValue(s.Pizza.SoldPerMinute))
	e.sum("pizza_creation_failures_total", "failures", IntValue(s.Pizza.CreationFailures))
	e.sum("pizza_revenue_total", "dollars", DoubleValue(s.Pizza.TotalRevenue))
	e.gauge("pizza_revenue_per_minute", "dollars/min", DoubleValue(s.Pizza.RevenuePerMinute))
	e.gauge("pizza_creation_latency_avg", "ms", DoubleValue(s.Pizza.AverageCreationLatency))

	e.gauge("system_cpu_usage", "percent", DoubleValue(s.System.CPUUsage))
	e.gauge("system_memory_usage", "percent", DoubleValue(s.System.MemoryUsage))

	for _, key := range slices.Sorted(maps.Keys(s.Endpoints)) {
		stats := s.Endpoints[key]
		endpoint := Attribute{Key: "endpoint", Value: SanitizeEndpoint(key)}
		e.gauge("endpoint_latency_avg", "ms", DoubleValue(stats.Average), endpoint)
		e.gauge("endpoint_latency_min", "ms", DoubleValue(stats.Min), endpoint)
		e.gauge("endpoint_latency_max", "ms", DoubleValue(stats.Max), endpoint)
	}

	return e.out
}

type encoder struct {
	source string
	snap   metrics.Snapshot
	out    []Metric
}

// Counters never go negative on the wire.
func (e *encoder) sum(name, unit string, v Value, attrs ...Attribute) {
	v.Int = max(v.Int, 0)
	v.Double = max(v.Double, 0)
	e.add(name, unit, KindSum, v, attrs)
}

func (e *encoder) gauge(name, unit string, v Value, attrs ...Attribute) {
	e.add(name, unit, KindGauge, v, attrs)
}

func (e *encoder) add(name, unit string, kind Kind, v Value, extra []Attribute) {
	attrs := make([]Attribute, 0, 1+len(extra))
	attrs = append(attrs, Attribute{Key: "source", Value: e.source})
	attrs = append(attrs, extra...)

	e.out = append(e.out, Metric{
		Name:       name,
		Unit:       unit,
		Kind:       kind,
		Value:      v,
		Time:       e.snap.CapturedAt,
		Attributes: attrs,
	})
}
