// Package prom exposes store snapshots in the Prometheus text format.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"pizzametrics/internal/export"
)

// Collector is an unchecked collector: the endpoint set is only known at
// scrape time, so Describe sends nothing.
type Collector struct {
	source     export.SnapshotSource
	sourceName string
}

func NewCollector(source export.SnapshotSource, sourceName string) *Collector {
	return &Collector{source: source, sourceName: sourceName}
}

func (c *Collector) Describe(chan<- *prometheus.Desc) {}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range export.Encode(c.source.Snapshot(), c.sourceName) {
		ch <- constMetric(m)
	}
}

func constMetric(m export.Metric) prometheus.Metric {
	labels := make([]string, len(m.Attributes))
	values := make([]string, len(m.Attributes))
	for i, a := range m.Attributes {
		labels[i] = a.Key
		values[i] = a.Value
	}

	desc := prometheus.NewDesc(m.Name, help(m), labels, nil)

	valueType := prometheus.GaugeValue
	if m.Kind == export.KindSum {
		valueType = prometheus.CounterValue
	}

	metric, err := prometheus.NewConstMetric(desc, valueType, m.Value.Float(), values...)
	if err != nil {
		return prometheus.NewInvalidMetric(desc, err)
	}
	if m.Time.IsZero() {
		return metric
	}
	return prometheus.NewMetricWithTimestamp(m.Time, metric)
}

func help(m export.Metric) string {
	if m.Unit == "" {
		return m.Name
	}
	return m.Name + " (" + m.Unit + ")"
}
