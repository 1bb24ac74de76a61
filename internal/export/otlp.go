package export

import (
	"fmt"
	"time"

	colmetricspb "go.opentelemetry.io/proto/otlp/collector/metrics/v1"
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	metricspb "go.opentelemetry.io/proto/otlp/metrics/v1"
	resourcepb "go.opentelemetry.io/proto/otlp/resource/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

const scopeName = "pizzametrics"

// NewRequest wraps metrics in a single resource/scope OTLP export request.
func NewRequest(ms []Metric, serviceName string) *colmetricspb.ExportMetricsServiceRequest {
	out := make([]*metricspb.Metric, len(ms))
	for i, m := range ms {
		out[i] = toProto(m)
	}

	return &colmetricspb.ExportMetricsServiceRequest{
		ResourceMetrics: []*metricspb.ResourceMetrics{{
			Resource: &resourcepb.Resource{
				Attributes: []*commonpb.KeyValue{stringKV("service.name", serviceName)},
			},
			ScopeMetrics: []*metricspb.ScopeMetrics{{
				Scope:   &commonpb.InstrumentationScope{Name: scopeName},
				Metrics: out,
			}},
		}},
	}
}

// MarshalJSON encodes metrics as an OTLP/HTTP JSON body.
func MarshalJSON(ms []Metric, serviceName string) ([]byte, error) {
	body, err := protojson.Marshal(NewRequest(ms, serviceName))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal otlp request: %w", err)
	}
	return body, nil
}

func toProto(m Metric) *metricspb.Metric {
	dp := &metricspb.NumberDataPoint{
		TimeUnixNano: unixNano(m.Time),
		Attributes:   make([]*commonpb.KeyValue, len(m.Attributes)),
	}
	for i, a := range m.Attributes {
		dp.Attributes[i] = stringKV(a.Key, a.Value)
	}
	if m.Value.IsDouble {
		dp.Value = &metricspb.NumberDataPoint_AsDouble{AsDouble: m.Value.Double}
	} else {
		dp.Value = &metricspb.NumberDataPoint_AsInt{AsInt: m.Value.Int}
	}

	out := &metricspb.Metric{Name: m.Name, Unit: m.Unit}
	switch m.Kind {
	case KindSum:
		out.Data = &metricspb.Metric_Sum{Sum: &metricspb.Sum{
			DataPoints:             []*metricspb.NumberDataPoint{dp},
			AggregationTemporality: metricspb.AggregationTemporality_AGGREGATION_TEMPORALITY_CUMULATIVE,
			IsMonotonic:            true,
		}}
	default:
		out.Data = &metricspb.Metric_Gauge{Gauge: &metricspb.Gauge{
			DataPoints: []*metricspb.NumberDataPoint{dp},
		}}
	}
	return out
}

// unixNano reports 0, which OTLP reads as "unknown", for a zero time.
func unixNano(t time.Time) uint64 {
	if t.IsZero() || t.Before(time.Unix(0, 0)) {
		return 0
	}
	return uint64(t.UnixNano())
}

func stringKV(key, value string) *commonpb.KeyValue {
	return &commonpb.KeyValue{
		Key:   key,
		Value: &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: value}},
	}
}
