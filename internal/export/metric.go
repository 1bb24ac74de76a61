// Package export turns store snapshots into backend metrics and pushes them.
package export

import "time"

type Kind int

const (
	// KindSum is a monotonic cumulative counter.
	KindSum Kind = iota
	// KindGauge is a point-in-time value.
	KindGauge
)

func (k Kind) String() string {
	switch k {
	case KindSum:
		return "sum"
	case KindGauge:
		return "gauge"
	default:
		return "unknown"
	}
}

type Value struct {
	Int      int64
	Double   float64
	IsDouble bool
}

func IntValue(v int64) Value {
	return Value{Int: v}
}

func DoubleValue(v float64) Value {
	return Value{Double: v, IsDouble: true}
}

func (v Value) Float() float64 {
	if v.IsDouble {
		return v.Double
	}
	return float64(v.Int)
}

type Attribute struct {
	Key   string
	Value string
}

type Metric struct {
	Name       string
	Unit       string
	Kind       Kind
	Value      Value
	Time       time.Time
	Attributes []Attribute
}

// Attr returns the value of the named attribute.
func (m Metric) Attr(key string) (string, bool) {
	for _, a := range m.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
