package series_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzametrics/internal/series"
)

func push(b *series.Bounded[float64], values ...float64) {
	base := time.Unix(0, 0)
	for i, v := range values {
		b.Push(series.Sample[float64]{Value: v, Time: base.Add(time.Duration(i) * time.Millisecond)})
	}
}

func values(b *series.Bounded[float64]) []float64 {
	samples := b.Values()
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}
	return out
}

func TestNew_ClampsCapacity(t *testing.T) {
	b := series.New[float64](0)
	assert.Equal(t, 1, b.Capacity())
}

func TestPush_RetainsLastCapacityInOrder(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   int
	}{
		{"under capacity", 5, 3},
		{"exactly capacity", 5, 5},
		{"one over", 5, 6},
		{"many over", 5, 23},
		{"capacity one", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := series.New[float64](tt.capacity)
			all := make([]float64, tt.pushes)
			for i := range all {
				all[i] = float64(i)
			}
			push(b, all...)

			want := all[max(0, tt.pushes-tt.capacity):]
			assert.Equal(t, min(tt.pushes, tt.capacity), b.Len())
			assert.Equal(t, want, values(b))
		})
	}
}

func TestValues_IsSnapshot(t *testing.T) {
	b := series.New[float64](2)
	push(b, 1, 2)

	snapshot := b.Values()
	push(b, 3)

	require.Len(t, snapshot, 2)
	assert.Equal(t, 1.0, snapshot[0].Value)
	assert.Equal(t, 2.0, snapshot[1].Value)
	assert.Equal(t, []float64{2, 3}, values(b))
}

func TestAverage(t *testing.T) {
	b := series.New[float64](100)
	assert.Zero(t, b.Average())

	push(b, 120, 80, 200)
	assert.InDelta(t, 133.333, b.Average(), 0.001)
}

func TestAverage_AfterEviction(t *testing.T) {
	b := series.New[float64](2)
	push(b, 1000, 10, 20)
	assert.Equal(t, 15.0, b.Average())
}

func TestMinMax(t *testing.T) {
	b := series.New[float64](100)

	_, ok := b.Min()
	assert.False(t, ok)
	_, ok = b.Max()
	assert.False(t, ok)

	push(b, 120, 80, 200)

	lo, ok := b.Min()
	require.True(t, ok)
	assert.Equal(t, 80.0, lo)

	hi, ok := b.Max()
	require.True(t, ok)
	assert.Equal(t, 200.0, hi)
}

func TestIntegerSeries(t *testing.T) {
	b := series.New[int64](3)
	for _, v := range []int64{5, 1, 9, 4} {
		b.Push(series.Sample[int64]{Value: v})
	}

	lo, _ := b.Min()
	hi, _ := b.Max()
	assert.Equal(t, int64(1), lo)
	assert.Equal(t, int64(9), hi)
	assert.Equal(t, 14.0/3, b.Average())
}
