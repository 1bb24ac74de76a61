// Package series provides a fixed-capacity FIFO buffer of timestamped samples.
package series

import "time"

type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

type Sample[T Number] struct {
	Value T
	Time  time.Time
}

// Bounded keeps the most recent Capacity samples in arrival order. Pushing
// into a full buffer evicts the oldest sample. It is not safe for concurrent
// use.
type Bounded[T Number] struct {
	buf   []Sample[T]
	start int
	size  int
}

func New[T Number](capacity int) *Bounded[T] {
	return &Bounded[T]{buf: make([]Sample[T], max(1, capacity))}
}

func (b *Bounded[T]) Push(s Sample[T]) {
	if b.size < len(b.buf) {
		b.buf[(b.start+b.size)%len(b.buf)] = s
		b.size++
		return
	}
	b.buf[b.start] = s
	b.start = (b.start + 1) % len(b.buf)
}

// Values returns a copy of the retained samples, oldest first.
func (b *Bounded[T]) Values() []Sample[T] {
	out := make([]Sample[T], b.size)
	for i := range b.size {
		out[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	return out
}

func (b *Bounded[T]) Len() int {
	return b.size
}

func (b *Bounded[T]) Capacity() int {
	return len(b.buf)
}

func (b *Bounded[T]) Average() float64 {
	if b.size == 0 {
		return 0
	}
	var sum float64
	for i := range b.size {
		sum += float64(b.buf[(b.start+i)%len(b.buf)].Value)
	}
	return sum / float64(b.size)
}

// Min reports false when the series is empty.
func (b *Bounded[T]) Min() (T, bool) {
	return b.reduce(func(cur, v T) bool { return v < cur })
}

// Max reports false when the series is empty.
func (b *Bounded[T]) Max() (T, bool) {
	return b.reduce(func(cur, v T) bool { return v > cur })
}

func (b *Bounded[T]) reduce(better func(cur, v T) bool) (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	best := b.buf[b.start].Value
	for i := 1; i < b.size; i++ {
		if v := b.buf[(b.start+i)%len(b.buf)].Value; better(best, v) {
			best = v
		}
	}
	return best, true
}
