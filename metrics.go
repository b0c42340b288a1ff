package avltree

import (
	"sync/atomic"
	"time"
)

// RotationKind identifies the direction of a single rotation.
type RotationKind int

const (
	// RotateLeft lifts the pivot's right child.
	RotateLeft RotationKind = iota
	// RotateRight lifts the pivot's left child.
	RotateRight
)

func (k RotationKind) String() string {
	switch k {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    inserts   prometheus.Counter
//	    rotations *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordRotation(kind avltree.RotationKind) {
//	    p.rotations.WithLabelValues(kind.String()).Inc()
//	}
type MetricsCollector interface {
	// RecordInsert is called after each insert.
	// rotations is the number of single rotations the insert applied
	// (a double rotation counts as two).
	RecordInsert(duration time.Duration, rotations int)

	// RecordRotation is called for every single rotation.
	RecordRotation(kind RotationKind)

	// RecordQuery is called after each order-statistic query.
	// op is "nth" or "take"; found reports whether a result was returned.
	RecordQuery(op string, found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, int) {}
func (NoopMetricsCollector) RecordRotation(RotationKind)     {}
func (NoopMetricsCollector) RecordQuery(string, bool)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount        atomic.Int64
	InsertTotalNanos   atomic.Int64
	InsertRotations    atomic.Int64
	MaxInsertRotations atomic.Int64
	LeftRotations      atomic.Int64
	RightRotations     atomic.Int64
	QueryCount         atomic.Int64
	QueryMisses        atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, rotations int) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())

	r := int64(rotations)
	b.InsertRotations.Add(r)
	for {
		cur := b.MaxInsertRotations.Load()
		if r <= cur || b.MaxInsertRotations.CompareAndSwap(cur, r) {
			return
		}
	}
}

// RecordRotation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRotation(kind RotationKind) {
	switch kind {
	case RotateLeft:
		b.LeftRotations.Add(1)
	case RotateRight:
		b.RightRotations.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(_ string, found bool) {
	b.QueryCount.Add(1)
	if !found {
		b.QueryMisses.Add(1)
	}
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	InsertCount        int64
	AvgInsertDuration  time.Duration
	InsertRotations    int64 // rotations summed over all inserts
	MaxInsertRotations int64 // most rotations done by a single insert
	LeftRotations      int64
	RightRotations     int64
	QueryCount         int64
	QueryMisses        int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	inserts := b.InsertCount.Load()
	var avg time.Duration
	if inserts > 0 {
		avg = time.Duration(b.InsertTotalNanos.Load() / inserts)
	}
	return MetricsStats{
		InsertCount:        inserts,
		AvgInsertDuration:  avg,
		InsertRotations:    b.InsertRotations.Load(),
		MaxInsertRotations: b.MaxInsertRotations.Load(),
		LeftRotations:      b.LeftRotations.Load(),
		RightRotations:     b.RightRotations.Load(),
		QueryCount:         b.QueryCount.Load(),
		QueryMisses:        b.QueryMisses.Load(),
	}
}
