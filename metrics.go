package vecarr

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational
// metrics about a vector's lifetime. Implement this to integrate with a
// monitoring system.
type MetricsCollector interface {
	// RecordGrow is called after a capacity growth on either side.
	RecordGrow(side string, newCap int)

	// RecordShrink is called after a capacity shrink on either side.
	RecordShrink(side string, newCap int)

	// RecordInsert is called after each insert-family operation.
	RecordInsert(err error)

	// RecordRemove is called after each remove-family operation.
	RecordRemove(err error)

	// RecordSort is called after each sort operation, size is the
	// number of elements sorted.
	RecordSort(size int)

	// RecordLockWait is called with the priority level a caller had to
	// wait to acquire, and whether it waited at all.
	RecordLockWait(priority int, waited bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(string, int)   {}
func (NoopMetricsCollector) RecordShrink(string, int) {}
func (NoopMetricsCollector) RecordInsert(error)       {}
func (NoopMetricsCollector) RecordRemove(error)       {}
func (NoopMetricsCollector) RecordSort(int)           {}
func (NoopMetricsCollector) RecordLockWait(int, bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection
// with no external dependency, useful for debugging and tests.
type BasicMetricsCollector struct {
	GrowCount    atomic.Int64
	ShrinkCount  atomic.Int64
	InsertCount  atomic.Int64
	InsertErrors atomic.Int64
	RemoveCount  atomic.Int64
	RemoveErrors atomic.Int64
	SortCount    atomic.Int64
	LockWaits    atomic.Int64
}

func (m *BasicMetricsCollector) RecordGrow(string, int)   { m.GrowCount.Add(1) }
func (m *BasicMetricsCollector) RecordShrink(string, int) { m.ShrinkCount.Add(1) }

func (m *BasicMetricsCollector) RecordInsert(err error) {
	m.InsertCount.Add(1)
	if err != nil {
		m.InsertErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordRemove(err error) {
	m.RemoveCount.Add(1)
	if err != nil {
		m.RemoveErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordSort(int) { m.SortCount.Add(1) }

func (m *BasicMetricsCollector) RecordLockWait(_ int, waited bool) {
	if waited {
		m.LockWaits.Add(1)
	}
}

// MetricsSnapshot is a point-in-time copy of BasicMetricsCollector's
// counters.
type MetricsSnapshot struct {
	GrowCount    int64
	ShrinkCount  int64
	InsertCount  int64
	InsertErrors int64
	RemoveCount  int64
	RemoveErrors int64
	SortCount    int64
	LockWaits    int64
}

// Snapshot returns a consistent-enough point-in-time copy of the
// counters for reporting.
func (m *BasicMetricsCollector) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		GrowCount:    m.GrowCount.Load(),
		ShrinkCount:  m.ShrinkCount.Load(),
		InsertCount:  m.InsertCount.Load(),
		InsertErrors: m.InsertErrors.Load(),
		RemoveCount:  m.RemoveCount.Load(),
		RemoveErrors: m.RemoveErrors.Load(),
		SortCount:    m.SortCount.Load(),
		LockWaits:    m.LockWaits.Load(),
	}
}
