package crystio

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Methods may be called concurrently from worker goroutines.
type MetricsCollector interface {
	// RecordFile is called after each file is decoded and converted.
	// rows is zero when err is non-nil.
	RecordFile(path string, rows int, duration time.Duration, err error)

	// RecordRead is called once per ReadStills call.
	RecordRead(files, rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFile(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRead(int, int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FileCount      atomic.Int64
	FileErrors     atomic.Int64
	FileTotalNanos atomic.Int64
	RowsRead       atomic.Int64
	ReadCount      atomic.Int64
	ReadErrors     atomic.Int64
	ReadTotalNanos atomic.Int64
}

// RecordFile implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFile(_ string, rows int, duration time.Duration, err error) {
	b.FileCount.Add(1)
	b.FileTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FileErrors.Add(1)
		return
	}
	b.RowsRead.Add(int64(rows))
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(_, _ int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	FileCount      int64
	FileErrors     int64
	RowsRead       int64
	FileAvgLatency time.Duration
	ReadCount      int64
	ReadErrors     int64
	ReadAvgLatency time.Duration
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	files := b.FileCount.Load()
	reads := b.ReadCount.Load()

	var fileAvg, readAvg time.Duration
	if files > 0 {
		fileAvg = time.Duration(b.FileTotalNanos.Load() / files)
	}
	if reads > 0 {
		readAvg = time.Duration(b.ReadTotalNanos.Load() / reads)
	}

	return BasicMetricsStats{
		FileCount:      files,
		FileErrors:     b.FileErrors.Load(),
		RowsRead:       b.RowsRead.Load(),
		FileAvgLatency: fileAvg,
		ReadCount:      reads,
		ReadErrors:     b.ReadErrors.Load(),
		ReadAvgLatency: readAvg,
	}
}
