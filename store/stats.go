package store

import (
	"sync/atomic"
	"time"
)

// Statistics tracks store activity. Statistics are always collected;
// Prometheus export is layered on top via the metrics option.
type Statistics struct {
	reads          atomic.Int64
	writes         atomic.Int64
	removes        atomic.Int64
	serializations atomic.Int64

	startTime time.Time
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

// Read records a lookup
func (s *Statistics) Read() {
	s.reads.Add(1)
}

// Write records a set operation
func (s *Statistics) Write() {
	s.writes.Add(1)
}

// Remove records a delete or clear operation
func (s *Statistics) Remove() {
	s.removes.Add(1)
}

// Serialization records a store serialization
func (s *Statistics) Serialization() {
	s.serializations.Add(1)
}

// Reads returns the total number of lookups
func (s *Statistics) Reads() int64 {
	return s.reads.Load()
}

// Writes returns the total number of set operations
func (s *Statistics) Writes() int64 {
	return s.writes.Load()
}

// Removes returns the total number of delete operations
func (s *Statistics) Removes() int64 {
	return s.removes.Load()
}

// Serializations returns the total number of serializations
func (s *Statistics) Serializations() int64 {
	return s.serializations.Load()
}

// Uptime returns how long the store has been alive
func (s *Statistics) Uptime() time.Duration {
	return time.Since(s.startTime)
}
