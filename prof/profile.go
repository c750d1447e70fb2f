// Package prof collects per-attempt timing records from the analysis
// tooling. The core factor searches never touch it.
package prof

import (
	"sync"
	"time"
)

// Attempt is one timed factoring attempt.
type Attempt struct {
	Method    string
	Seconds   float64
	Exhausted bool
}

var (
	mu     sync.Mutex
	record []Attempt
)

// Record logs an attempt with the given method that started at start.
// Exhausted marks attempts that burned their retry budget without
// finding a factor.
func Record(method string, start time.Time, exhausted bool) {
	secs := time.Since(start).Seconds()
	mu.Lock()
	record = append(record, Attempt{Method: method, Seconds: secs, Exhausted: exhausted})
	mu.Unlock()
}

// SnapshotAndReset returns the collected attempts and clears them.
func SnapshotAndReset() []Attempt {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Attempt, len(record))
	copy(out, record)
	record = nil
	return out
}
