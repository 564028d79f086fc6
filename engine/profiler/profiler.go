package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks per-export timing and memory statistics. An export run is
// bracketed by Begin and End; End logs duration, document size, and heap
// stats for the run.
type Profiler struct {
	startTime      time.Time
	startMem       runtime.MemStats
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{}
}

// Begin marks the start of an export run.
func (p *Profiler) Begin() {
	p.startTime = time.Now()
	runtime.ReadMemStats(&p.startMem)
	p.lastTotalAlloc = p.startMem.TotalAlloc
}

// End marks the end of an export run and logs its statistics: wall time,
// object throughput, bytes allocated during the run, and current heap size.
//
// Parameters:
//   - objects: number of primitives written
//   - lights: number of lights written
//
// Returns:
//   - time.Duration: the wall time of the run
func (p *Profiler) End(objects, lights int) time.Duration {
	elapsed := time.Since(p.startTime)
	runtime.ReadMemStats(&p.memStats)

	// Alloc: bytes of live heap objects
	// TotalAlloc: cumulative heap allocation (tracks churn over the run)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	churnMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024

	perSec := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		perSec = float64(objects) / secs
	}

	log.Printf("[Profiler] export: %s | %d objects (%.0f/s), %d lights | run alloc: %.2f MB | heap: %.2f MB",
		elapsed.Round(time.Microsecond), objects, perSec, lights, churnMB, allocMB)
	return elapsed
}
