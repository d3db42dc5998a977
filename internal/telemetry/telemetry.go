// Package telemetry keeps a bounded in-memory record of recent mock calls and
// running per-operation statistics. Each mock service instance owns exactly one
// Recorder; nothing is shared across instances.
package telemetry

import (
	"sync"
	"time"
)

// LogCapacity bounds the request log. Oldest entries are evicted first.
const LogCapacity = 100

// LogEntry describes one completed façade call.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	Scenario  string    `json:"scenario"`
	LatencyMs int       `json:"latencyMs"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// Metrics holds one operation's running statistics. TotalRequests never
// decreases except on an explicit reset.
type Metrics struct {
	TotalRequests     int64   `json:"totalRequests"`
	AverageDurationMs float64 `json:"averageDurationMs"`
}

// Recorder is the request log plus the per-operation metric table. Log writes
// are gated by the logRequests flag; metric updates always happen. All mutation
// is mutex-guarded since the Go runtime schedules callers preemptively and the
// running-mean update is a read-modify-write.
type Recorder struct {
	mu          sync.Mutex
	logRequests bool
	entries     []LogEntry // ring buffer, LogCapacity slots
	head        int        // index of the oldest entry
	count       int
	metrics     map[string]*Metrics
}

func NewRecorder(logRequests bool) *Recorder {
	return &Recorder{
		logRequests: logRequests,
		entries:     make([]LogEntry, LogCapacity),
		metrics:     make(map[string]*Metrics),
	}
}

// Log appends an entry, evicting the oldest once the buffer is full. No-op when
// request logging is disabled.
func (r *Recorder) Log(e LogEntry) {
	if !r.logRequests {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tail := (r.head + r.count) % LogCapacity
	r.entries[tail] = e
	if r.count < LogCapacity {
		r.count++
		return
	}
	r.head = (r.head + 1) % LogCapacity
}

// Logs returns the recorded entries oldest first.
func (r *Recorder) Logs() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]LogEntry, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, r.entries[(r.head+i)%LogCapacity])
	}
	return out
}

func (r *Recorder) ClearLogs() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.count = 0
}

// RecordDuration folds one call's measured duration into the operation's
// running mean. The incremental form keeps memory O(1) and avoids a growing
// sum on long-running suites.
func (r *Recorder) RecordDuration(operation string, durationMs float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.metrics[operation]
	if !ok {
		m = &Metrics{}
		r.metrics[operation] = m
	}
	m.TotalRequests++
	m.AverageDurationMs += (durationMs - m.AverageDurationMs) / float64(m.TotalRequests)
}

// OperationMetrics returns one operation's stats. The second return is false
// when the operation has never been recorded.
func (r *Recorder) OperationMetrics(operation string) (Metrics, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.metrics[operation]
	if !ok {
		return Metrics{}, false
	}
	return *m, true
}

// AllMetrics returns a snapshot of every operation's stats.
func (r *Recorder) AllMetrics() map[string]Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Metrics, len(r.metrics))
	for op, m := range r.metrics {
		out[op] = *m
	}
	return out
}

func (r *Recorder) ClearMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics = make(map[string]*Metrics)
}
