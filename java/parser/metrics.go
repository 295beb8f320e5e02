package parser

import "sync/atomic"

// metricsEnabled is set once at process init via EnableMetrics and never
// flipped afterwards, so the guard is a branch on a stable bool.
var metricsEnabled bool

var (
	metricSessions       atomic.Int64
	metricTokens         atomic.Int64
	metricNodesAllocated atomic.Int64
	metricStorageFull    atomic.Int64
	metricParseNanos     atomic.Int64
)

// EnableMetrics turns on process-wide allocation and timing counters. Call
// it once during initialization, before any parse session starts.
func EnableMetrics() {
	metricsEnabled = true
}

func countNodes() bool {
	return metricsEnabled
}

// Metrics is a snapshot of the process-wide counters. All values are zero
// when metrics were never enabled.
type Metrics struct {
	Sessions       int64
	Tokens         int64
	NodesAllocated int64
	StorageFull    int64
	ParseNanos     int64
}

// SnapshotMetrics returns the current counter values.
func SnapshotMetrics() Metrics {
	return Metrics{
		Sessions:       metricSessions.Load(),
		Tokens:         metricTokens.Load(),
		NodesAllocated: metricNodesAllocated.Load(),
		StorageFull:    metricStorageFull.Load(),
		ParseNanos:     metricParseNanos.Load(),
	}
}
