package infra

import "sync/atomic"

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	requestsSent    atomic.Uint64
	marketsFetched  atomic.Uint64
	failuresByStage [6]atomic.Uint64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordRequest records an outgoing API request.
func (m *Metrics) RecordRequest() {
	m.requestsSent.Add(1)
}

// RecordMarketFetched records a successfully normalized market.
func (m *Metrics) RecordMarketFetched() {
	m.marketsFetched.Add(1)
}

// RecordFailure records a failure for the given pipeline stage index.
func (m *Metrics) RecordFailure(stage int) {
	if stage >= 0 && stage < len(m.failuresByStage) {
		m.failuresByStage[stage].Add(1)
	}
}

// RequestsSent returns the total number of outgoing requests.
func (m *Metrics) RequestsSent() uint64 {
	return m.requestsSent.Load()
}

// FailuresForStage returns the failure count for one stage index.
func (m *Metrics) FailuresForStage(stage int) uint64 {
	if stage < 0 || stage >= len(m.failuresByStage) {
		return 0
	}
	return m.failuresByStage[stage].Load()
}
