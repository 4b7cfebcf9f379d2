package taskhub

import "sync/atomic"

// MetricID identifies one counter tracked by [Metrics].
type MetricID uint16

const (
	// MetricRegisterSuccess counts successful account registrations.
	MetricRegisterSuccess MetricID = iota
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess
	// MetricLoginFailure counts logins rejected for bad credentials.
	MetricLoginFailure
	// MetricLoginRateLimited counts logins refused by the rate limiter.
	MetricLoginRateLimited
	// MetricPasswordChanged counts completed password changes.
	MetricPasswordChanged
	// MetricTodoCreated counts todo insertions.
	MetricTodoCreated
	// MetricTodoUpdated counts todo patches.
	MetricTodoUpdated
	// MetricTodoDeleted counts todo removals.
	MetricTodoDeleted
	metricIDCount
)

var metricNames = [metricIDCount]string{
	MetricRegisterSuccess:  "register_success",
	MetricLoginSuccess:     "login_success",
	MetricLoginFailure:     "login_failure",
	MetricLoginRateLimited: "login_rate_limited",
	MetricPasswordChanged:  "password_changed",
	MetricTodoCreated:      "todo_created",
	MetricTodoUpdated:      "todo_updated",
	MetricTodoDeleted:      "todo_deleted",
}

// Metrics is a fixed set of atomic counters. A nil *Metrics is valid and
// drops every increment, so callers never need to branch on whether
// metrics are enabled.
type Metrics struct {
	counters [metricIDCount]atomic.Uint64
}

// NewMetrics returns a zeroed counter set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Inc adds one to the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricIDCount {
		return
	}
	m.counters[id].Add(1)
}

// Value returns the current count for id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return m.counters[id].Load()
}

// Snapshot returns every counter keyed by its wire name. The result is a
// point-in-time copy; counters keep moving underneath.
func (m *Metrics) Snapshot() map[string]uint64 {
	snap := make(map[string]uint64, int(metricIDCount))
	for id := MetricID(0); id < metricIDCount; id++ {
		snap[metricNames[id]] = m.Value(id)
	}
	return snap
}
