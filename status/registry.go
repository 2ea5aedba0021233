package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Session metric keys
const (
	Throws    = "throws"
	BestSpeed = "best_speed"
)

// OutcomeKey names the counter for a scoring outcome such as "Swish" or "Off board"
func OutcomeKey(reason string) string {
	return "outcome." + strings.ReplaceAll(strings.ToLower(reason), " ", "_")
}

// Registry holds session counters and gauges written by systems
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Summary formats every metric as key=value in key order, counters first
func (r *Registry) Summary() string {
	parts := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", key, v.Get()))
	})
	return strings.Join(parts, " ")
}
