package status

import (
	"slices"
	"strconv"
	"sync/atomic"
)

// Registry holds the debug overlay metrics, grouped by cell type
// Components cache cell pointers at construction and update them in their hot paths
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Bools  *MetricMap[atomic.Bool]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap(func(v *atomic.Int64) string {
			return strconv.FormatInt(v.Load(), 10)
		}),
		Floats: NewMetricMap(func(v *AtomicFloat) string {
			return strconv.FormatFloat(v.Load(), 'f', 1, 64)
		}),
		Bools: NewMetricMap(func(v *atomic.Bool) string {
			return strconv.FormatBool(v.Load())
		}),
	}
}

// Lines returns the overlay text of every metric, sorted across types
func (r *Registry) Lines() []string {
	lines := slices.Concat(r.Ints.Lines(), r.Floats.Lines(), r.Bools.Lines())
	slices.Sort(lines)
	return lines
}
