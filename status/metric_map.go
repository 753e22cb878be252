package status

import (
	"slices"
	"sync"
)

// MetricMap is a named set of overlay cells of one type
// Cells are created once at wiring time; holders write through the returned pointer without locking
type MetricMap[T any] struct {
	mu     sync.Mutex
	cells  map[string]*T
	names  []string // Sorted
	format func(v *T) string
}

// NewMetricMap creates an empty map whose cells render through format
func NewMetricMap[T any](format func(v *T) string) *MetricMap[T] {
	return &MetricMap[T]{
		cells:  make(map[string]*T),
		format: format,
	}
}

// Get returns the cell for name, creating it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cell, ok := m.cells[name]; ok {
		return cell
	}
	cell := new(T)
	m.cells[name] = cell
	i, _ := slices.BinarySearch(m.names, name)
	m.names = slices.Insert(m.names, i, name)
	return cell
}

// Lines renders every cell as "name: value" in name order
func (m *MetricMap[T]) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := make([]string, len(m.names))
	for i, name := range m.names {
		lines[i] = name + ": " + m.format(m.cells[name])
	}
	return lines
}

// Count returns the number of cells
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.names)
}
