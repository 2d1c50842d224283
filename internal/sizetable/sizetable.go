package sizetable

import "math"

// Table is the single source of truth for per-item layout heights. It holds
// one entry per logical item index: the measured height once a measurement has
// arrived, the configured prior before that.
//
// The table is exclusively owned by the list controller. The resize
// notification handler mutates it only through the reference the controller
// granted at construction, and everything runs on the event loop, so no
// locking is needed.
type Table struct {
	heights []float64
}

func New() *Table {
	return &Table{}
}

// Resize grows or truncates the table to count entries. New entries are filled
// with prior; surviving entries keep their measured values.
func (t *Table) Resize(count int, prior float64) {
	if count < 0 {
		count = 0
	}
	if count <= len(t.heights) {
		t.heights = t.heights[:count]
		return
	}
	for len(t.heights) < count {
		t.heights = append(t.heights, sanitize(prior))
	}
}

// Set overwrites the height at index. Out-of-bounds indexes are a no-op: a
// stale resize notification can arrive after the table shrank, and that race
// is harmless.
func (t *Table) Set(index int, height float64) {
	if index < 0 || index >= len(t.heights) {
		return
	}
	t.heights[index] = sanitize(height)
}

// Heights returns a read view of the table for the window calculator. Callers
// must not mutate or retain it across a Resize.
func (t *Table) Heights() []float64 {
	return t.heights
}

func (t *Table) Len() int {
	return len(t.heights)
}

// sanitize clamps malformed heights to zero so the windowing invariants hold
// regardless of what the platform reports
func sanitize(height float64) float64 {
	if math.IsNaN(height) || height < 0 {
		return 0
	}
	return height
}
