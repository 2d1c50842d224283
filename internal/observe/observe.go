// Package observe defines the resize-observation contract between the list
// engine and the host platform, and tracks which rendered element currently
// stands for which logical list position.
package observe

// Element is an opaque handle to a rendered element whose content height the
// platform can measure. Identity, not structural equality, decides whether two
// handles are the same element: positions are reused across re-renders, but
// the underlying element may or may not be the same instance.
type Element interface {
	ID() string
}

// Entry is one change in a batched resize notification: the observed element
// and its newly measured content height.
type Entry struct {
	Target Element
	Height float64
}

// Observer is the platform's resize-observation capability. Implementations
// deliver batched Entry slices to the callback they were constructed with.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
	Disconnect()
}

// Factory constructs the platform observer with the engine's change handler.
type Factory func(onChange func([]Entry)) Observer

// Change is a resolved resize notification: the logical position whose height
// changed, in list units.
type Change struct {
	Position int
	Height   float64
}
