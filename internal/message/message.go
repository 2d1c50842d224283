package message

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }

// ScrollMsg is a raw scroll notification carrying the new scroll offset in
// height units. Raw notifications are rate-limited by the sampler before they
// reach the window recomputation
type ScrollMsg struct {
	Offset int
}

// RecomputeMsg requests that the list controller recompute its window from the
// current size table and scroll state
type RecomputeMsg struct{}
