package window

import (
	"math"

	"github.com/WorldSEnder/virtlist/internal/constants"
)

// Window is the half-open range of items to materialize, plus the aggregate
// height of the items hidden above and below it. It is derived state,
// recomputed on every trigger and never persisted.
type Window struct {
	// First is the index of the first materialized item
	First int
	// PastLast is one past the index of the last materialized item
	PastLast int
	// HiddenBefore is the total height of items [0, First)
	HiddenBefore float64
	// HiddenAfter is the total height of items [PastLast, len(heights))
	HiddenAfter float64
}

// Calculate determines which items must be materialized for the given scroll
// position. heights holds one entry per item, scrollOffset and viewportExtent
// are in the same units as the heights.
//
// Two forward scans, O(len(heights)) total. Acceptable because recomputation
// is triggered at most once per sampled scroll or resize batch, not per frame.
// TODO: a prefix-sum structure would make this O(log n) for very large lists
//
// The first scan keeps a ring buffer of the last ExtraBuffer cumulative
// heights observed before each index. First ends up exactly ExtraBuffer steps
// behind the item that crosses scrollOffset (or clamped at 0, where the ring's
// unwritten slots still hold the correct 0), so the slot at
// First % ExtraBuffer always holds the cumulative height strictly before
// First.
func Calculate(heights []float64, scrollOffset, viewportExtent int) Window {
	itemCount := len(heights)
	extra := constants.ExtraBuffer

	beforeRing := make([]float64, extra)
	ringIdx := 0
	firstIdx := itemCount

	passedHeight := 0.0
	for i, h := range heights {
		heightBefore := passedHeight
		passedHeight += sanitized(h)
		if passedHeight >= float64(scrollOffset) {
			firstIdx = i
			break
		}

		beforeRing[ringIdx] = heightBefore
		ringIdx = (ringIdx + 1) % extra
	}
	firstIdx = max(0, firstIdx-extra)
	firstIdx = min(firstIdx, itemCount)
	hiddenBefore := beforeRing[firstIdx%extra]

	pastLastIdx := itemCount
	passedHeight = hiddenBefore
	for i := firstIdx; i < itemCount; i++ {
		passedHeight += sanitized(heights[i])
		if passedHeight >= float64(scrollOffset+viewportExtent) {
			pastLastIdx = i + 1 + extra
			break
		}
	}
	pastLastIdx = min(pastLastIdx, itemCount)

	hiddenAfter := 0.0
	for _, h := range heights[pastLastIdx:] {
		hiddenAfter += sanitized(h)
	}

	return Window{
		First:        firstIdx,
		PastLast:     pastLastIdx,
		HiddenBefore: hiddenBefore,
		HiddenAfter:  hiddenAfter,
	}
}

func sanitized(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	return h
}
