package term

import (
	"github.com/WorldSEnder/virtlist/internal/observe"
)

// WidthObserver implements the platform side of the resize-observation
// contract for a terminal. Observing an element queues an initial measurement
// entry, the way a DOM ResizeObserver reports an element's size right after
// observe; a width change queues entries for every observed element whose
// wrapped row count changed. Entries accumulate into one batch that Flush
// delivers to the engine's callback.
type WidthObserver struct {
	onChange     func([]observe.Entry)
	width        int
	observed     map[string]*Element
	lastHeights  map[string]float64
	pending      []observe.Entry
	disconnected bool
}

// NewWidthObserver returns the observer factory for the given initial width.
func NewWidthObserver(width int) (*WidthObserver, observe.Factory) {
	o := &WidthObserver{
		width:       width,
		observed:    make(map[string]*Element),
		lastHeights: make(map[string]float64),
	}
	factory := func(onChange func([]observe.Entry)) observe.Observer {
		o.onChange = onChange
		return o
	}
	return o, factory
}

func (o *WidthObserver) Observe(el observe.Element) {
	if o.disconnected {
		return
	}
	termEl, ok := el.(*Element)
	if !ok {
		return
	}
	o.observed[termEl.ID()] = termEl
	h := termEl.HeightAt(o.width)
	o.lastHeights[termEl.ID()] = h
	o.pending = append(o.pending, observe.Entry{Target: termEl, Height: h})
}

func (o *WidthObserver) Unobserve(el observe.Element) {
	delete(o.observed, el.ID())
	delete(o.lastHeights, el.ID())
}

func (o *WidthObserver) Disconnect() {
	o.observed = make(map[string]*Element)
	o.lastHeights = make(map[string]float64)
	o.pending = nil
	o.disconnected = true
}

// SetWidth re-measures every observed element at the new width and queues
// entries for those whose height changed.
func (o *WidthObserver) SetWidth(width int) {
	if o.disconnected || width == o.width {
		return
	}
	o.width = width
	for id, el := range o.observed {
		h := el.HeightAt(width)
		if h == o.lastHeights[id] {
			continue
		}
		o.lastHeights[id] = h
		o.pending = append(o.pending, observe.Entry{Target: el, Height: h})
	}
}

// Flush delivers the accumulated batch, if any, to the engine.
func (o *WidthObserver) Flush() {
	if o.disconnected || len(o.pending) == 0 || o.onChange == nil {
		o.pending = nil
		return
	}
	batch := o.pending
	o.pending = nil
	o.onChange(batch)
}
