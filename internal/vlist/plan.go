package vlist

// Item is one materialized entry of a Plan.
type Item[C any] struct {
	// Position is the logical index of the item
	Position int
	// Content is the generator's output for Position
	Content C
}

// Plan is the render-time contract: a spacer of HiddenBefore height, the
// materialized items in order, then a spacer of HiddenAfter height. The two
// spacers preserve the total scrollable extent for everything that is not
// materialized.
type Plan[C any] struct {
	HiddenBefore float64
	HiddenAfter  float64
	Items        []Item[C]
}

// Plan materializes the current window through the item generator. The host
// renders it and calls BindItem for each rendered item so measurements can be
// routed back.
func (m *Model[C]) Plan() Plan[C] {
	p := Plan[C]{
		HiddenBefore: m.win.HiddenBefore,
		HiddenAfter:  m.win.HiddenAfter,
	}
	if m.props.Items == nil {
		return p
	}
	for i := m.win.First; i < m.win.PastLast; i++ {
		p.Items = append(p.Items, Item[C]{Position: i, Content: m.props.Items.Emit(i)})
	}
	return p
}
