package observe

// Subscription owns one resize-observation session for a list instance. It
// tags observed elements with their logical position, resolves platform
// entries back to positions, and guarantees every observation is released
// exactly once, on rebind, dematerialization or teardown.
type Subscription struct {
	observer  Observer
	positions map[string]int      // element id -> logical position
	bindings  map[string]*Binding // element id -> live binding
	onBatch   func([]Change)
	closed    bool
}

// NewSubscription constructs the platform observer via factory and routes its
// batches, resolved to (position, height) pairs, to onBatch. Entries for
// elements that are no longer observed are dropped: they reflect a harmless
// race between an async measurement and a rebind or teardown.
func NewSubscription(factory Factory, onBatch func([]Change)) *Subscription {
	s := &Subscription{
		positions: make(map[string]int),
		bindings:  make(map[string]*Binding),
		onBatch:   onBatch,
	}
	s.observer = factory(s.handleEntries)
	return s
}

// Observe starts observing el as the element rendering logical position pos.
// The returned Binding must be released when the item is dematerialized or
// rebound to a different element.
func (s *Subscription) Observe(el Element, pos int) *Binding {
	if s.closed {
		return &Binding{released: true, el: el}
	}
	s.positions[el.ID()] = pos
	b := &Binding{sub: s, el: el}
	s.bindings[el.ID()] = b
	s.observer.Observe(el)
	return b
}

// SetPosition retags a still-observed element whose logical position moved,
// the virtualization-reuse-by-key case where the element instance survives a
// re-render at a different index.
func (s *Subscription) SetPosition(el Element, pos int) {
	if _, ok := s.positions[el.ID()]; ok {
		s.positions[el.ID()] = pos
	}
}

// Close releases every live binding and disconnects the platform observer.
// Safe to call more than once.
func (s *Subscription) Close() {
	if s.closed {
		return
	}
	for _, b := range s.bindings {
		b.Release()
	}
	s.observer.Disconnect()
	s.closed = true
}

func (s *Subscription) handleEntries(entries []Entry) {
	if s.closed {
		return
	}
	changes := make([]Change, 0, len(entries))
	for _, entry := range entries {
		pos, ok := s.positions[entry.Target.ID()]
		if !ok {
			continue
		}
		changes = append(changes, Change{Position: pos, Height: entry.Height})
	}
	if len(changes) > 0 {
		s.onBatch(changes)
	}
}

func (s *Subscription) release(b *Binding) {
	delete(s.positions, b.el.ID())
	delete(s.bindings, b.el.ID())
	s.observer.Unobserve(b.el)
}

// Binding is the live association between one observed element and the
// subscription. Release is idempotent; the platform un-observe runs exactly
// once.
type Binding struct {
	sub      *Subscription
	el       Element
	released bool
}

func (b *Binding) Element() Element {
	return b.el
}

func (b *Binding) Release() {
	if b.released {
		return
	}
	b.released = true
	b.sub.release(b)
}
