package vlist

import (
	"github.com/WorldSEnder/virtlist/internal/observe"
)

// itemWrapper tracks the observation state of one materialized item: Unbound,
// or Bound to a specific element identity. Rebinds are decided by element
// identity, never by position.
type itemWrapper struct {
	binding *observe.Binding
}

// BindItem is called by the host each time the item at pos has been rendered
// into el. An element already bound at a different position is retagged and
// keeps its measurements; a different element at a bound position releases the
// old binding first; an unbound position starts a new observation.
func (m *Model[C]) BindItem(pos int, el observe.Element) {
	if !m.mounted || el == nil {
		return
	}
	if oldPos, ok := m.byElement[el.ID()]; ok && oldPos != pos {
		m.moveBinding(el, oldPos, pos)
		return
	}
	w := m.wrappers[pos]
	if w == nil {
		w = &itemWrapper{}
		m.wrappers[pos] = w
	}
	if w.binding != nil && w.binding.Element().ID() != el.ID() {
		delete(m.byElement, w.binding.Element().ID())
		w.binding.Release()
		w.binding = nil
	}
	if w.binding == nil {
		w.binding = m.sub.Observe(el, pos)
		m.byElement[el.ID()] = pos
	}
}

// moveBinding carries el's live binding from oldPos to pos, the
// reuse-by-key case where one element instance survives a re-render at a
// different index. Whatever was bound at pos is released.
func (m *Model[C]) moveBinding(el observe.Element, oldPos, pos int) {
	moved := m.wrappers[oldPos]
	delete(m.wrappers, oldPos)
	if w := m.wrappers[pos]; w != nil && w.binding != nil {
		delete(m.byElement, w.binding.Element().ID())
		w.binding.Release()
	}
	if moved == nil {
		moved = &itemWrapper{}
	}
	m.wrappers[pos] = moved
	m.byElement[el.ID()] = pos
	m.sub.SetPosition(el, pos)
}

// dropWrappersOutsideWindow destroys the bindings of items that fell out of
// the materialized range.
func (m *Model[C]) dropWrappersOutsideWindow() {
	for pos, w := range m.wrappers {
		if pos >= m.win.First && pos < m.win.PastLast {
			continue
		}
		if w.binding != nil {
			delete(m.byElement, w.binding.Element().ID())
			w.binding.Release()
		}
		delete(m.wrappers, pos)
	}
}
