// Package vlist implements the list controller: it orchestrates the size
// table, scroll sampler, resize subscription and window calculator across the
// component lifecycle and exposes the render-time contract as a Plan.
package vlist

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/WorldSEnder/virtlist/internal/dev"
	"github.com/WorldSEnder/virtlist/internal/message"
	"github.com/WorldSEnder/virtlist/internal/observe"
	"github.com/WorldSEnder/virtlist/internal/sampler"
	"github.com/WorldSEnder/virtlist/internal/sizetable"
	"github.com/WorldSEnder/virtlist/internal/window"
)

// ItemGenerator produces the renderable content for one logical index. It is
// only invoked for materialized items. Two generators are the same iff they
// are the same instance; wrap the function once and reuse the pointer so prop
// comparisons don't see a fresh generator on every render.
type ItemGenerator[C any] struct {
	gen func(idx int) C
}

func NewItemGenerator[C any](gen func(idx int) C) *ItemGenerator[C] {
	return &ItemGenerator[C]{gen: gen}
}

func (g *ItemGenerator[C]) Emit(idx int) C {
	return g.gen(idx)
}

// Props is the host-facing configuration of a list.
type Props[C any] struct {
	// ItemCount is the total number of items, materialized or not
	ItemCount int
	// HeightPrior is the assumed height for items that have not been measured
	HeightPrior float64
	// Items generates content for materialized items, compared by identity
	Items *ItemGenerator[C]
}

// Host is the mounted scroll container. The controller reads its client
// extent once at mount and again on host resize.
type Host interface {
	ClientHeight() int
}

// Model is the list controller. Scroll and resize notifications, prop changes
// and mount/unmount all funnel into it on the event loop; it owns the size
// table and is its only mutator.
type Model[C any] struct {
	props    Props[C]
	sizes    *sizetable.Table
	sub      *observe.Subscription
	sampler  sampler.Sampler
	wrappers map[int]*itemWrapper

	// byElement records the position each element identity is currently bound
	// at, so a reused element is retagged instead of re-observed
	byElement map[string]int

	scrollOffset   int
	viewportExtent int
	win            window.Window

	// pending buffers resolved resize changes between the subscription
	// callback and the Update that applies them; single-threaded, so a
	// plain slice suffices
	pending []observe.Change

	mounted bool
}

// New creates an unmounted list. factory hands over the platform's
// resize-observation capability; delay is the scroll sampling window.
func New[C any](props Props[C], factory observe.Factory, delay time.Duration) *Model[C] {
	m := &Model[C]{
		props:     props,
		sizes:     sizetable.New(),
		sampler:   sampler.New(delay),
		wrappers:  make(map[int]*itemWrapper),
		byElement: make(map[string]int),
	}
	m.sub = observe.NewSubscription(factory, m.enqueueChanges)
	m.sizes.Resize(props.ItemCount, props.HeightPrior)
	return m
}

// Mount records the host's viewport extent and triggers the first window
// computation. A nil host is a framework-integration bug, not a recoverable
// runtime condition.
func (m *Model[C]) Mount(host Host) tea.Cmd {
	if host == nil {
		panic("vlist: Mount called without a host element")
	}
	m.mounted = true
	m.viewportExtent = max(0, host.ClientHeight())
	return requestRecompute
}

// SetViewportExtent updates the host's client extent, e.g. after a terminal
// resize, and triggers a recompute.
func (m *Model[C]) SetViewportExtent(extent int) tea.Cmd {
	if !m.mounted {
		return nil
	}
	m.viewportExtent = max(0, extent)
	return requestRecompute
}

// SetProps applies a prop change. The recompute is unconditional: item
// identity or count may have shifted the valid window even if scroll state
// did not change.
func (m *Model[C]) SetProps(props Props[C]) tea.Cmd {
	if !m.mounted {
		m.props = props
		m.sizes.Resize(props.ItemCount, props.HeightPrior)
		return nil
	}
	m.props = props
	m.sizes.Resize(props.ItemCount, props.HeightPrior)
	return requestRecompute
}

func (m *Model[C]) Props() Props[C] {
	return m.props
}

// Update processes scroll, sampling and recompute messages.
func (m *Model[C]) Update(msg tea.Msg) tea.Cmd {
	if !m.mounted {
		return nil
	}
	dev.DebugMsg("Vlist", msg)

	switch msg := msg.(type) {
	case message.ScrollMsg:
		return m.sampler.Notify(msg.Offset)

	case sampler.TickMsg:
		offset, ok := m.sampler.Sample(msg)
		if !ok {
			return nil
		}
		offset = max(0, offset)
		if offset == m.scrollOffset {
			return nil
		}
		m.scrollOffset = offset
		return requestRecompute

	case message.RecomputeMsg:
		m.recompute()
		return nil
	}
	return nil
}

// FlushResizes applies buffered resize changes to the size table and triggers
// a recompute. A height change always potentially shifts the window, so the
// recompute is unconditional. Returns nil when no changes were pending.
func (m *Model[C]) FlushResizes() tea.Cmd {
	if !m.mounted || len(m.pending) == 0 {
		m.pending = nil
		return nil
	}
	for _, change := range m.pending {
		// out-of-range positions are dropped inside Set
		m.sizes.Set(change.Position, change.Height)
	}
	m.pending = nil
	return requestRecompute
}

// Unmount tears the list down: every outstanding binding is released, the
// platform observer disconnected, and any in-flight sampling timer neutered.
// Subsequent updates are no-ops.
func (m *Model[C]) Unmount() {
	if !m.mounted {
		return
	}
	m.sub.Close()
	m.sampler.Stop()
	m.wrappers = make(map[int]*itemWrapper)
	m.byElement = make(map[string]int)
	m.pending = nil
	m.mounted = false
}

func (m *Model[C]) Mounted() bool {
	return m.mounted
}

// ScrollOffset returns the current sampled scroll offset.
func (m *Model[C]) ScrollOffset() int {
	return m.scrollOffset
}

// Window returns the window produced by the latest recompute.
func (m *Model[C]) Window() window.Window {
	return m.win
}

// TotalHeight returns the total scrollable extent in height units.
func (m *Model[C]) TotalHeight() float64 {
	total := 0.0
	for _, h := range m.sizes.Heights() {
		total += h
	}
	return total
}

func (m *Model[C]) recompute() {
	m.win = window.Calculate(m.sizes.Heights(), m.scrollOffset, m.viewportExtent)
	m.dropWrappersOutsideWindow()
}

func (m *Model[C]) enqueueChanges(changes []observe.Change) {
	m.pending = append(m.pending, changes...)
}

// requestRecompute is the indirection between state mutation and window
// recomputation: mutations return this command, and the recompute happens
// when the message comes back around, after the mutation is fully applied.
func requestRecompute() tea.Msg {
	return message.RecomputeMsg{}
}
