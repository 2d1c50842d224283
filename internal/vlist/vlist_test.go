package vlist

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/WorldSEnder/virtlist/internal/message"
	"github.com/WorldSEnder/virtlist/internal/observe"
	"github.com/WorldSEnder/virtlist/internal/sampler"
)

type fakeElement struct {
	id string
}

func (e fakeElement) ID() string { return e.id }

type fakeObserver struct {
	onChange       func([]observe.Entry)
	observeCalls   map[string]int
	unobserveCalls map[string]int
	disconnects    int
}

func newFakeObserver() (*fakeObserver, observe.Factory) {
	o := &fakeObserver{
		observeCalls:   make(map[string]int),
		unobserveCalls: make(map[string]int),
	}
	factory := func(onChange func([]observe.Entry)) observe.Observer {
		o.onChange = onChange
		return o
	}
	return o, factory
}

func (o *fakeObserver) Observe(el observe.Element)   { o.observeCalls[el.ID()]++ }
func (o *fakeObserver) Unobserve(el observe.Element) { o.unobserveCalls[el.ID()]++ }
func (o *fakeObserver) Disconnect()                  { o.disconnects++ }

type fakeHost struct {
	clientHeight int
}

func (h fakeHost) ClientHeight() int { return h.clientHeight }

func testProps(itemCount int) Props[string] {
	return Props[string]{
		ItemCount:   itemCount,
		HeightPrior: 30,
		Items:       NewItemGenerator(func(idx int) string { return "item" }),
	}
}

// drain runs commands and feeds resulting messages back into the model until
// the model goes quiet, the way the event loop would.
func drain(t *testing.T, m *Model[string], cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				drain(t, m, c)
			}
			return
		}
		cmd = m.Update(msg)
	}
}

func newMountedList(t *testing.T, itemCount, viewportExtent int) (*Model[string], *fakeObserver) {
	t.Helper()
	obs, factory := newFakeObserver()
	m := New(testProps(itemCount), factory, time.Millisecond)
	drain(t, m, m.Mount(fakeHost{clientHeight: viewportExtent}))
	return m, obs
}

func TestModel_MountComputesInitialWindow(t *testing.T) {
	m, _ := newMountedList(t, 100, 300)

	win := m.Window()
	if win.First != 0 || win.HiddenBefore != 0 {
		t.Errorf("expected window at top, got %+v", win)
	}
	if win.PastLast != 15 {
		t.Errorf("expected 10 viewport items + 5 overscan, got PastLast %d", win.PastLast)
	}
	if want := 85.0 * 30.0; win.HiddenAfter != want {
		t.Errorf("expected HiddenAfter %f, got %f", want, win.HiddenAfter)
	}
}

func TestModel_MountWithoutHostPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Mount(nil) to panic")
		}
	}()
	_, factory := newFakeObserver()
	m := New(testProps(10), factory, time.Millisecond)
	m.Mount(nil)
}

func TestModel_ScrollToBottom(t *testing.T) {
	m, _ := newMountedList(t, 100, 300)

	drain(t, m, m.Update(message.ScrollMsg{Offset: 3000}))

	win := m.Window()
	if win.PastLast != 100 || win.HiddenAfter != 0 {
		t.Errorf("expected window to reach the end, got %+v", win)
	}
	if win.First != 94 {
		t.Errorf("expected First 94, got %d", win.First)
	}
	if want := 94.0 * 30.0; win.HiddenBefore != want {
		t.Errorf("expected HiddenBefore %f, got %f", want, win.HiddenBefore)
	}
}

func TestModel_UnchangedScrollOffsetDoesNotRecompute(t *testing.T) {
	m, _ := newMountedList(t, 100, 300)

	cmd := m.Update(message.ScrollMsg{Offset: 0})
	if cmd == nil {
		t.Fatal("expected the sampler to arm")
	}
	tickMsg := cmd().(sampler.TickMsg)
	if recomputeCmd := m.Update(tickMsg); recomputeCmd != nil {
		t.Error("expected no recompute when the sampled offset equals the current one")
	}
}

func TestModel_RawScrollBurstDropped(t *testing.T) {
	m, _ := newMountedList(t, 100, 300)

	first := m.Update(message.ScrollMsg{Offset: 120})
	if first == nil {
		t.Fatal("expected the first raw scroll to arm the sampler")
	}
	for i := 0; i < 10; i++ {
		if cmd := m.Update(message.ScrollMsg{Offset: 500 + i}); cmd != nil {
			t.Fatal("expected raw scrolls while armed to be dropped")
		}
	}
	drain(t, m, first)
	if m.ScrollOffset() != 120 {
		t.Errorf("expected the first burst payload 120, got %d", m.ScrollOffset())
	}
}

func TestModel_SetPropsPreservesMeasurements(t *testing.T) {
	m, obs := newMountedList(t, 10, 300)

	// measure item 3
	el := fakeElement{id: "el3"}
	m.BindItem(3, el)
	obs.onChange([]observe.Entry{{Target: el, Height: 55}})
	drain(t, m, m.FlushResizes())

	drain(t, m, m.SetProps(Props[string]{
		ItemCount:   20,
		HeightPrior: 30,
		Items:       m.Props().Items,
	}))

	heights := m.sizes.Heights()
	if len(heights) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(heights))
	}
	if heights[3] != 55 {
		t.Errorf("expected measured height at index 3 to survive growth, got %f", heights[3])
	}
	for i := 10; i < 20; i++ {
		if heights[i] != 30 {
			t.Errorf("expected prior at new index %d, got %f", i, heights[i])
		}
	}
}

func TestModel_StaleResizeAfterShrinkIgnored(t *testing.T) {
	m, obs := newMountedList(t, 10, 300)

	el := fakeElement{id: "el8"}
	m.BindItem(8, el)
	drain(t, m, m.SetProps(Props[string]{
		ItemCount:   5,
		HeightPrior: 30,
		Items:       m.Props().Items,
	}))

	// the platform had already measured position 8 before the shrink
	obs.onChange([]observe.Entry{{Target: el, Height: 99}})
	drain(t, m, m.FlushResizes())

	for i, h := range m.sizes.Heights() {
		if h != 30 {
			t.Errorf("entry %d mutated by a stale resize notification: %f", i, h)
		}
	}
}

func TestModel_ResizeShiftsWindow(t *testing.T) {
	m, obs := newMountedList(t, 100, 300)

	// shrink the first ten items so more fit the viewport
	var entries []observe.Entry
	for i := 0; i < 10; i++ {
		el := fakeElement{id: string(rune('a' + i))}
		m.BindItem(i, el)
		entries = append(entries, observe.Entry{Target: el, Height: 10})
	}
	before := m.Window()
	obs.onChange(entries)
	drain(t, m, m.FlushResizes())

	after := m.Window()
	if after.PastLast <= before.PastLast {
		t.Errorf("expected window to extend after items shrank: before %+v after %+v", before, after)
	}
}

func TestModel_BindItemRebindsOnIdentityChange(t *testing.T) {
	m, obs := newMountedList(t, 10, 300)

	elA := fakeElement{id: "a"}
	elB := fakeElement{id: "b"}

	m.BindItem(2, elA)
	m.BindItem(2, elA) // same element: no rebind
	if obs.observeCalls["a"] != 1 {
		t.Errorf("expected one observe for repeated binds of one element, got %d", obs.observeCalls["a"])
	}

	m.BindItem(2, elB) // different element at the same position
	if obs.unobserveCalls["a"] != 1 {
		t.Errorf("expected the old element released on rebind, got %d", obs.unobserveCalls["a"])
	}
	if obs.observeCalls["b"] != 1 {
		t.Errorf("expected the new element observed, got %d", obs.observeCalls["b"])
	}
}

func TestModel_BindItemMovesReusedElement(t *testing.T) {
	m, obs := newMountedList(t, 10, 300)

	elA := fakeElement{id: "a"}
	elB := fakeElement{id: "b"}

	m.BindItem(2, elA)
	m.BindItem(3, elA) // same element instance reused one index down
	m.BindItem(2, elB)

	if obs.unobserveCalls["a"] != 0 {
		t.Errorf("expected the reused element to stay observed, got %d unobserves", obs.unobserveCalls["a"])
	}
	if obs.observeCalls["a"] != 1 {
		t.Errorf("expected one observe for the reused element, got %d", obs.observeCalls["a"])
	}

	// a measurement arriving after the move lands at the new index
	obs.onChange([]observe.Entry{{Target: elA, Height: 77}})
	drain(t, m, m.FlushResizes())

	heights := m.sizes.Heights()
	if heights[3] != 77 {
		t.Errorf("expected the moved element's measurement at index 3, got %f", heights[3])
	}
	if heights[2] == 77 {
		t.Error("expected no measurement bleed into the vacated index")
	}
}

func TestModel_DematerializedItemsReleased(t *testing.T) {
	m, obs := newMountedList(t, 100, 300)

	el := fakeElement{id: "top"}
	m.BindItem(0, el)

	// scroll far enough that item 0 leaves the materialized window
	drain(t, m, m.Update(message.ScrollMsg{Offset: 1500}))

	if obs.unobserveCalls["top"] != 1 {
		t.Errorf("expected dematerialized item's binding released, got %d", obs.unobserveCalls["top"])
	}
}

func TestModel_PlanMaterializesWindow(t *testing.T) {
	obs, factory := newFakeObserver()
	_ = obs
	m := New(Props[string]{
		ItemCount:   100,
		HeightPrior: 30,
		Items:       NewItemGenerator(func(idx int) string { return "content" }),
	}, factory, time.Millisecond)
	drain(t, m, m.Mount(fakeHost{clientHeight: 300}))

	plan := m.Plan()
	if plan.HiddenBefore != 0 {
		t.Errorf("expected no leading spacer at top, got %f", plan.HiddenBefore)
	}
	if len(plan.Items) != 15 {
		t.Fatalf("expected 15 materialized items, got %d", len(plan.Items))
	}
	if plan.Items[0].Position != 0 || plan.Items[14].Position != 14 {
		t.Errorf("unexpected materialized range: %d..%d", plan.Items[0].Position, plan.Items[14].Position)
	}
	if plan.Items[0].Content != "content" {
		t.Errorf("unexpected content: %q", plan.Items[0].Content)
	}
	if want := 85.0 * 30.0; plan.HiddenAfter != want {
		t.Errorf("expected trailing spacer %f, got %f", want, plan.HiddenAfter)
	}
}

func TestModel_UnmountTearsDown(t *testing.T) {
	m, obs := newMountedList(t, 100, 300)

	m.BindItem(0, fakeElement{id: "a"})
	m.BindItem(1, fakeElement{id: "b"})

	pendingScroll := m.Update(message.ScrollMsg{Offset: 700})
	if pendingScroll == nil {
		t.Fatal("expected an armed sampler before unmount")
	}

	m.Unmount()
	if obs.unobserveCalls["a"] != 1 || obs.unobserveCalls["b"] != 1 {
		t.Errorf("expected all bindings released on unmount, got %v", obs.unobserveCalls)
	}
	if obs.disconnects != 1 {
		t.Errorf("expected observer disconnected on unmount, got %d", obs.disconnects)
	}

	// the in-flight sampling timer must be a no-op now
	tickMsg := pendingScroll()
	if cmd := m.Update(tickMsg); cmd != nil {
		t.Error("expected a tick after unmount to do nothing")
	}
	if m.ScrollOffset() != 0 {
		t.Errorf("expected scroll state untouched after unmount, got %d", m.ScrollOffset())
	}
	if cmd := m.Update(message.ScrollMsg{Offset: 10}); cmd != nil {
		t.Error("expected updates after unmount to be no-ops")
	}
}
