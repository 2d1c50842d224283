package sampler

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg fires when a sampling window elapses. The ID ties it to the arm
// that scheduled it so that ticks from a previous arm or from after Stop are
// ignored.
type TickMsg struct {
	ID int
}

// Sampler rate-limits raw scroll notifications with a leading-edge throttle:
// the first raw notification arms a single timer and captures its payload;
// raw notifications arriving while armed are dropped outright, not queued;
// when the timer fires the originally captured payload is emitted downstream.
//
// Emitting the first payload rather than the latest means one sampling cycle
// can compute the window from a slightly stale scroll position. The next
// cycle corrects it, and in exchange the expensive recomputation runs at a
// bounded rate.
type Sampler struct {
	delay    time.Duration
	id       int
	armed    bool
	captured int
	stopped  bool
}

func New(delay time.Duration) Sampler {
	return Sampler{delay: delay}
}

// Notify records a raw scroll notification. It returns the command that arms
// the sampling timer, or nil if a timer is already pending (the notification
// is dropped) or the sampler is stopped.
func (s *Sampler) Notify(offset int) tea.Cmd {
	if s.stopped || s.armed {
		return nil
	}
	s.armed = true
	s.captured = offset
	s.id++
	id := s.id
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

// Sample consumes a tick, returning the captured payload and true if the tick
// belongs to the pending sampling window. Stale ticks return false.
func (s *Sampler) Sample(msg TickMsg) (int, bool) {
	if s.stopped || !s.armed || msg.ID != s.id {
		return 0, false
	}
	s.armed = false
	return s.captured, true
}

// Stop permanently disables the sampler. A timer already in flight becomes a
// no-op: its tick no longer matches and Sample rejects it.
func (s *Sampler) Stop() {
	s.stopped = true
	s.armed = false
	s.id++
}
