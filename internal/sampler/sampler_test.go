package sampler

import (
	"testing"
	"time"
)

func tick(t *testing.T, s *Sampler, offset int) TickMsg {
	t.Helper()
	cmd := s.Notify(offset)
	if cmd == nil {
		t.Fatal("expected arming notification to return a command")
	}
	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatal("expected the armed command to produce a TickMsg")
	}
	return msg
}

func TestSampler_BurstEmitsFirstPayload(t *testing.T) {
	s := New(time.Millisecond)

	msg := tick(t, &s, 100)
	for i := 1; i < 100; i++ {
		if cmd := s.Notify(100 + i); cmd != nil {
			t.Fatalf("raw event %d while armed should be dropped, got a command", i)
		}
	}

	emitted := 0
	if payload, ok := s.Sample(msg); ok {
		emitted++
		if payload != 100 {
			t.Errorf("expected the first burst event's payload 100, got %d", payload)
		}
	}
	if emitted != 1 {
		t.Errorf("expected exactly one downstream emission, got %d", emitted)
	}

	// window elapsed, next raw event starts a new cycle
	if cmd := s.Notify(500); cmd == nil {
		t.Error("expected a new cycle to arm after the previous one fired")
	}
}

func TestSampler_StaleTickIgnored(t *testing.T) {
	s := New(time.Millisecond)
	msg := tick(t, &s, 10)
	if _, ok := s.Sample(msg); !ok {
		t.Fatal("expected the pending tick to sample")
	}
	// same tick again is stale
	if _, ok := s.Sample(msg); ok {
		t.Error("expected a consumed tick to be rejected")
	}
	// a tick from some earlier arm is stale too
	if _, ok := s.Sample(TickMsg{ID: 0}); ok {
		t.Error("expected a foreign tick to be rejected")
	}
}

func TestSampler_StopNeutersInFlightTimer(t *testing.T) {
	s := New(time.Millisecond)
	msg := tick(t, &s, 10)

	s.Stop()
	if _, ok := s.Sample(msg); ok {
		t.Error("expected a tick after Stop to be a no-op")
	}
	if cmd := s.Notify(20); cmd != nil {
		t.Error("expected notifications after Stop to be dropped")
	}
}
