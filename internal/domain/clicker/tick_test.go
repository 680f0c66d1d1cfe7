package clicker

import (
	"math"
	"testing"
	"time"
)

func TestAdvanceTime_AccruesRateTimesDelta(t *testing.T) {
	s := NewGameState(testNow)
	gs := s.Generators["timeAnchor"]
	gs.Quantity = 3
	s.Generators["timeAnchor"] = gs

	next := AdvanceTime(s, testNow.Add(10*time.Second))

	// 3 anchors x 1 pps x chronomancer 1.1, over 10 seconds.
	want := 3.0 * 1.1 * 10
	got := next.Resources[ResourcePoints].Amount
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("points = %v, want %v", got, want)
	}
	if math.Abs(next.Resources[ResourcePoints].PerSecond-3.3) > 1e-9 {
		t.Fatalf("per_second = %v, want 3.3", next.Resources[ResourcePoints].PerSecond)
	}
	if !next.LastUpdate.Equal(testNow.Add(10 * time.Second)) {
		t.Fatalf("LastUpdate not advanced")
	}
}

func TestAdvanceTime_NegativeDeltaClampsToZero(t *testing.T) {
	s := stateWith(42)
	gs := s.Generators["timeAnchor"]
	gs.Quantity = 5
	s.Generators["timeAnchor"] = gs

	next := AdvanceTime(s, testNow.Add(-time.Hour))
	if got := next.Resources[ResourcePoints].Amount; got != 42 {
		t.Fatalf("amount changed on negative delta: %v", got)
	}
}

func TestAdvanceTime_LargeOfflineDeltaIsUncapped(t *testing.T) {
	s := NewGameState(testNow)
	gs := s.Generators["timeAnchor"]
	gs.Quantity = 1
	s.Generators["timeAnchor"] = gs

	next := AdvanceTime(s, testNow.Add(24*time.Hour))
	want := 1.1 * 86400
	if got := next.Resources[ResourcePoints].Amount; math.Abs(got-want) > 1e-6 {
		t.Fatalf("points after a day = %v, want %v", got, want)
	}
}

func TestAdvanceTime_DoesNotMutateInput(t *testing.T) {
	s := NewGameState(testNow)
	gs := s.Generators["timeAnchor"]
	gs.Quantity = 1
	s.Generators["timeAnchor"] = gs

	_ = AdvanceTime(s, testNow.Add(time.Minute))
	if s.Resources[ResourcePoints].Amount != 0 {
		t.Fatalf("input snapshot mutated")
	}
	if !s.LastUpdate.Equal(testNow) {
		t.Fatalf("input LastUpdate mutated")
	}
}
