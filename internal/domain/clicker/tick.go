package clicker

import "time"

// AdvanceTime applies elapsed wall-clock time to every resource. A suspended
// host catches up with one large delta rather than replaying ticks. Negative
// deltas from clock skew are clamped to zero; there is no upper cap.
func AdvanceTime(s GameState, now time.Time) GameState {
	next := s.Clone()
	delta := now.Sub(s.LastUpdate).Seconds()
	if delta < 0 {
		delta = 0
	}
	for id := range resourceDefs {
		rate := CalculatePPS(next, id)
		rs := next.Resources[id]
		rs.PerSecond = rate
		rs.Amount += rate * delta
		next.Resources[id] = rs
	}
	next.LastUpdate = now
	return next
}
