package clicker

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestResolveBulkBuy_NeverOverspends(t *testing.T) {
	def := generatorDefs["timeAnchor"]
	rapid.Check(t, func(t *rapid.T) {
		owned := rapid.Int64Range(0, 200).Draw(t, "owned")
		balance := rapid.Float64Range(0, 1e9).Draw(t, "balance")
		idx := rapid.IntRange(0, len(AllowedMultipliers)-1).Draw(t, "multiplier")
		mult := AllowedMultipliers[idx]

		num, total := resolveBulkBuy(def, owned, balance, mult, 10_000)
		if total > balance+1e-6 {
			t.Fatalf("overspent: total=%v balance=%v", total, balance)
		}
		if num < 0 {
			t.Fatalf("negative purchase count")
		}
		if mult != MultiplierMax && num > int64(mult) {
			t.Fatalf("bought %d with multiplier %d", num, mult)
		}

		// The simulated total must equal the unit-by-unit sum exactly.
		want := 0.0
		for i := int64(0); i < num; i++ {
			want += unitCost(def, owned+i)
		}
		if math.Abs(total-want) > 1e-6 {
			t.Fatalf("total=%v differs from unit sum %v", total, want)
		}
	})
}

func TestMergeWithDefaults_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewGameState(testNow)
		rs := s.Resources[ResourcePoints]
		rs.Amount = rapid.Float64Range(0, 1e12).Draw(t, "points")
		s.Resources[ResourcePoints] = rs
		gs := s.Generators["timeAnchor"]
		gs.Quantity = rapid.Int64Range(0, 1e6).Draw(t, "generators")
		s.Generators["timeAnchor"] = gs
		s.TotalClicks = rapid.Int64Range(0, 1e6).Draw(t, "clicks")

		once := MergeWithDefaults(s, testNow)
		twice := MergeWithDefaults(once, testNow)
		if once.Resources[ResourcePoints].Amount != twice.Resources[ResourcePoints].Amount {
			t.Fatalf("merge not idempotent on resources")
		}
		if once.Generators["timeAnchor"].Quantity != twice.Generators["timeAnchor"].Quantity {
			t.Fatalf("merge not idempotent on generators")
		}
		if once.TotalClicks != twice.TotalClicks {
			t.Fatalf("merge not idempotent on click count")
		}
	})
}
