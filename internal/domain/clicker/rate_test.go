package clicker

import (
	"math"
	"testing"
)

func TestCalculatePPS_FoldsEquipmentInSlotOrder(t *testing.T) {
	s := NewGameState(testNow)
	gs := s.Generators["timeAnchor"]
	gs.Quantity = 10
	s.Generators["timeAnchor"] = gs
	s.Equipped[SlotHead] = "leatherHelmet"   // +1 pps
	s.Equipped[SlotNecklace] = "focusAmulet" // x1.03

	// Head folds before Necklace, so the flat bonus is inside the multiplier.
	want := (10*1.1 + 1) * 1.03
	if got := CalculatePPS(s, ResourcePoints); math.Abs(got-want) > 1e-9 {
		t.Fatalf("pps = %v, want %v", got, want)
	}
}

func TestCalculatePPS_UnknownResourceIsZero(t *testing.T) {
	if got := CalculatePPS(NewGameState(testNow), "antimatter"); got != 0 {
		t.Fatalf("expected 0 pps for unknown resource, got %v", got)
	}
}

func TestClickPower_ItemBoostThenMultiplier(t *testing.T) {
	s := NewGameState(testNow)
	s.Equipped[SlotWeapon] = "copperSword" // +2 then x1.05

	want := (1.0 + 2) * 1.05
	if got := ClickPower(s); math.Abs(got-want) > 1e-9 {
		t.Fatalf("click power = %v, want %v", got, want)
	}
}

func TestClickDropChance_CapsAtTenPercent(t *testing.T) {
	s := NewGameState(testNow)
	s.PermanentBoosts[BoostGlobalDropRateMultiplier] = 1000

	if got := ClickDropChance(s, 0.005); got != 0.10 {
		t.Fatalf("chance = %v, want cap 0.10", got)
	}
}

func TestClickDropChance_GeneratorBonusCapped(t *testing.T) {
	s := NewGameState(testNow)
	gs := s.Generators["timeAnchor"]
	gs.Quantity = 1_000_000
	s.Generators["timeAnchor"] = gs

	// chronomancer 1.05 on the base, plus the generator bonus capped at 0.02.
	want := 0.005*1.05 + 0.02
	if got := ClickDropChance(s, 0.005); math.Abs(got-want) > 1e-9 {
		t.Fatalf("chance = %v, want %v", got, want)
	}
}

func TestClickDropChance_ZeroBaseStaysNonNegative(t *testing.T) {
	if got := ClickDropChance(NewGameState(testNow), 0); got < 0 {
		t.Fatalf("chance = %v, want >= 0", got)
	}
}
