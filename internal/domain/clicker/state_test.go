package clicker

import "testing"

func TestClone_IsDeep(t *testing.T) {
	s := NewGameState(testNow)
	s.AddItem("minorPpsPotion", 2)

	clone := s.Clone()
	rs := clone.Resources[ResourcePoints]
	rs.Amount = 999
	clone.Resources[ResourcePoints] = rs
	clone.Inventory[0].Quantity = 50
	clone.Equipped[SlotHead] = "leatherHelmet"
	clone.PermanentBoosts[BoostGlobalPPSMultiplier] = 2

	if s.Resources[ResourcePoints].Amount != 0 {
		t.Fatalf("resource map shared between clones")
	}
	if s.Inventory[0].Quantity != 2 {
		t.Fatalf("inventory shared between clones")
	}
	if s.Equipped[SlotHead] != "" {
		t.Fatalf("equipment map shared between clones")
	}
	if s.PermanentBoosts[BoostGlobalPPSMultiplier] != 1 {
		t.Fatalf("boost map shared between clones")
	}
}

func TestAddRemoveItem(t *testing.T) {
	s := NewGameState(testNow)
	s.AddItem("minorPpsPotion", 2)
	s.AddItem("minorPpsPotion", 1)
	if got := s.InventoryCount("minorPpsPotion"); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}

	if !s.RemoveItem("minorPpsPotion", 2) {
		t.Fatalf("remove failed")
	}
	if got := s.InventoryCount("minorPpsPotion"); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}

	if s.RemoveItem("minorPpsPotion", 5) {
		t.Fatalf("removing more than owned must fail")
	}

	if !s.RemoveItem("minorPpsPotion", 1) {
		t.Fatalf("remove failed")
	}
	for _, entry := range s.Inventory {
		if entry.ItemID == "minorPpsPotion" {
			t.Fatalf("zero-quantity entry must be dropped")
		}
	}
}

func TestBoost_UnsetMultiplicativeStatIsOne(t *testing.T) {
	s := GameState{}
	if got := s.Boost(BoostGlobalPPSMultiplier); got != 1 {
		t.Fatalf("unset multiplicative boost = %v, want 1", got)
	}
}
