package clicker

import "testing"

func TestSwitchCharacter_UnequipsEverySlot(t *testing.T) {
	s := NewGameState(testNow)
	s.AddItem("woodenKnife", 1)
	s.AddItem("simpleRing", 1)
	res := EquipItem(s, "woodenKnife", SlotWeapon, testNow)
	res = EquipItem(res.State, "simpleRing", SlotRing1, testNow)

	res = SwitchCharacter(res.State, "archivist", testNow)
	if res.Code != ResultOK {
		t.Fatalf("expected OK, got %s", res.Code)
	}
	if res.State.CurrentCharacterID != "archivist" {
		t.Fatalf("character not switched")
	}
	for _, slot := range EquipmentSlots {
		if res.State.Equipped[slot] != "" {
			t.Fatalf("slot %s still occupied after switch", slot)
		}
	}
	if res.State.InventoryCount("woodenKnife") != 1 || res.State.InventoryCount("simpleRing") != 1 {
		t.Fatalf("items lost on character switch")
	}
}

func TestSwitchCharacter_UnknownRejected(t *testing.T) {
	res := SwitchCharacter(NewGameState(testNow), "necromancer", testNow)
	if res.Code != ResultRejected {
		t.Fatalf("expected REJECTED, got %s", res.Code)
	}
}

func TestSetMultiplier_AllowedValues(t *testing.T) {
	s := NewGameState(testNow)
	for _, m := range AllowedMultipliers {
		res := SetMultiplier(s, m)
		if res.Code != ResultOK {
			t.Fatalf("multiplier %s should be allowed", m)
		}
		if res.State.Settings.CurrentMultiplier != m {
			t.Fatalf("multiplier not applied")
		}
	}
}

func TestSetMultiplier_RejectsArbitraryValues(t *testing.T) {
	for _, m := range []Multiplier{0, -2, 3, 7, 999} {
		res := SetMultiplier(NewGameState(testNow), m)
		if res.Code != ResultRejected {
			t.Fatalf("multiplier %d should be rejected", m)
		}
	}
}
