package clicker

import (
	"fmt"
	"time"
)

// SlotCompatible reports whether an item may occupy a slot: direct slot
// match, rings into either ring slot, or the type/group fallback mapping.
func SlotCompatible(item Item, slot SlotID) bool {
	if !item.Equippable {
		return false
	}
	if item.Slot == slot {
		return true
	}
	if item.Group == GroupRing && (slot == SlotRing1 || slot == SlotRing2) {
		return true
	}
	switch {
	case item.Type == ItemTypeArmour && item.Group == GroupHelmet:
		return slot == SlotHead
	case item.Type == ItemTypeArmour && item.Group == GroupChest:
		return slot == SlotBody
	case item.Type == ItemTypeArmour && item.Group == GroupLeggings:
		return slot == SlotLegs
	case item.Type == ItemTypeArmour && item.Group == GroupBoots:
		return slot == SlotFeet
	case item.Type == ItemTypeWeapon:
		return slot == SlotWeapon
	case item.Type == ItemTypeAccessory && item.Group == GroupNecklace:
		return slot == SlotNecklace
	}
	return false
}

// EquipItem moves one owned unit from the inventory into the slot, returning
// any previously equipped item to the inventory. Ownership is checked before
// the slot is touched.
func EquipItem(s GameState, itemID string, slot SlotID, now time.Time) OpResult {
	item, ok := itemDefs[itemID]
	if !ok || !item.Equippable || !SlotCompatible(item, slot) {
		return rejected(s, "Cannot Equip", "Item cannot be equipped in this slot.")
	}
	if s.InventoryCount(itemID) < 1 {
		return rejected(s, "Cannot Equip", fmt.Sprintf("You do not own a %s.", item.Name))
	}

	next := s.Clone()
	next.RemoveItem(itemID, 1)
	if previous := next.Equipped[slot]; previous != "" {
		next.AddItem(previous, 1)
	}
	next.Equipped[slot] = itemID

	return OpResult{
		State: next,
		Notifications: []Notification{{
			Title:       "Item Equipped",
			Description: fmt.Sprintf("%s equipped.", item.Name),
		}},
		Events: []Event{{
			Type:       "item_equipped",
			OccurredAt: now,
			Payload:    map[string]any{"item": itemID, "slot": string(slot)},
		}},
		Code: ResultOK,
	}
}

// UnequipItem clears the slot and returns the item to the inventory. An
// empty slot is a silent no-op.
func UnequipItem(s GameState, slot SlotID, now time.Time) OpResult {
	itemID := s.Equipped[slot]
	if itemID == "" {
		return OpResult{State: s, Code: ResultOK}
	}

	next := s.Clone()
	next.Equipped[slot] = ""
	next.AddItem(itemID, 1)

	name := itemID
	if item, ok := itemDefs[itemID]; ok {
		name = item.Name
	}
	return OpResult{
		State: next,
		Notifications: []Notification{{
			Title:       "Item Unequipped",
			Description: fmt.Sprintf("%s unequipped.", name),
		}},
		Events: []Event{{
			Type:       "item_unequipped",
			OccurredAt: now,
			Payload:    map[string]any{"item": itemID, "slot": string(slot)},
		}},
		Code: ResultOK,
	}
}
