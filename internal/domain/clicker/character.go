package clicker

import (
	"fmt"
	"time"
)

// SwitchCharacter selects a new active character and unequips every slot,
// returning each item to the inventory. The loadout is destroyed; no item is
// ever lost.
func SwitchCharacter(s GameState, characterID string, now time.Time) OpResult {
	ch, ok := characterDefs[characterID]
	if !ok {
		return rejected(s, "Invalid Character", fmt.Sprintf("Character %q does not exist.", characterID))
	}

	next := s.Clone()
	next.CurrentCharacterID = characterID
	for _, slot := range EquipmentSlots {
		if itemID := next.Equipped[slot]; itemID != "" {
			next.AddItem(itemID, 1)
			next.Equipped[slot] = ""
		}
	}

	return OpResult{
		State: next,
		Notifications: []Notification{{
			Title:       "Character Switched",
			Description: fmt.Sprintf("Now playing as %s.", ch.Name),
		}},
		Events: []Event{{
			Type:       "character_switched",
			OccurredAt: now,
			Payload:    map[string]any{"character": characterID},
		}},
		Code: ResultOK,
	}
}

// SetMultiplier updates the bulk-buy setting after validating it against the
// allowed values.
func SetMultiplier(s GameState, m Multiplier) OpResult {
	if !m.Valid() {
		return rejected(s, "Invalid Multiplier", fmt.Sprintf("Multiplier %s is not allowed.", m))
	}
	next := s.Clone()
	next.Settings.CurrentMultiplier = m
	return OpResult{State: next, Code: ResultOK}
}
