package clicker

import (
	"fmt"
	"time"
)

// ConsumeItem applies the item's effect once per unit, threading each
// application's output into the next, then removes the consumed units.
func ConsumeItem(s GameState, itemID string, quantity int64, now time.Time) OpResult {
	if quantity <= 0 {
		quantity = 1
	}
	item, ok := itemDefs[itemID]
	if !ok || !item.Consumable {
		return rejected(s, "Cannot Consume", "Item not available or not consumable.")
	}
	if s.InventoryCount(itemID) < quantity {
		return rejected(s, "Cannot Consume",
			fmt.Sprintf("You need %d x %s.", quantity, item.Name))
	}

	next := s.Clone()
	if item.ConsumeEffect != nil {
		for i := int64(0); i < quantity; i++ {
			next = item.ConsumeEffect(next)
		}
	}
	next.RemoveItem(itemID, quantity)

	return OpResult{
		State: next,
		Notifications: []Notification{{
			Title:       "Item Consumed",
			Description: fmt.Sprintf("%d x %s consumed.", quantity, item.Name),
		}},
		Events: []Event{{
			Type:       "item_consumed",
			OccurredAt: now,
			Payload:    map[string]any{"item": itemID, "quantity": quantity},
		}},
		Code: ResultOK,
	}
}
