package clicker

import (
	"fmt"
	"math/rand"
	"time"
)

// PerformClick adds click power to the target resource and rolls the local
// loot-drop formula. An unknown resource id is a soft failure: the click
// count still advances and the caller gets a warning notification.
func PerformClick(s GameState, resourceID string, baseDropChance float64, now time.Time, rng *rand.Rand) OpResult {
	next := s.Clone()
	next.TotalClicks++

	res := OpResult{Code: ResultOK}
	power := ClickPower(next)
	if rs, ok := next.Resources[resourceID]; ok {
		rs.Amount += power
		next.Resources[resourceID] = rs
		res.Events = append(res.Events, Event{
			Type:       "clicked",
			OccurredAt: now,
			Payload:    map[string]any{"resource": resourceID, "power": power},
		})
	} else {
		res.Notifications = append(res.Notifications, Notification{
			Title:       "Unknown Resource",
			Description: fmt.Sprintf("Resource %q does not exist.", resourceID),
			Variant:     VariantDestructive,
		})
	}

	if rng.Float64() < ClickDropChance(next, baseDropChance) {
		pool := LootPool()
		if len(pool) > 0 {
			item := pool[rng.Intn(len(pool))]
			next.AddItem(item.ID, 1)
			res.Notifications = append(res.Notifications, Notification{
				Title:       "Loot Drop!",
				Description: fmt.Sprintf("Found: %s.", item.Name),
			})
			res.Events = append(res.Events, Event{
				Type:       "loot_dropped",
				OccurredAt: now,
				Payload:    map[string]any{"item": item.ID},
			})
		}
	}

	res.State = next
	return res
}
