package clicker

import "time"

// MergeWithDefaults shape-completes a loaded snapshot against the current
// default structure: loaded leaf values win, but the result always has
// exactly the shape of a fresh snapshot built from today's content tables.
// Ids the tables no longer know are dropped; fields a newer version added
// are backfilled. LastUpdate is always reset to now so the first tick after
// a load never sees a stale, uncapped delta.
func MergeWithDefaults(loaded GameState, now time.Time) GameState {
	next := NewGameState(now)

	for id := range next.Resources {
		if rs, ok := loaded.Resources[id]; ok {
			if rs.Amount < 0 {
				rs.Amount = 0
			}
			next.Resources[id] = rs
		}
	}
	for id := range next.Generators {
		if gs, ok := loaded.Generators[id]; ok && gs.Quantity > 0 {
			next.Generators[id] = gs
		}
		if n, ok := loaded.GeneratorTotalPurchases[id]; ok && n > 0 {
			next.GeneratorTotalPurchases[id] = n
		}
	}

	for _, entry := range loaded.Inventory {
		if _, ok := itemDefs[entry.ItemID]; !ok {
			continue
		}
		if entry.Quantity > 0 {
			next.AddItem(entry.ItemID, entry.Quantity)
		}
	}
	for _, slot := range EquipmentSlots {
		itemID := loaded.Equipped[slot]
		if itemID == "" {
			continue
		}
		if item, ok := itemDefs[itemID]; ok && item.Equippable {
			next.Equipped[slot] = itemID
		}
	}

	if _, ok := characterDefs[loaded.CurrentCharacterID]; ok {
		next.CurrentCharacterID = loaded.CurrentCharacterID
	}
	for _, id := range loaded.UnlockedAchievements {
		if _, ok := achievementDefs[id]; ok && !next.achievementUnlocked(id) {
			next.UnlockedAchievements = append(next.UnlockedAchievements, id)
		}
	}
	for stat, v := range loaded.PermanentBoosts {
		if multiplicativeBoost(stat) && v < 1 {
			v = 1
		}
		next.PermanentBoosts[stat] = v
	}

	if loaded.Settings.CurrentMultiplier.Valid() {
		next.Settings.CurrentMultiplier = loaded.Settings.CurrentMultiplier
	}
	if loaded.Settings.GameSpeed > 0 {
		next.Settings.GameSpeed = loaded.Settings.GameSpeed
	}
	if loaded.TotalClicks > 0 {
		next.TotalClicks = loaded.TotalClicks
	}

	next.LastUpdate = now
	return next
}
