package clicker

import (
	"sort"
	"time"
)

var achievementDefs = map[string]AchievementDef{
	"firstClick": {
		ID:          "firstClick",
		Name:        "The Journey Begins",
		Description: "You made your first click!",
		Condition:   func(s GameState) bool { return s.TotalClicks >= 1 },
		Reward:      AchievementReward{Resources: map[string]float64{ResourcePoints: 10}},
	},
	"firstGenerator": {
		ID:          "firstGenerator",
		Name:        "Resourceful",
		Description: "Purchase your first generator.",
		Condition: func(s GameState) bool {
			for _, gs := range s.Generators {
				if gs.Quantity > 0 {
					return true
				}
			}
			return false
		},
		Reward: AchievementReward{
			Resources: map[string]float64{ResourcePoints: 50},
			Items:     []ItemGrant{{ItemID: "minorPpsPotion", Quantity: 1}},
		},
	},
	"pointsMilestone1": {
		ID:          "pointsMilestone1",
		Name:        "Shard Collector",
		Description: "Accumulate 100 Chrono Shards.",
		Condition:   func(s GameState) bool { return s.Resources[ResourcePoints].Amount >= 100 },
		Reward: AchievementReward{
			Resources: map[string]float64{ResourcePoints: 100},
			Boosts:    map[string]float64{BoostGlobalPPSMultiplier: 0.01},
		},
	},
	"clickApprentice": {
		ID:          "clickApprentice",
		Name:        "Click Apprentice",
		Description: "Click one hundred times.",
		Condition:   func(s GameState) bool { return s.TotalClicks >= 100 },
		Reward: AchievementReward{
			Boosts: map[string]float64{BoostGlobalDropRateMultiplier: 0.02},
		},
	},
	"manaMilestone1": {
		ID:          "manaMilestone1",
		Name:        "First Droplets",
		Description: "Accumulate 50 Mana Orbs.",
		Condition:   func(s GameState) bool { return s.Resources[ResourceMana].Amount >= 50 },
		Reward: AchievementReward{
			Resources: map[string]float64{ResourceMana: 25},
			Boosts:    map[string]float64{BoostGlobalPPSMultiplier: 0.01},
		},
	},
	"artifactHunter": {
		ID:          "artifactHunter",
		Name:        "Artifact Hunter",
		Description: "Hold your first artifact.",
		Condition: func(s GameState) bool {
			for _, entry := range s.Inventory {
				if item, ok := itemDefs[entry.ItemID]; ok && item.Artifact {
					return true
				}
			}
			for _, itemID := range s.Equipped {
				if item, ok := itemDefs[itemID]; ok && item.Artifact {
					return true
				}
			}
			return false
		},
		Reward: AchievementReward{Resources: map[string]float64{ResourceGold: 10}},
	},
}

func LookupAchievement(id string) (AchievementDef, bool) {
	def, ok := achievementDefs[id]
	return def, ok
}

func (s GameState) achievementUnlocked(id string) bool {
	for _, unlocked := range s.UnlockedAchievements {
		if unlocked == id {
			return true
		}
	}
	return false
}

// EvaluateAchievements checks every locked achievement against the snapshot,
// accumulates the whole batch's rewards, and applies them in one update.
// Conditions are monotone, so re-running against an unchanged snapshot
// unlocks nothing further.
func EvaluateAchievements(s GameState, now time.Time) OpResult {
	ids := make([]string, 0, len(achievementDefs))
	for id := range achievementDefs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var unlocked []AchievementDef
	for _, id := range ids {
		def := achievementDefs[id]
		if s.achievementUnlocked(id) || !def.Condition(s) {
			continue
		}
		unlocked = append(unlocked, def)
	}
	if len(unlocked) == 0 {
		return OpResult{State: s, Code: ResultOK}
	}

	resourceGrants := map[string]float64{}
	itemGrants := map[string]int64{}
	boostDeltas := map[string]float64{}
	for _, def := range unlocked {
		for resID, amount := range def.Reward.Resources {
			resourceGrants[resID] += amount
		}
		for _, grant := range def.Reward.Items {
			itemGrants[grant.ItemID] += grant.Quantity
		}
		for stat, delta := range def.Reward.Boosts {
			boostDeltas[stat] += delta
		}
	}

	next := s.Clone()
	for resID, amount := range resourceGrants {
		if rs, ok := next.Resources[resID]; ok {
			rs.Amount += amount
			next.Resources[resID] = rs
		}
	}
	for itemID, qty := range itemGrants {
		next.AddItem(itemID, qty)
	}
	// Multiplicative stats accumulate additively onto their current value,
	// which starts at the 1.0 floor: +0.01 moves 1.05 to 1.06.
	for stat, delta := range boostDeltas {
		next.PermanentBoosts[stat] = next.Boost(stat) + delta
	}

	res := OpResult{Code: ResultOK}
	for _, def := range unlocked {
		next.UnlockedAchievements = append(next.UnlockedAchievements, def.ID)
		res.Notifications = append(res.Notifications, Notification{
			Title:       "Achievement Unlocked!",
			Description: def.Name,
		})
		res.Events = append(res.Events, Event{
			Type:       "achievement_unlocked",
			OccurredAt: now,
			Payload:    map[string]any{"achievement": def.ID},
		})
	}
	res.State = next
	return res
}
