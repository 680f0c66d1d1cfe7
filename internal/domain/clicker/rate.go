package clicker

import "math"

// CalculatePPS computes the effective production rate for one resource:
// generator base output, then character multiplier, then the global permanent
// multiplier, then each equipped item folded in fixed slot order.
func CalculatePPS(s GameState, resourceID string) float64 {
	total := 0.0
	for id, def := range generatorDefs {
		if def.ProducesResource != resourceID {
			continue
		}
		total += def.BasePPS * float64(s.Generators[id].Quantity)
	}

	if ch, ok := characterDefs[s.CurrentCharacterID]; ok {
		total *= ch.BasePPSMultiplier
	}
	total *= s.Boost(BoostGlobalPPSMultiplier)

	for _, slot := range EquipmentSlots {
		itemID := s.Equipped[slot]
		if itemID == "" {
			continue
		}
		item, ok := itemDefs[itemID]
		if !ok {
			continue
		}
		if item.Stats.PPSMultiplier != 0 {
			total *= 1 + item.Stats.PPSMultiplier
		}
		if item.Stats.PPSBoost != 0 {
			total += item.Stats.PPSBoost
		}
	}

	if math.IsNaN(total) || total < 0 {
		return 0
	}
	return total
}

// ClickPower starts at 1 and folds each equipped item's flat boost and
// multiplier in a single pass, slot order fixed.
func ClickPower(s GameState) float64 {
	power := 1.0
	for _, slot := range EquipmentSlots {
		itemID := s.Equipped[slot]
		if itemID == "" {
			continue
		}
		item, ok := itemDefs[itemID]
		if !ok {
			continue
		}
		power += item.Stats.ClickPowerBoost
		if item.Stats.ClickPowerMultiplier != 0 {
			power *= 1 + item.Stats.ClickPowerMultiplier
		}
	}
	if math.IsNaN(power) || power < 0 {
		return 0
	}
	return power
}

const (
	generatorBonusCap  = 0.02
	clickDropChanceCap = 0.10
)

// ClickDropChance is the local loot-drop decision formula. The result is
// always within [0, clickDropChanceCap] regardless of boosts.
func ClickDropChance(s GameState, baseChance float64) float64 {
	mult := 1.0
	if ch, ok := characterDefs[s.CurrentCharacterID]; ok {
		mult = ch.BaseDropRateMultiplier
	}
	chance := baseChance * mult * s.Boost(BoostGlobalDropRateMultiplier)

	bonus := float64(s.TotalGeneratorQuantity()) / 200 * 0.001
	if bonus > generatorBonusCap {
		bonus = generatorBonusCap
	}
	chance += bonus

	if chance > clickDropChanceCap {
		chance = clickDropChanceCap
	}
	if chance < 0 || math.IsNaN(chance) {
		chance = 0
	}
	return chance
}
