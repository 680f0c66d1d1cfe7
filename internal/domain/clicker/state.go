package clicker

import "time"

// NewGameState builds the default snapshot for a fresh game.
func NewGameState(now time.Time) GameState {
	resources := make(map[string]ResourceState, len(resourceDefs))
	for id := range resourceDefs {
		resources[id] = ResourceState{}
	}
	generators := make(map[string]GeneratorState, len(generatorDefs))
	purchases := make(map[string]int64, len(generatorDefs))
	for id := range generatorDefs {
		generators[id] = GeneratorState{}
		purchases[id] = 0
	}
	equipped := make(map[SlotID]string, len(EquipmentSlots))
	for _, slot := range EquipmentSlots {
		equipped[slot] = ""
	}
	return GameState{
		Resources:            resources,
		Generators:           generators,
		Inventory:            []InventoryEntry{},
		Equipped:             equipped,
		CurrentCharacterID:   DefaultCharacterID,
		UnlockedAchievements: []string{},
		PermanentBoosts: map[string]float64{
			BoostGlobalPPSMultiplier:      1.0,
			BoostGlobalDropRateMultiplier: 1.0,
		},
		Settings:                Settings{CurrentMultiplier: 1, GameSpeed: 1},
		LastUpdate:              now,
		GeneratorTotalPurchases: purchases,
	}
}

// Clone deep-copies the snapshot so a transform can mutate its working copy
// without the previous snapshot ever observing the change.
func (s GameState) Clone() GameState {
	next := s
	next.Resources = make(map[string]ResourceState, len(s.Resources))
	for id, rs := range s.Resources {
		next.Resources[id] = rs
	}
	next.Generators = make(map[string]GeneratorState, len(s.Generators))
	for id, gs := range s.Generators {
		next.Generators[id] = gs
	}
	next.Inventory = make([]InventoryEntry, len(s.Inventory))
	copy(next.Inventory, s.Inventory)
	next.Equipped = make(map[SlotID]string, len(s.Equipped))
	for slot, itemID := range s.Equipped {
		next.Equipped[slot] = itemID
	}
	next.UnlockedAchievements = make([]string, len(s.UnlockedAchievements))
	copy(next.UnlockedAchievements, s.UnlockedAchievements)
	next.PermanentBoosts = make(map[string]float64, len(s.PermanentBoosts))
	for stat, v := range s.PermanentBoosts {
		next.PermanentBoosts[stat] = v
	}
	next.GeneratorTotalPurchases = make(map[string]int64, len(s.GeneratorTotalPurchases))
	for id, n := range s.GeneratorTotalPurchases {
		next.GeneratorTotalPurchases[id] = n
	}
	return next
}

// AddItem adds units to the inventory, creating the entry if absent.
func (s *GameState) AddItem(itemID string, amount int64) {
	if amount <= 0 || itemID == "" {
		return
	}
	for i := range s.Inventory {
		if s.Inventory[i].ItemID == itemID {
			s.Inventory[i].Quantity += amount
			return
		}
	}
	s.Inventory = append(s.Inventory, InventoryEntry{ItemID: itemID, Quantity: amount})
}

// RemoveItem takes units out of the inventory, dropping the entry the moment
// it reaches zero. Entries with non-positive quantity never survive.
func (s *GameState) RemoveItem(itemID string, amount int64) bool {
	if amount <= 0 || itemID == "" {
		return false
	}
	for i := range s.Inventory {
		if s.Inventory[i].ItemID != itemID {
			continue
		}
		if s.Inventory[i].Quantity < amount {
			return false
		}
		s.Inventory[i].Quantity -= amount
		if s.Inventory[i].Quantity <= 0 {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
		}
		return true
	}
	return false
}

func (s GameState) InventoryCount(itemID string) int64 {
	for _, entry := range s.Inventory {
		if entry.ItemID == itemID {
			return entry.Quantity
		}
	}
	return 0
}

func (s GameState) TotalGeneratorQuantity() int64 {
	var total int64
	for _, gs := range s.Generators {
		total += gs.Quantity
	}
	return total
}

// Boost reads a permanent boost stat, falling back to the stat's floor:
// 1.0 for multiplicative stats, 0.0 otherwise.
func (s GameState) Boost(stat string) float64 {
	if v, ok := s.PermanentBoosts[stat]; ok {
		return v
	}
	if multiplicativeBoost(stat) {
		return 1.0
	}
	return 0.0
}

func multiplicativeBoost(stat string) bool {
	switch stat {
	case BoostGlobalPPSMultiplier, BoostGlobalDropRateMultiplier:
		return true
	}
	return false
}
