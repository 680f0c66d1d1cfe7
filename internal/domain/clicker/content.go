package clicker

import "sort"

// Static content tables. The engine never mutates these; all runtime change
// lives in GameState.

const (
	ResourcePoints       = "points"
	ResourceMana         = "mana"
	ResourceGold         = "gold"
	ResourceTemporalDust = "temporalDust"
)

const DefaultCharacterID = "chronomancer"

var resourceDefs = map[string]ResourceDef{
	ResourcePoints:       {ID: ResourcePoints, Name: "Chrono Shards", Icon: "sparkles"},
	ResourceMana:         {ID: ResourceMana, Name: "Mana Orbs", Icon: "droplet"},
	ResourceGold:         {ID: ResourceGold, Name: "Ancient Gold", Icon: "coins"},
	ResourceTemporalDust: {ID: ResourceTemporalDust, Name: "Temporal Dust", Icon: "hourglass"},
}

var generatorDefs = map[string]GeneratorDef{
	"timeAnchor": {
		ID:                  "timeAnchor",
		Name:                "Temporal Anchor",
		Description:         "Stabilizes a small point in time, slowly generating Chrono Shards.",
		BaseCost:            10,
		CostResource:        ResourcePoints,
		CostScale:           1.15,
		BasePPS:             1,
		ProducesResource:    ResourcePoints,
		ArtifactIDs:         []string{"artifact_time_crystal"},
		ArtifactDropFormula: "log(quantity + 1) / 20",
	},
	"manaWell": {
		ID:               "manaWell",
		Name:             "Mana Wellspring",
		Description:      "A mystical well that slowly bubbles forth Mana Orbs.",
		BaseCost:         50,
		CostResource:     ResourcePoints,
		CostScale:        1.20,
		BasePPS:          0.5,
		ProducesResource: ResourceMana,
	},
	"goldMine": {
		ID:                  "goldMine",
		Name:                "Ancient Gold Mine",
		Description:         "Extracts flecks of ancient gold from the earth.",
		BaseCost:            200,
		CostResource:        ResourceMana,
		CostScale:           1.25,
		BasePPS:             0.1,
		ProducesResource:    ResourceGold,
		ArtifactIDs:         []string{"artifact_gold_nugget"},
		ArtifactDropFormula: "log(quantity + 1) / 30",
	},
	"libraryScrolls": {
		ID:               "libraryScrolls",
		Name:             "Library of Scrolls",
		Description:      "Generates Temporal Dust through ancient texts.",
		BaseCost:         50,
		CostResource:     ResourcePoints,
		CostScale:        1.18,
		BasePPS:          2,
		ProducesResource: ResourceTemporalDust,
	},
}

var characterDefs = map[string]CharacterDef{
	"chronomancer": {
		ID:                     "chronomancer",
		Name:                   "The Chronomancer",
		Description:            "A master of time, subtly bending it to accelerate production.",
		BasePPSMultiplier:      1.1,
		BaseDropRateMultiplier: 1.05,
	},
	"archivist": {
		ID:                     "archivist",
		Name:                   "The Archivist",
		Description:            "Uncovers hidden knowledge, significantly boosting discovery rates.",
		BasePPSMultiplier:      1.0,
		BaseDropRateMultiplier: 1.2,
	},
}

var itemDefs = map[string]Item{
	"leatherHelmet": {
		ID:          "leatherHelmet",
		Name:        "Leather Helmet",
		Description: "Basic head protection.",
		Type:        ItemTypeArmour,
		Group:       GroupHelmet,
		Material:    "Leather",
		Stats:       ItemStats{ArmorValue: 1, PPSBoost: 1},
		Equippable:  true,
		Slot:        SlotHead,
		Rarity:      RarityCommon,
	},
	"leatherChestplate": {
		ID:          "leatherChestplate",
		Name:        "Leather Chestplate",
		Description: "Simple leather body armour.",
		Type:        ItemTypeArmour,
		Group:       GroupChest,
		Material:    "Leather",
		Stats:       ItemStats{ArmorValue: 2, PPSBoost: 2},
		Equippable:  true,
		Slot:        SlotBody,
		Rarity:      RarityCommon,
	},
	"leatherLeggings": {
		ID:          "leatherLeggings",
		Name:        "Leather Leggings",
		Description: "Worn leather leg protection.",
		Type:        ItemTypeArmour,
		Group:       GroupLeggings,
		Material:    "Leather",
		Stats:       ItemStats{ArmorValue: 2, PPSBoost: 1},
		Equippable:  true,
		Slot:        SlotLegs,
		Rarity:      RarityCommon,
	},
	"leatherBoots": {
		ID:          "leatherBoots",
		Name:        "Leather Boots",
		Description: "Sturdy boots for long expeditions.",
		Type:        ItemTypeArmour,
		Group:       GroupBoots,
		Material:    "Leather",
		Stats:       ItemStats{ArmorValue: 1, PPSBoost: 1},
		Equippable:  true,
		Slot:        SlotFeet,
		Rarity:      RarityCommon,
	},
	"woodenKnife": {
		ID:          "woodenKnife",
		Name:        "Wooden Knife",
		Description: "A crudely fashioned wooden knife.",
		Type:        ItemTypeWeapon,
		Group:       GroupKnife,
		Material:    "Wood",
		Stats:       ItemStats{DamageValue: 1, ClickPowerBoost: 1},
		Equippable:  true,
		Slot:        SlotWeapon,
		Rarity:      RarityCommon,
	},
	"copperSword": {
		ID:          "copperSword",
		Name:        "Copper Sword",
		Description: "A dulled blade that still sharpens every strike.",
		Type:        ItemTypeWeapon,
		Group:       GroupSword,
		Material:    "Copper",
		Stats:       ItemStats{DamageValue: 3, ClickPowerBoost: 2, ClickPowerMultiplier: 0.05},
		Equippable:  true,
		Slot:        SlotWeapon,
		Rarity:      RarityUncommon,
	},
	"simpleRing": {
		ID:          "simpleRing",
		Name:        "Simple Ring",
		Description: "A plain metal ring. Slightly boosts focus.",
		Type:        ItemTypeAccessory,
		Group:       GroupRing,
		Material:    "Metal",
		Stats:       ItemStats{PPSMultiplier: 0.01},
		Equippable:  true,
		Slot:        SlotRing1,
		Rarity:      RarityCommon,
	},
	"focusAmulet": {
		ID:          "focusAmulet",
		Name:        "Focus Amulet",
		Description: "Keeps the mind anchored to the present moment.",
		Type:        ItemTypeAccessory,
		Group:       GroupNecklace,
		Material:    "Gem",
		Stats:       ItemStats{PPSMultiplier: 0.03, ClickPowerBoost: 1},
		Equippable:  true,
		Slot:        SlotNecklace,
		Rarity:      RarityUncommon,
	},
	"minorPpsPotion": {
		ID:          "minorPpsPotion",
		Name:        "Minor PPS Potion",
		Description: "Bottled momentum. Grants ten seconds of shard production at once.",
		Type:        ItemTypeConsumable,
		Group:       GroupPotion,
		Consumable:  true,
		ConsumeEffect: func(s GameState) GameState {
			pps := s.Resources[ResourcePoints].PerSecond
			if pps == 0 {
				pps = 1
			}
			rs := s.Resources[ResourcePoints]
			rs.Amount += pps * 10
			s.Resources[ResourcePoints] = rs
			return s
		},
		Rarity: RarityCommon,
	},
	"artifact_time_crystal": {
		ID:          "artifact_time_crystal",
		Name:        "Time Crystal Shard",
		Description: "A fragment of crystallized time. Boosts production when equipped.",
		Type:        ItemTypeAccessory,
		Group:       GroupNecklace,
		Stats:       ItemStats{PPSMultiplier: 0.02},
		Equippable:  true,
		Slot:        SlotNecklace,
		Rarity:      RarityRare,
		Artifact:    true,
	},
	"artifact_gold_nugget": {
		ID:          "artifact_gold_nugget",
		Name:        "Pulsing Gold Nugget",
		Description: "This nugget of ancient gold hums with energy, increasing find rate.",
		Type:        ItemTypeAccessory,
		Group:       GroupRing,
		Stats:       ItemStats{DropRateBoost: 0.05},
		Equippable:  true,
		Slot:        SlotRing2,
		Rarity:      RarityRare,
		Artifact:    true,
	},
}

func LookupResource(id string) (ResourceDef, bool) {
	def, ok := resourceDefs[id]
	return def, ok
}

func LookupGenerator(id string) (GeneratorDef, bool) {
	def, ok := generatorDefs[id]
	return def, ok
}

func LookupItem(id string) (Item, bool) {
	item, ok := itemDefs[id]
	return item, ok
}

func LookupCharacter(id string) (CharacterDef, bool) {
	def, ok := characterDefs[id]
	return def, ok
}

// LootPool returns the click-drop candidates in stable ID order: artifacts
// and Epic/Legendary items never drop from plain clicks.
func LootPool() []Item {
	pool := make([]Item, 0, len(itemDefs))
	for _, item := range itemDefs {
		if item.Artifact || item.Rarity == RarityEpic || item.Rarity == RarityLegendary {
			continue
		}
		pool = append(pool, item)
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
	return pool
}

func sortedGeneratorIDs() []string {
	ids := make([]string, 0, len(generatorDefs))
	for id := range generatorDefs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
