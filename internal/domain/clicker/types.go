package clicker

import (
	"encoding/json"
	"fmt"
	"time"
)

type SlotID string

const (
	SlotHead     SlotID = "Head"
	SlotBody     SlotID = "Body"
	SlotLegs     SlotID = "Legs"
	SlotFeet     SlotID = "Feet"
	SlotWeapon   SlotID = "Weapon"
	SlotNecklace SlotID = "Necklace"
	SlotRing1    SlotID = "Ring1"
	SlotRing2    SlotID = "Ring2"
)

// EquipmentSlots is the fixed slot order. Stat folding iterates it as-is, so
// the order is part of the derived-stat contract.
var EquipmentSlots = [8]SlotID{
	SlotHead, SlotBody, SlotLegs, SlotFeet,
	SlotWeapon, SlotNecklace, SlotRing1, SlotRing2,
}

type ItemType string

const (
	ItemTypeArmour     ItemType = "Armour"
	ItemTypeWeapon     ItemType = "Weapon"
	ItemTypeAccessory  ItemType = "Accessory"
	ItemTypeConsumable ItemType = "Consumable"
)

type ItemGroup string

const (
	GroupHelmet   ItemGroup = "Helmet"
	GroupChest    ItemGroup = "Chest"
	GroupLeggings ItemGroup = "Leggings"
	GroupBoots    ItemGroup = "Boots"
	GroupKnife    ItemGroup = "Knife"
	GroupSword    ItemGroup = "Sword"
	GroupNecklace ItemGroup = "Necklace"
	GroupRing     ItemGroup = "Ring"
	GroupPotion   ItemGroup = "Potion"
)

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

type ItemStats struct {
	PPSBoost             float64
	PPSMultiplier        float64
	DropRateBoost        float64
	ClickPowerBoost      float64
	ClickPowerMultiplier float64
	ArmorValue           float64
	DamageValue          float64
}

// Item is an immutable content definition. Only inventory counts change at
// runtime, never the definition itself.
type Item struct {
	ID            string
	Name          string
	Description   string
	Type          ItemType
	Group         ItemGroup
	Material      string
	Stats         ItemStats
	Equippable    bool
	Slot          SlotID
	Consumable    bool
	ConsumeEffect func(GameState) GameState
	Rarity        Rarity
	Artifact      bool
}

type ResourceDef struct {
	ID   string
	Name string
	Icon string
}

type GeneratorDef struct {
	ID                  string
	Name                string
	Description         string
	BaseCost            float64
	CostResource        string
	CostScale           float64
	BasePPS             float64
	ProducesResource    string
	ArtifactIDs         []string
	ArtifactDropFormula string
}

type CharacterDef struct {
	ID                     string
	Name                   string
	Description            string
	BasePPSMultiplier      float64
	BaseDropRateMultiplier float64
}

type ItemGrant struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type AchievementReward struct {
	Resources map[string]float64
	Items     []ItemGrant
	Boosts    map[string]float64
}

type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Condition   func(GameState) bool
	Reward      AchievementReward
}

// Permanent boost stat names. Multiplicative stats accumulate additively on a
// 1.0 floor; anything else accumulates on a 0.0 floor.
const (
	BoostGlobalPPSMultiplier      = "globalPpsMultiplier"
	BoostGlobalDropRateMultiplier = "globalDropRateMultiplier"
)

// Multiplier is a bulk-buy count. MultiplierMax is the "buy as many as the
// balance allows" sentinel, serialized as the string "MAX".
type Multiplier int64

const MultiplierMax Multiplier = -1

var AllowedMultipliers = []Multiplier{
	1, 5, 10, 25, 50, 250, 1000, 10000, 100000, 1000000, MultiplierMax,
}

func (m Multiplier) Valid() bool {
	for _, allowed := range AllowedMultipliers {
		if m == allowed {
			return true
		}
	}
	return false
}

func (m Multiplier) String() string {
	if m == MultiplierMax {
		return "MAX"
	}
	return fmt.Sprintf("%d", int64(m))
}

func (m Multiplier) MarshalJSON() ([]byte, error) {
	if m == MultiplierMax {
		return json.Marshal("MAX")
	}
	return json.Marshal(int64(m))
}

func (m *Multiplier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "MAX" {
			return fmt.Errorf("unknown multiplier %q", s)
		}
		*m = MultiplierMax
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Multiplier(n)
	return nil
}

// ResourceState is the mutable progress for one resource. Amount is
// authoritative; PerSecond is a cached display rate refreshed every tick.
type ResourceState struct {
	Amount    float64 `json:"amount"`
	PerSecond float64 `json:"per_second"`
}

type GeneratorState struct {
	Quantity int64 `json:"quantity"`
}

type InventoryEntry struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type Settings struct {
	CurrentMultiplier Multiplier `json:"current_multiplier"`
	GameSpeed         float64    `json:"game_speed"`
}

// GameState is the aggregate snapshot of all mutable progress. Transforms
// never mutate their input; they clone, modify and return.
type GameState struct {
	Resources               map[string]ResourceState  `json:"resources"`
	Generators              map[string]GeneratorState `json:"generators"`
	Inventory               []InventoryEntry          `json:"inventory"`
	Equipped                map[SlotID]string         `json:"equipped_items"`
	CurrentCharacterID      string                    `json:"current_character_id"`
	UnlockedAchievements    []string                  `json:"unlocked_achievements"`
	PermanentBoosts         map[string]float64        `json:"permanent_boosts"`
	Settings                Settings                  `json:"settings"`
	LastUpdate              time.Time                 `json:"last_update"`
	TotalClicks             int64                     `json:"total_clicks"`
	GeneratorTotalPurchases map[string]int64          `json:"generator_total_purchases"`
}

// Notification is a fire-and-forget player-facing message, dispatched by the
// host only after the state transform commits.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

const VariantDestructive = "destructive"

// Event is an entry for the append-only history log. The ID is assigned by
// the host when the event is persisted.
type Event struct {
	ID         string         `json:"id,omitempty"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type ResultCode string

const (
	ResultOK       ResultCode = "OK"
	ResultRejected ResultCode = "REJECTED"
)

// OpResult is what every transaction operation returns: the next snapshot,
// the notifications to dispatch after commit, and the history events.
type OpResult struct {
	State         GameState
	Notifications []Notification
	Events        []Event
	Code          ResultCode
}

func rejected(state GameState, title, description string) OpResult {
	return OpResult{
		State: state,
		Notifications: []Notification{
			{Title: title, Description: description, Variant: VariantDestructive},
		},
		Code: ResultRejected,
	}
}
