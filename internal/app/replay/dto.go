package replay

import "chronoclicker/internal/domain/clicker"

type Request struct {
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// Tally is an aggregate view reconstructed from the event history.
type Tally struct {
	Clicks               int64            `json:"clicks"`
	LootDrops            int64            `json:"loot_drops"`
	GeneratorPurchases   map[string]int64 `json:"generator_purchases"`
	ArtifactsFound       int64            `json:"artifacts_found"`
	AchievementsUnlocked []string         `json:"achievements_unlocked"`
}

type Response struct {
	Events []clicker.Event `json:"events"`
	Tally  Tally           `json:"tally"`
}
