package clicker

import (
	"sort"
	"testing"
)

func TestContentTables_ReferencesResolve(t *testing.T) {
	for id, def := range generatorDefs {
		if _, ok := resourceDefs[def.CostResource]; !ok {
			t.Fatalf("generator %s costs unknown resource %s", id, def.CostResource)
		}
		if _, ok := resourceDefs[def.ProducesResource]; !ok {
			t.Fatalf("generator %s produces unknown resource %s", id, def.ProducesResource)
		}
		for _, artifactID := range def.ArtifactIDs {
			item, ok := itemDefs[artifactID]
			if !ok {
				t.Fatalf("generator %s drops unknown artifact %s", id, artifactID)
			}
			if !item.Artifact {
				t.Fatalf("generator %s drop %s is not flagged as artifact", id, artifactID)
			}
		}
		if def.CostScale <= 1 {
			t.Fatalf("generator %s cost scale %v must exceed 1", id, def.CostScale)
		}
	}
	for id, item := range itemDefs {
		if item.Equippable && item.Slot == "" {
			t.Fatalf("equippable item %s has no default slot", id)
		}
		if item.Consumable && item.ConsumeEffect == nil {
			t.Fatalf("consumable item %s has no effect", id)
		}
	}
	for id, def := range achievementDefs {
		if def.Condition == nil {
			t.Fatalf("achievement %s has no condition", id)
		}
		for resID := range def.Reward.Resources {
			if _, ok := resourceDefs[resID]; !ok {
				t.Fatalf("achievement %s rewards unknown resource %s", id, resID)
			}
		}
		for _, grant := range def.Reward.Items {
			if _, ok := itemDefs[grant.ItemID]; !ok {
				t.Fatalf("achievement %s rewards unknown item %s", id, grant.ItemID)
			}
		}
	}
}

func TestLootPool_ExcludesArtifactsAndHighRarities(t *testing.T) {
	pool := LootPool()
	if len(pool) == 0 {
		t.Fatalf("empty loot pool")
	}
	ids := make([]string, 0, len(pool))
	for _, item := range pool {
		if item.Artifact {
			t.Fatalf("artifact %s in click loot pool", item.ID)
		}
		if item.Rarity == RarityEpic || item.Rarity == RarityLegendary {
			t.Fatalf("%s rarity %s in click loot pool", item.ID, item.Rarity)
		}
		ids = append(ids, item.ID)
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("loot pool order must be stable by id, got %v", ids)
	}
}
