package clicker

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DefaultMaxBulkIterations bounds the MAX-buy loop so it terminates for any
// balance.
const DefaultMaxBulkIterations = 1_000_000

// unitCost is the price of the next unit when `owned` units are already held.
func unitCost(def GeneratorDef, owned int64) float64 {
	return def.BaseCost * math.Pow(def.CostScale, float64(owned))
}

// resolveBulkBuy simulates unit-by-unit purchases against the available
// balance. A fixed multiplier caps the count; MAX runs until the balance or
// the iteration cap is exhausted.
func resolveBulkBuy(def GeneratorDef, owned int64, balance float64, multiplier Multiplier, maxIterations int64) (numToBuy int64, totalCost float64) {
	limit := int64(multiplier)
	if multiplier == MultiplierMax || limit > maxIterations {
		limit = maxIterations
	}
	for i := int64(0); i < limit; i++ {
		cost := unitCost(def, owned+i)
		if balance < totalCost+cost {
			break
		}
		totalCost += cost
		numToBuy++
	}
	return numToBuy, totalCost
}

// BuyGenerator resolves the current bulk multiplier against the cost
// resource balance, debits the exact simulated total, and rolls the
// generator's artifact formula at the new quantity.
func BuyGenerator(s GameState, generatorID string, maxIterations int64, now time.Time, rng *rand.Rand) OpResult {
	def, ok := generatorDefs[generatorID]
	if !ok {
		return rejected(s, "Unknown Generator", fmt.Sprintf("Generator %q does not exist.", generatorID))
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxBulkIterations
	}

	costDef := resourceDefs[def.CostResource]
	balance := s.Resources[def.CostResource].Amount
	numToBuy, totalCost := resolveBulkBuy(def, s.Generators[generatorID].Quantity, balance, s.Settings.CurrentMultiplier, maxIterations)
	if numToBuy == 0 {
		return rejected(s, "Not Enough Resources",
			fmt.Sprintf("You need more %s to buy %s.", costDef.Name, def.Name))
	}

	next := s.Clone()
	rs := next.Resources[def.CostResource]
	rs.Amount -= totalCost
	next.Resources[def.CostResource] = rs
	gs := next.Generators[generatorID]
	gs.Quantity += numToBuy
	next.Generators[generatorID] = gs
	next.GeneratorTotalPurchases[generatorID] += numToBuy

	res := OpResult{
		Notifications: []Notification{{
			Title:       "Generator Purchased!",
			Description: fmt.Sprintf("Bought %d x %s.", numToBuy, def.Name),
		}},
		Events: []Event{{
			Type:       "generator_purchased",
			OccurredAt: now,
			Payload: map[string]any{
				"generator": generatorID,
				"count":     numToBuy,
				"cost":      totalCost,
				"resource":  def.CostResource,
			},
		}},
		Code: ResultOK,
	}

	rollArtifactDrop(&next, &res, def, gs.Quantity, now, rng)

	res.State = next
	return res
}

func rollArtifactDrop(next *GameState, res *OpResult, def GeneratorDef, quantity int64, now time.Time, rng *rand.Rand) {
	if len(def.ArtifactIDs) == 0 {
		return
	}
	if err, bad := dropFormulaErrs[def.ID]; bad {
		res.Events = append(res.Events, formulaErrorEvent(def.ID, err, now))
		return
	}
	formula, ok := dropFormulas[def.ID]
	if !ok {
		return
	}
	rate, err := formula.Rate(quantity)
	if err != nil {
		res.Events = append(res.Events, formulaErrorEvent(def.ID, err, now))
		return
	}
	if rng.Float64() >= rate {
		return
	}
	artifactID := def.ArtifactIDs[rng.Intn(len(def.ArtifactIDs))]
	next.AddItem(artifactID, 1)
	name := artifactID
	if artifact, ok := itemDefs[artifactID]; ok {
		name = artifact.Name
	}
	res.Notifications = append(res.Notifications, Notification{
		Title:       "Artifact Found!",
		Description: fmt.Sprintf("Your %s uncovered a %s!", def.Name, name),
	})
	res.Events = append(res.Events, Event{
		Type:       "artifact_found",
		OccurredAt: now,
		Payload:    map[string]any{"generator": def.ID, "item": artifactID},
	})
}

func formulaErrorEvent(generatorID string, err error, now time.Time) Event {
	return Event{
		Type:       "artifact_formula_error",
		OccurredAt: now,
		Payload:    map[string]any{"generator": generatorID, "error": err.Error()},
	}
}
