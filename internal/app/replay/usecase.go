package replay

import (
	"context"
	"errors"

	"chronoclicker/internal/app/ports"
	"chronoclicker/internal/domain/clicker"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const maxLimit = 1000

type UseCase struct {
	Events ports.EventStore
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 || limit > maxLimit {
		limit = maxLimit
	}
	events, err := u.Events.ListRecent(ctx, limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, Tally: tally(events)}, nil
}

func filterByTimeWindow(events []clicker.Event, from, to int64) []clicker.Event {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]clicker.Event, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func tally(events []clicker.Event) Tally {
	t := Tally{GeneratorPurchases: map[string]int64{}}
	for _, evt := range events {
		switch evt.Type {
		case "clicked":
			t.Clicks++
		case "loot_dropped":
			t.LootDrops++
		case "generator_purchased":
			id, _ := evt.Payload["generator"].(string)
			t.GeneratorPurchases[id] += num(evt.Payload["count"])
		case "artifact_found":
			t.ArtifactsFound++
		case "achievement_unlocked":
			if id, ok := evt.Payload["achievement"].(string); ok {
				t.AchievementsUnlocked = append(t.AchievementsUnlocked, id)
			}
		}
	}
	return t
}

func num(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	default:
		return 0
	}
}
