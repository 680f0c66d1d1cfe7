package httpadapter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"chronoclicker/internal/app/game"
	"chronoclicker/internal/app/replay"
	"chronoclicker/internal/domain/clicker"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	state := clicker.NewGameState(now)
	state.Resources["points"] = clicker.ResourceState{Amount: 12, PerSecond: 1.5}
	state.Generators["timeAnchor"] = clicker.GeneratorState{Quantity: 3}
	event := clicker.Event{
		ID:         "evt-1",
		Type:       "clicked",
		OccurredAt: now,
		Payload:    map[string]any{"resource": "points"},
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "game_response",
			payload: game.Response{State: state, ResultCode: clicker.ResultOK},
			want:    []string{`"result_code"`, `"total_clicks"`, `"per_second"`, `"current_multiplier"`, `"permanent_boosts"`, `"last_update"`},
			notWant: []string{`"ResultCode"`, `"TotalClicks"`, `"PerSecond"`},
		},
		{
			name:    "replay_response",
			payload: replay.Response{Events: []clicker.Event{event}, Tally: replay.Tally{Clicks: 1, GeneratorPurchases: map[string]int64{}}},
			want:    []string{`"occurred_at"`, `"generator_purchases"`, `"loot_drops"`},
			notWant: []string{`"OccurredAt"`, `"LootDrops"`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			s := string(b)
			for _, w := range tc.want {
				if !strings.Contains(s, w) {
					t.Fatalf("expected %s in payload: %s", w, s)
				}
			}
			for _, nw := range tc.notWant {
				if strings.Contains(s, nw) {
					t.Fatalf("unexpected %s in payload", nw)
				}
			}
		})
	}
}

func TestMultiplierJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(clicker.MultiplierMax)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"MAX"` {
		t.Fatalf("expected \"MAX\", got %s", b)
	}
	var m clicker.Multiplier
	if err := json.Unmarshal([]byte(`"MAX"`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m != clicker.MultiplierMax {
		t.Fatalf("expected MAX, got %v", m)
	}
	if err := json.Unmarshal([]byte(`25`), &m); err != nil {
		t.Fatalf("unmarshal numeric: %v", err)
	}
	if m != 25 {
		t.Fatalf("expected 25, got %v", m)
	}
}
