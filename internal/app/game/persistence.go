package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chronoclicker/internal/app/ports"
	"chronoclicker/internal/domain/clicker"
)

// SaveGame serializes the snapshot into the save store. Failures are
// reported and counted, never fatal: the game keeps running and the next
// autosave retries.
func (s *Store) SaveGame(ctx context.Context) error {
	payload, err := json.Marshal(s.State())
	if err == nil {
		err = s.cfg.Saves.Put(ctx, s.cfg.SaveKey, payload)
	}
	if err != nil {
		s.cfg.Log.WithError(err).Warn("save failed")
		if s.cfg.Metrics != nil {
			s.cfg.Metrics.RecordSaveFailure()
		}
		s.notify(clicker.Notification{
			Title:   "Save Failed",
			Variant: clicker.VariantDestructive,
		})
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// LoadGame replaces the snapshot with the persisted one, shape-completed
// against current defaults. A missing save leaves the fresh state in place;
// a corrupt save falls back to a fresh default and reports it.
func (s *Store) LoadGame(ctx context.Context) bool {
	payload, err := s.cfg.Saves.Get(ctx, s.cfg.SaveKey)
	if errors.Is(err, ports.ErrNotFound) {
		return false
	}
	if err != nil {
		s.cfg.Log.WithError(err).Warn("load failed")
		s.notify(clicker.Notification{
			Title:       "Load Failed",
			Description: "Could not read save data.",
			Variant:     clicker.VariantDestructive,
		})
		return false
	}

	var loaded clicker.GameState
	if err := json.Unmarshal(payload, &loaded); err != nil {
		s.cfg.Log.WithError(err).Warn("save data corrupted, starting fresh")
		s.replaceState(clicker.NewGameState(s.cfg.Now()))
		s.notify(clicker.Notification{
			Title:       "Load Failed",
			Description: "Save data might be corrupted.",
			Variant:     clicker.VariantDestructive,
		})
		return false
	}

	s.replaceState(clicker.MergeWithDefaults(loaded, s.cfg.Now()))
	s.notify(clicker.Notification{Title: "Game Loaded!"})
	return true
}

// ExportFilename is the fixed download name for exported saves.
const ExportFilename = "chronoClickerSave.json"

func (s *Store) Export() ([]byte, error) {
	payload, err := json.MarshalIndent(s.State(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export save: %w", err)
	}
	return payload, nil
}

// Import validates a player-supplied save before accepting it. A payload
// without object-shaped resources and generators is rejected and the current
// snapshot stays untouched.
func (s *Store) Import(ctx context.Context, payload []byte) error {
	var probe struct {
		Resources  map[string]json.RawMessage `json:"resources"`
		Generators map[string]json.RawMessage `json:"generators"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil || probe.Resources == nil || probe.Generators == nil {
		s.notify(clicker.Notification{
			Title:       "Import Failed",
			Description: "Invalid save file format.",
			Variant:     clicker.VariantDestructive,
		})
		return ports.ErrInvalidSave
	}
	var loaded clicker.GameState
	if err := json.Unmarshal(payload, &loaded); err != nil {
		s.notify(clicker.Notification{
			Title:       "Import Failed",
			Description: "Could not parse save file.",
			Variant:     clicker.VariantDestructive,
		})
		return ports.ErrInvalidSave
	}

	now := s.cfg.Now()
	s.replaceState(clicker.MergeWithDefaults(loaded, now))
	s.notify(clicker.Notification{Title: "Save Imported Successfully!"})
	s.appendEvent(ctx, clicker.Event{Type: "save_imported", OccurredAt: now})
	return nil
}

// Reset replaces the snapshot with a fresh default and clears persisted
// storage, but only when the confirmation prompt approves.
func (s *Store) Reset(ctx context.Context, prompt ports.ConfirmPrompt) bool {
	if prompt == nil || !prompt.Confirm("Are you sure you want to reset your game? All progress will be lost.") {
		return false
	}
	now := s.cfg.Now()
	s.replaceState(clicker.NewGameState(now))
	if err := s.cfg.Saves.Delete(ctx, s.cfg.SaveKey); err != nil && !errors.Is(err, ports.ErrNotFound) {
		s.cfg.Log.WithError(err).Warn("clear save failed")
	}
	s.notify(clicker.Notification{
		Title:       "Game Reset",
		Description: "Your progress has been reset.",
	})
	s.appendEvent(ctx, clicker.Event{Type: "game_reset", OccurredAt: now})
	return true
}

func (s *Store) replaceState(state clicker.GameState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Store) appendEvent(ctx context.Context, evt clicker.Event) {
	if s.cfg.Events == nil {
		return
	}
	evt.ID = newEventID()
	if err := s.cfg.Events.Append(ctx, []clicker.Event{evt}); err != nil {
		s.cfg.Log.WithError(err).Warn("append event failed")
	}
}
