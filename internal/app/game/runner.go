package game

import (
	"context"
	"time"
)

// Run drives the tick and autosave loops until the context is cancelled. A
// final save is attempted on shutdown. The tick period follows the game
// speed the snapshot carried when the loop started.
func (s *Store) Run(ctx context.Context) {
	speed := s.State().Settings.GameSpeed
	if speed <= 0 {
		speed = 1
	}
	tick := time.NewTicker(time.Duration(float64(time.Second) / speed))
	defer tick.Stop()
	autosave := time.NewTicker(s.cfg.AutosaveInterval)
	defer autosave.Stop()

	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = s.SaveGame(saveCtx)
			cancel()
			return
		case <-tick.C:
			s.Tick(ctx)
		case <-autosave.C:
			_ = s.SaveGame(ctx)
		}
	}
}
