package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"chronoclicker/internal/app/ports"
	"chronoclicker/internal/domain/clicker"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSaveKey          = "chronoClickerSave"
	DefaultBaseDropChance   = 0.005
	DefaultAutosaveInterval = 30 * time.Second
)

type Config struct {
	Saves             ports.SaveStore
	Events            ports.EventStore
	Notifier          ports.NotificationSink
	Metrics           ports.GameMetrics
	Now               func() time.Time
	Rand              *rand.Rand
	Log               *logrus.Logger
	SaveKey           string
	BaseDropChance    float64
	MaxBulkIterations int64
	AutosaveInterval  time.Duration
	GameSpeed         float64
}

// Store owns the game snapshot. It is the only mutation surface: every
// transform runs to completion under one lock, and notifications, events and
// metrics are dispatched only after the new snapshot is committed.
type Store struct {
	mu    sync.Mutex
	state clicker.GameState
	cfg   Config
}

func New(cfg Config) *Store {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(cfg.Now().UnixNano()))
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	if cfg.SaveKey == "" {
		cfg.SaveKey = DefaultSaveKey
	}
	if cfg.BaseDropChance <= 0 {
		cfg.BaseDropChance = DefaultBaseDropChance
	}
	if cfg.MaxBulkIterations <= 0 {
		cfg.MaxBulkIterations = clicker.DefaultMaxBulkIterations
	}
	if cfg.AutosaveInterval <= 0 {
		cfg.AutosaveInterval = DefaultAutosaveInterval
	}
	state := clicker.NewGameState(cfg.Now())
	if cfg.GameSpeed > 0 {
		state.Settings.GameSpeed = cfg.GameSpeed
	}
	return &Store{
		state: state,
		cfg:   cfg,
	}
}

// State returns a deep copy of the current snapshot.
func (s *Store) State() clicker.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

type Response struct {
	State         clicker.GameState      `json:"state"`
	Notifications []clicker.Notification `json:"notifications"`
	ResultCode    clicker.ResultCode     `json:"result_code"`
}

func (s *Store) Click(ctx context.Context, resourceID string) Response {
	if resourceID == "" {
		resourceID = clicker.ResourcePoints
	}
	return s.apply(ctx, "click", func(state clicker.GameState, now time.Time) clicker.OpResult {
		return clicker.PerformClick(state, resourceID, s.cfg.BaseDropChance, now, s.cfg.Rand)
	})
}

func (s *Store) Buy(ctx context.Context, generatorID string) Response {
	return s.apply(ctx, "buy_generator", func(state clicker.GameState, now time.Time) clicker.OpResult {
		return clicker.BuyGenerator(state, generatorID, s.cfg.MaxBulkIterations, now, s.cfg.Rand)
	})
}

func (s *Store) Equip(ctx context.Context, itemID string, slot clicker.SlotID) Response {
	return s.apply(ctx, "equip_item", func(state clicker.GameState, now time.Time) clicker.OpResult {
		return clicker.EquipItem(state, itemID, slot, now)
	})
}

func (s *Store) Unequip(ctx context.Context, slot clicker.SlotID) Response {
	return s.apply(ctx, "unequip_item", func(state clicker.GameState, now time.Time) clicker.OpResult {
		return clicker.UnequipItem(state, slot, now)
	})
}

func (s *Store) Consume(ctx context.Context, itemID string, quantity int64) Response {
	return s.apply(ctx, "consume_item", func(state clicker.GameState, now time.Time) clicker.OpResult {
		return clicker.ConsumeItem(state, itemID, quantity, now)
	})
}

func (s *Store) SwitchCharacter(ctx context.Context, characterID string) Response {
	return s.apply(ctx, "switch_character", func(state clicker.GameState, now time.Time) clicker.OpResult {
		return clicker.SwitchCharacter(state, characterID, now)
	})
}

func (s *Store) SetMultiplier(ctx context.Context, m clicker.Multiplier) Response {
	return s.apply(ctx, "set_multiplier", func(state clicker.GameState, _ time.Time) clicker.OpResult {
		return clicker.SetMultiplier(state, m)
	})
}

// Tick advances resource amounts by elapsed wall-clock time, then runs the
// achievement pass like any other snapshot change.
func (s *Store) Tick(ctx context.Context) {
	s.apply(ctx, "tick", func(state clicker.GameState, now time.Time) clicker.OpResult {
		return clicker.OpResult{State: clicker.AdvanceTime(state, now), Code: clicker.ResultOK}
	})
}

func (s *Store) apply(ctx context.Context, op string, fn func(clicker.GameState, time.Time) clicker.OpResult) Response {
	s.mu.Lock()
	now := s.cfg.Now()
	res := fn(s.state, now)
	if res.Code == clicker.ResultOK {
		ach := clicker.EvaluateAchievements(res.State, now)
		res.State = ach.State
		res.Notifications = append(res.Notifications, ach.Notifications...)
		res.Events = append(res.Events, ach.Events...)
	}
	s.state = res.State
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.afterCommit(ctx, op, res)
	return Response{
		State:         snapshot,
		Notifications: res.Notifications,
		ResultCode:    res.Code,
	}
}

func (s *Store) afterCommit(ctx context.Context, op string, res clicker.OpResult) {
	if s.cfg.Notifier != nil {
		for _, n := range res.Notifications {
			s.cfg.Notifier.Notify(n)
		}
	}
	if s.cfg.Events != nil && len(res.Events) > 0 {
		events := make([]clicker.Event, len(res.Events))
		copy(events, res.Events)
		for i := range events {
			events[i].ID = newEventID()
		}
		if err := s.cfg.Events.Append(ctx, events); err != nil {
			s.cfg.Log.WithError(err).WithField("op", op).Warn("append events failed")
		}
	}
	for _, evt := range res.Events {
		if evt.Type == "artifact_formula_error" {
			s.cfg.Log.WithField("payload", evt.Payload).Warn("artifact drop formula failed")
		}
	}
	if s.cfg.Metrics != nil {
		if res.Code == clicker.ResultOK {
			s.cfg.Metrics.RecordOp(op)
		} else {
			s.cfg.Metrics.RecordRejection(op)
		}
	}
}

func (s *Store) notify(n clicker.Notification) {
	if s.cfg.Notifier != nil {
		s.cfg.Notifier.Notify(n)
	}
}

func newEventID() string {
	return uuid.NewString()
}
