package model

import "time"

// SaveSlot is a string-keyed serialized snapshot row.
type SaveSlot struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SaveSlot) TableName() string { return "save_slots" }

// GameEvent is one row of the append-only event history.
type GameEvent struct {
	ID         string    `gorm:"primaryKey;column:id"`
	Type       string    `gorm:"column:type;index"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"column:payload"`
}

func (GameEvent) TableName() string { return "game_events" }
