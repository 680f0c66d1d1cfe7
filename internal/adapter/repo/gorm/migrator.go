package gormrepo

import (
	"fmt"

	"gorm.io/gorm"

	"chronoclicker/internal/adapter/repo/gorm/model"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.SaveSlot{}, &model.GameEvent{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
