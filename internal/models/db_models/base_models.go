package db_models

import (
	"gorm.io/gorm"

	"time"
)

type BaseModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt int64          `gorm:"autoCreateTime:milli" json:"createdAt"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Hooks to manage epoch-millisecond timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UnixMilli()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().UnixMilli()
	return nil
}
