package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"menulink/internal/models/db_models"
)

type IPlatformRepository interface {
	GetConfig(ctx context.Context) (*db_models.PlatformConfig, error)
	UpsertConfig(ctx context.Context, config *db_models.PlatformConfig) error
}

type PlatformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) IPlatformRepository {
	return &PlatformRepository{db: db}
}

// GetConfig reads the singleton row by its fixed id. Nil means the platform
// has never been configured.
func (p *PlatformRepository) GetConfig(ctx context.Context) (*db_models.PlatformConfig, error) {
	var config db_models.PlatformConfig
	err := p.db.WithContext(ctx).First(&config, "id = ?", db_models.PlatformConfigID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &config, nil
}

func (p *PlatformRepository) UpsertConfig(ctx context.Context, config *db_models.PlatformConfig) error {
	config.ID = db_models.PlatformConfigID
	return p.db.WithContext(ctx).Save(config).Error
}
