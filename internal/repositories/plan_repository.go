package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"menulink/internal/models/db_models"
)

type IPlanRepository interface {
	GetPlanByID(ctx context.Context, planID uint) (*db_models.Plan, error)
	GetAllPlans(ctx context.Context) ([]db_models.Plan, error)
	Insert(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, planID uint) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) GetPlanByID(ctx context.Context, planID uint) (*db_models.Plan, error) {

	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {

	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

func (p *PlanRepository) Delete(ctx context.Context, planID uint) error {
	return p.db.WithContext(ctx).Delete(&db_models.Plan{}, planID).Error
}
