package services

import (
	"context"
	"encoding/json"

	"menulink/internal/models/db_models"
	"menulink/internal/models/request_models"
	"menulink/internal/models/response_models"
	"menulink/internal/repositories"
	"menulink/pkg/utils"
)

type PlanServiceInterface interface {
	GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	GetPlanByID(ctx context.Context, planID uint) (response_models.PlanResponse, error)
	CreatePlan(ctx context.Context, request request_models.PlanRequest) (response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, planID uint, request request_models.PlanRequest) error
	DeletePlan(ctx context.Context, planID uint) error
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func (p *PlanService) GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error) {

	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, toPlanResponse(&plans[i]))
	}

	return result, nil
}

func (p *PlanService) GetPlanByID(ctx context.Context, planID uint) (response_models.PlanResponse, error) {

	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}

	return toPlanResponse(plan), nil
}

func (p *PlanService) CreatePlan(ctx context.Context, request request_models.PlanRequest) (response_models.PlanResponse, error) {

	plan := planFromRequest(request)

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	return toPlanResponse(plan), nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID uint, request request_models.PlanRequest) error {

	existing, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPlanNotFound
	}

	updated := planFromRequest(request)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := p.planRepo.Update(ctx, updated); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PlanService) DeletePlan(ctx context.Context, planID uint) error {

	existing, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrPlanNotFound
	}

	if err := p.planRepo.Delete(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func planFromRequest(request request_models.PlanRequest) *db_models.Plan {
	price := *request.Price

	originalPrice := request.OriginalPrice
	if originalPrice == 0 {
		originalPrice = price
	}

	planType := db_models.PlanType(request.Type)
	if planType == "" {
		planType = db_models.PlanMonthly
	}

	cta := request.CTA
	if cta == "" {
		cta = "Get Plan"
	}

	features := request.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, _ := json.Marshal(features)

	return &db_models.Plan{
		Name:          request.Name,
		Description:   request.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		Type:          planType,
		Features:      featuresJSON,
		CTA:           cta,
		Popular:       request.Popular,
	}
}

func toPlanResponse(plan *db_models.Plan) response_models.PlanResponse {
	features := []string{}
	if len(plan.Features) > 0 {
		_ = json.Unmarshal(plan.Features, &features)
	}

	return response_models.PlanResponse{
		ID:            plan.ID,
		Name:          plan.Name,
		Description:   plan.Description,
		Price:         plan.Price,
		OriginalPrice: plan.OriginalPrice,
		Type:          string(plan.Type),
		Features:      features,
		CTA:           plan.CTA,
		Popular:       plan.Popular,
		CreatedAt:     plan.CreatedAt,
	}
}
