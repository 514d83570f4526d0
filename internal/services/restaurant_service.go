package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"menulink/internal/models/db_models"
	"menulink/internal/models/request_models"
	"menulink/internal/models/response_models"
	"menulink/internal/repositories"
	"menulink/pkg/utils"
)

type RestaurantServiceInterface interface {
	CreateRestaurant(ctx context.Context, ownerEmail string, request request_models.CreateRestaurantRequest) (*response_models.RestaurantResponse, error)
	CheckSlug(ctx context.Context, slug string) (*response_models.RestaurantResponse, error)
	PublicData(ctx context.Context, slug string) (*response_models.RestaurantResponse, error)
	MembershipStatus(ctx context.Context, slug string) (response_models.MembershipStatusResponse, error)
	OverrideMembership(ctx context.Context, restaurantID uint, request request_models.MembershipOverrideRequest) error
	ListAll(ctx context.Context) ([]response_models.AdminRestaurantRow, error)
}

type RestaurantService struct {
	restaurantRepo repositories.IRestaurantRepository
	accountRepo    repositories.IAccountRepository
}

func NewRestaurantService(restaurantRepo repositories.IRestaurantRepository, accountRepo repositories.IAccountRepository) RestaurantServiceInterface {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		accountRepo:    accountRepo,
	}
}

// CreateRestaurant seeds a fresh trial membership: three days from now.
func (r *RestaurantService) CreateRestaurant(ctx context.Context, ownerEmail string, request request_models.CreateRestaurantRequest) (*response_models.RestaurantResponse, error) {

	account, err := r.accountRepo.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	existing, err := r.restaurantRepo.FindBySlug(ctx, request.Slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSlugTaken
	}

	expiry := utils.NowUnixMillis() + utils.TrialPeriodMillis

	restaurant := &db_models.Restaurant{
		Owner:          account.ID,
		Name:           request.Name,
		Slug:           request.Slug,
		MembershipType: db_models.MembershipTrial,
		ExpiryDate:     &expiry,
	}
	if len(request.Settings) > 0 {
		restaurant.Settings = datatypes.JSON(request.Settings)
	}

	if err := r.restaurantRepo.Insert(ctx, restaurant); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RestaurantResponse{
		ID:   restaurant.ID,
		Name: restaurant.Name,
		Slug: restaurant.Slug,
	}, nil
}

func (r *RestaurantService) CheckSlug(ctx context.Context, slug string) (*response_models.RestaurantResponse, error) {

	restaurant, err := r.restaurantRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, nil
	}

	return toRestaurantResponse(restaurant), nil
}

// PublicData serves the public menu page. The membership gate applies here:
// a present, past expiry blocks access unless the tier is lifetime.
func (r *RestaurantService) PublicData(ctx context.Context, slug string) (*response_models.RestaurantResponse, error) {

	restaurant, err := r.restaurantRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	if BlocksPublicAccess(restaurant.MembershipType, restaurant.ExpiryDate, utils.NowUnixMillis()) {
		return nil, utils.ErrMembershipExpired
	}

	return &response_models.RestaurantResponse{
		ID:       restaurant.ID,
		Slug:     restaurant.Slug,
		Name:     restaurant.Name,
		Settings: json.RawMessage(restaurant.Settings),
	}, nil
}

func (r *RestaurantService) MembershipStatus(ctx context.Context, slug string) (response_models.MembershipStatusResponse, error) {

	restaurant, err := r.restaurantRepo.FindBySlug(ctx, slug)
	if err != nil {
		return response_models.MembershipStatusResponse{}, utils.ErrDatabaseError
	}
	if restaurant == nil {
		return response_models.MembershipStatusResponse{}, utils.ErrRestaurantNotFound
	}

	status := ClassifyMembership(restaurant.MembershipType, restaurant.ExpiryDate, utils.NowUnixMillis())
	return status.ToResponse(), nil
}

func (r *RestaurantService) OverrideMembership(ctx context.Context, restaurantID uint, request request_models.MembershipOverrideRequest) error {

	restaurant, err := r.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if restaurant == nil {
		return utils.ErrRestaurantNotFound
	}

	err = r.restaurantRepo.UpdateMembership(ctx, restaurantID,
		db_models.MembershipType(request.MembershipType), request.ExpiryDate)
	if err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (r *RestaurantService) ListAll(ctx context.Context) ([]response_models.AdminRestaurantRow, error) {

	rows, err := r.restaurantRepo.ListAllWithOwner(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return rows, nil
}

func toRestaurantResponse(restaurant *db_models.Restaurant) *response_models.RestaurantResponse {
	return &response_models.RestaurantResponse{
		ID:             restaurant.ID,
		Name:           restaurant.Name,
		Slug:           restaurant.Slug,
		Owner:          restaurant.Owner,
		Domain:         restaurant.Domain,
		Logo:           restaurant.Logo,
		Description:    restaurant.Description,
		Favicon:        restaurant.Favicon,
		WhatsAppNumber: restaurant.WhatsAppNumber,
		MembershipType: string(restaurant.MembershipType),
		ExpiryDate:     restaurant.ExpiryDate,
		Settings:       json.RawMessage(restaurant.Settings),
	}
}
