package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"menulink/internal/models/db_models"
	"menulink/internal/models/response_models"
)

type IRestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (*db_models.Restaurant, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Restaurant, error)
	Insert(ctx context.Context, restaurant *db_models.Restaurant) error
	UpdateMembership(ctx context.Context, id uint, membershipType db_models.MembershipType, expiryDate *int64) error
	ListAllWithOwner(ctx context.Context) ([]response_models.AdminRestaurantRow, error)
}

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) IRestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*db_models.Restaurant, error) {
	var restaurant db_models.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &restaurant, nil
}

func (r *RestaurantRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Restaurant, error) {
	var restaurant db_models.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &restaurant, nil
}

func (r *RestaurantRepository) Insert(ctx context.Context, restaurant *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *RestaurantRepository) UpdateMembership(ctx context.Context, id uint, membershipType db_models.MembershipType, expiryDate *int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"membership_type": membershipType,
			"expiry_date":     expiryDate,
		}).Error
}

func (r *RestaurantRepository) ListAllWithOwner(ctx context.Context) ([]response_models.AdminRestaurantRow, error) {
	var rows []response_models.AdminRestaurantRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Restaurant{}).
		Select("restaurants.id, accounts.email AS owner, restaurants.slug, restaurants.name, restaurants.created_at, restaurants.membership_type, restaurants.expiry_date").
		Joins("LEFT JOIN accounts ON accounts.id = restaurants.owner").
		Order("restaurants.created_at DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}
