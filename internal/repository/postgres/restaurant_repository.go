package postgres

import (
	"context"
	"errors"
	"fmt"

	"driverStamps/domain"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{
		DB: db,
	}
}

func (r *RestaurantRepository) Search(ctx context.Context, term string, limit int) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant

	pattern := containsPattern(term)
	err := r.DB.WithContext(ctx).
		Select("id", "nombre", "telefono").
		Where(identitySearchClause, pattern, pattern).
		Limit(limit).
		Find(&restaurants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search restaurantes: %w", err)
	}

	return restaurants, nil
}

func (r *RestaurantRepository) FindByPhones(ctx context.Context, phones []string) (domain.Restaurant, bool, error) {
	var restaurant domain.Restaurant

	err := r.DB.WithContext(ctx).
		Where("telefono IN ?", phones).
		Limit(1).
		Take(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Restaurant{}, false, nil
		}
		return domain.Restaurant{}, false, fmt.Errorf("failed to find restaurante by phone: %w", err)
	}

	return restaurant, true, nil
}
