package postgres

import (
	"context"
	"fmt"

	"driverStamps/domain"

	"gorm.io/gorm"
)

type MovementRepository struct {
	DB *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{
		DB: db,
	}
}

func (r *MovementRepository) Create(ctx context.Context, movement *domain.Movement) error {
	if err := r.DB.WithContext(ctx).Create(movement).Error; err != nil {
		return fmt.Errorf("failed to insert movimiento: %w", err)
	}

	return nil
}

// FindRecent returns up to limit movements, newest first.
func (r *MovementRepository) FindRecent(ctx context.Context, limit int) ([]domain.Movement, error) {
	var movements []domain.Movement

	err := r.DB.WithContext(ctx).
		Order("fecha DESC").
		Limit(limit).
		Find(&movements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load movimientos: %w", err)
	}

	return movements, nil
}
