package postgres

import (
	"context"
	"fmt"

	"driverStamps/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoyaltyCardRepository struct {
	DB *gorm.DB
}

func NewLoyaltyCardRepository(db *gorm.DB) *LoyaltyCardRepository {
	return &LoyaltyCardRepository{
		DB: db,
	}
}

// Upsert writes the card keyed by cliente_id. An existing card is overwritten
// with the given count, never incremented.
func (r *LoyaltyCardRepository) Upsert(ctx context.Context, card *domain.LoyaltyCard) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cliente_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"sellos_aumulados", "recompensa_disponible"}),
		}).
		Create(card).Error
	if err != nil {
		return fmt.Errorf("failed to upsert tarjeta_lealtad: %w", err)
	}

	return nil
}
