package postgres

import (
	"context"
	"errors"
	"fmt"

	"driverStamps/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

func (r *CustomerRepository) Search(ctx context.Context, term string, limit int) ([]domain.Customer, error) {
	var customers []domain.Customer

	pattern := containsPattern(term)
	err := r.DB.WithContext(ctx).
		Select("id", "nombre", "telefono").
		Where(identitySearchClause, pattern, pattern).
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search clientes: %w", err)
	}

	return customers, nil
}

// FindByPhones returns the first customer stored under any of phones.
func (r *CustomerRepository) FindByPhones(ctx context.Context, phones []string) (domain.Customer, bool, error) {
	var customer domain.Customer

	err := r.DB.WithContext(ctx).
		Where("telefono IN ?", phones).
		Limit(1).
		Take(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, false, nil
		}
		return domain.Customer{}, false, fmt.Errorf("failed to find cliente by phone: %w", err)
	}

	return customer, true, nil
}

// Create inserts the customer and fills in the id the backend generated.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if err := r.DB.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create cliente: %w", err)
	}

	return nil
}
