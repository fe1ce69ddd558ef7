package identity

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"driverStamps/domain"
	"driverStamps/pkg/logger"
	"driverStamps/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultMinQueryLength = 3
	DefaultResultLimit    = 5

	// NewCustomerName is stored for customers created on their first stamp.
	NewCustomerName = "New Customer"
)

var ErrInvalidPhone = errors.New("phone must have at least 10 digits")

// CustomerRepository contract interface
type CustomerRepository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Customer, error)
	FindByPhones(ctx context.Context, phones []string) (domain.Customer, bool, error)
	Create(ctx context.Context, customer *domain.Customer) error
}

// RestaurantRepository contract interface
type RestaurantRepository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Restaurant, error)
	FindByPhones(ctx context.Context, phones []string) (domain.Restaurant, bool, error)
}

type identityService struct {
	customerRepo   CustomerRepository
	restaurantRepo RestaurantRepository
	minQueryLength int
	resultLimit    int
}

func NewIdentityService(customerRepo CustomerRepository, restaurantRepo RestaurantRepository, minQueryLength, resultLimit int) *identityService {
	if minQueryLength <= 0 {
		minQueryLength = DefaultMinQueryLength
	}
	if resultLimit <= 0 {
		resultLimit = DefaultResultLimit
	}

	return &identityService{
		customerRepo:   customerRepo,
		restaurantRepo: restaurantRepo,
		minQueryLength: minQueryLength,
		resultLimit:    resultLimit,
	}
}

// Search looks the query up by name or phone in both identity tables at once.
// Customers come first and the merged list is cut to the result limit.
func (s *identityService) Search(ctx context.Context, query string) ([]domain.IdentityMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if utf8.RuneCountInString(query) < s.minQueryLength {
		return nil, nil
	}

	start := time.Now()
	defer func() {
		metrics.IdentitySearchDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		customers   []domain.Customer
		restaurants []domain.Restaurant
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.customerRepo.Search(gctx, query, s.resultLimit)
		return err
	})
	g.Go(func() error {
		var err error
		restaurants, err = s.restaurantRepo.Search(gctx, query, s.resultLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to search identities: %w", err)
	}

	matches := make([]domain.IdentityMatch, 0, len(customers)+len(restaurants))
	for _, c := range customers {
		matches = append(matches, c.Match())
	}
	for _, r := range restaurants {
		matches = append(matches, r.Match())
	}

	if len(matches) > s.resultLimit {
		matches = matches[:s.resultLimit]
	}

	return matches, nil
}

// Resolve maps a normalized phone to a customer, then a restaurant, and
// creates a customer when neither table knows the number.
func (s *identityService) Resolve(ctx context.Context, digits string) (domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return domain.Identity{}, fmt.Errorf("context error: %w", err)
	}

	if len(digits) < PhoneDigits {
		return domain.Identity{}, ErrInvalidPhone
	}

	variants := PhoneVariants(digits)

	customer, ok, err := s.customerRepo.FindByPhones(ctx, variants)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to look up customer: %w", err)
	}
	if ok {
		return domain.Identity{
			ID:    customer.ID,
			Name:  customer.Name,
			Phone: customer.Phone,
			Kind:  domain.IdentityCustomer,
		}, nil
	}

	restaurant, ok, err := s.restaurantRepo.FindByPhones(ctx, variants)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to look up restaurant: %w", err)
	}
	if ok {
		return domain.Identity{
			ID:    restaurant.ID,
			Name:  restaurant.Name,
			Phone: restaurant.Phone,
			Kind:  domain.IdentityRestaurant,
		}, nil
	}

	newCustomer := domain.Customer{
		Name:  NewCustomerName,
		Phone: digits,
	}
	if err := s.customerRepo.Create(ctx, &newCustomer); err != nil {
		return domain.Identity{}, fmt.Errorf("failed to create customer: %w", err)
	}

	metrics.IdentitiesCreated.Inc()
	logger.Info("customer created on first stamp", "customer_id", newCustomer.ID, "phone", digits)

	return domain.Identity{
		ID:      newCustomer.ID,
		Name:    newCustomer.Name,
		Phone:   newCustomer.Phone,
		Kind:    domain.IdentityCustomer,
		Created: true,
	}, nil
}
