package stamp

import (
	"context"
	"errors"
	"fmt"

	"driverStamps/business/identity"
	"driverStamps/domain"
	"driverStamps/pkg/logger"
	"driverStamps/pkg/metrics"
)

var (
	// ErrPhoneTooShort is the identity package's phone error, so callers can
	// match either name.
	ErrPhoneTooShort = identity.ErrInvalidPhone
	ErrInvalidCount  = errors.New("stamp count must be positive")
)

// Steps of the assignment chain, used to label failures.
const (
	StepResolve = "resolve identity"
	StepUpsert  = "upsert loyalty card"
	StepLog     = "log movement"
)

// IdentityResolver contract interface
type IdentityResolver interface {
	Resolve(ctx context.Context, digits string) (domain.Identity, error)
}

// LoyaltyCardRepository contract interface
type LoyaltyCardRepository interface {
	Upsert(ctx context.Context, card *domain.LoyaltyCard) error
}

// MovementRepository contract interface
type MovementRepository interface {
	Create(ctx context.Context, movement *domain.Movement) error
}

// StepError reports which step of the chain failed. Earlier steps are not
// rolled back.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type stampService struct {
	identities IdentityResolver
	cardRepo   LoyaltyCardRepository
	moveRepo   MovementRepository
}

func NewStampService(identities IdentityResolver, cardRepo LoyaltyCardRepository, moveRepo MovementRepository) *stampService {
	return &stampService{
		identities: identities,
		cardRepo:   cardRepo,
		moveRepo:   moveRepo,
	}
}

// AssignStamps sets the card of whoever owns phone to count stamps and logs
// the movement. The card stores the literal count; six or more is a reward.
func (s *stampService) AssignStamps(ctx context.Context, phone string, count int) (domain.StampAssignment, error) {
	digits := identity.NormalizePhone(phone)
	if len(digits) < identity.PhoneDigits {
		return domain.StampAssignment{}, ErrPhoneTooShort
	}

	if count <= 0 {
		return domain.StampAssignment{}, ErrInvalidCount
	}

	if err := ctx.Err(); err != nil {
		return domain.StampAssignment{}, fmt.Errorf("context error: %w", err)
	}

	who, err := s.identities.Resolve(ctx, digits)
	if err != nil {
		return domain.StampAssignment{}, s.fail(StepResolve, digits, err)
	}

	reward := domain.IsReward(count)

	card := domain.LoyaltyCard{
		CustomerID:      who.ID,
		Stamps:          count,
		RewardAvailable: reward,
	}
	if err := s.cardRepo.Upsert(ctx, &card); err != nil {
		return domain.StampAssignment{}, s.fail(StepUpsert, digits, err)
	}

	movement := domain.NewStampMovement(who.ID, count)
	if err := s.moveRepo.Create(ctx, &movement); err != nil {
		return domain.StampAssignment{}, s.fail(StepLog, digits, err)
	}

	metrics.StampsAssigned.WithLabelValues(string(movement.Kind)).Inc()
	logger.Info("stamps assigned",
		"phone", digits,
		"identity_id", who.ID,
		"identity_kind", string(who.Kind),
		"count", count,
		"reward", reward,
	)

	return domain.StampAssignment{
		Identity:    who,
		Phone:       digits,
		Count:       count,
		Reward:      reward,
		Kind:        movement.Kind,
		Description: movement.Description,
		LastAction:  LastAction(digits, movement.Description),
	}, nil
}

// LastAction is the one-line summary shown after a successful assignment.
func LastAction(digits, description string) string {
	return digits + " • " + description
}

func (s *stampService) fail(step, digits string, err error) error {
	metrics.StampAssignmentFailures.WithLabelValues(step).Inc()
	logger.Error("stamp assignment failed", "step", step, "phone", digits, "error", err)

	return &StepError{Step: step, Err: err}
}
