package activity

import (
	"context"
	"fmt"
	"time"

	"driverStamps/domain"
	"driverStamps/pkg/logger"
)

const (
	DefaultHistoryLimit = 20
	DefaultRecentLimit  = 5
)

// MovementRepository contract interface
type MovementRepository interface {
	FindRecent(ctx context.Context, limit int) ([]domain.Movement, error)
}

type activityService struct {
	moveRepo     MovementRepository
	historyLimit int
	recentLimit  int
	location     *time.Location
	now          func() time.Time
}

func NewActivityService(moveRepo MovementRepository, historyLimit, recentLimit int, location *time.Location) *activityService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	if location == nil {
		location = time.Local
	}

	return &activityService{
		moveRepo:     moveRepo,
		historyLimit: historyLimit,
		recentLimit:  recentLimit,
		location:     location,
		now:          time.Now,
	}
}

// Recent loads the newest movements and counts the ones made "today".
func (s *activityService) Recent(ctx context.Context) (domain.ActivityFeed, error) {
	if err := ctx.Err(); err != nil {
		return domain.ActivityFeed{}, fmt.Errorf("context error: %w", err)
	}

	entries, err := s.moveRepo.FindRecent(ctx, s.historyLimit)
	if err != nil {
		logger.Error("Failed to load recent movements", err)
		return domain.ActivityFeed{}, fmt.Errorf("failed to load movements: %w", err)
	}

	recent := entries
	if len(recent) > s.recentLimit {
		recent = recent[:s.recentLimit]
	}

	return domain.ActivityFeed{
		Entries: entries,
		Recent:  recent,
		Today:   CountToday(entries, s.now().In(s.location), s.location),
	}, nil
}

// CountToday counts entries whose day of the month matches now's. Month and
// year are ignored, so entries from the same day of an earlier month count too.
func CountToday(entries []domain.Movement, now time.Time, loc *time.Location) int {
	today := now.In(loc).Day()

	n := 0
	for _, e := range entries {
		if e.Date.In(loc).Day() == today {
			n++
		}
	}

	return n
}
