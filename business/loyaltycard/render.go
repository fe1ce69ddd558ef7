// Package loyaltycard turns a stamp count into what the punch card shows.
// It has no backend access; callers pass the count they already know.
package loyaltycard

import (
	"math"
	"strconv"

	"driverStamps/domain"
)

const (
	TotalSlots  = domain.RewardThreshold
	RingRadius  = 45.0
	FilledLabel = "✓"
)

// Render is pure. Counts above the threshold render as a full card, negative
// counts as an empty one.
func Render(stamps int, loading bool) domain.LoyaltyCardView {
	shown := min(max(stamps, 0), TotalSlots)

	cells := make([]domain.StampCell, TotalSlots)
	for i := range cells {
		filled := i < shown
		label := strconv.Itoa(i + 1)
		if filled {
			label = FilledLabel
		}
		cells[i] = domain.StampCell{Index: i, Filled: filled, Label: label}
	}

	progress := math.Min(float64(shown)/float64(TotalSlots)*100, 100)
	circumference := 2 * math.Pi * RingRadius
	unlocked := domain.IsReward(stamps)

	remaining := 0
	if !unlocked {
		remaining = TotalSlots - shown
	}

	return domain.LoyaltyCardView{
		Stamps:         stamps,
		TotalSlots:     TotalSlots,
		Loading:        loading,
		Cells:          cells,
		Progress:       progress,
		Percent:        int(math.Round(progress)),
		Remaining:      remaining,
		RewardUnlocked: unlocked,
		Radius:         RingRadius,
		Circumference:  circumference,
		DashOffset:     circumference - progress/100*circumference,
	}
}
