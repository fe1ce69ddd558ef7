package console

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"driverStamps/business/identity"
	"driverStamps/business/stamp"
	"driverStamps/domain"
	"driverStamps/pkg/logger"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	AlertPhoneTooShort = "Enter a 10-digit number"
	AlertFailed        = "Operation failed."
)

var (
	ErrAssignmentInFlight = errors.New("a stamp assignment is already in progress")
	ErrNoSuchResult       = errors.New("no search result at that position")
)

// VibratePattern is the haptic pulse played after a successful assignment.
var VibratePattern = []int{50, 30, 50}

// Searcher contract interface
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.IdentityMatch, error)
}

// StampAssigner contract interface
type StampAssigner interface {
	AssignStamps(ctx context.Context, phone string, count int) (domain.StampAssignment, error)
}

// FeedLoader contract interface
type FeedLoader interface {
	Recent(ctx context.Context) (domain.ActivityFeed, error)
}

type Options struct {
	SearchDebounce time.Duration
	SearchTimeout  time.Duration
	SuccessReset   time.Duration
	MinQueryLength int
	Scheduler      Scheduler
}

// State is a copy of what the driver page renders.
type State struct {
	Phone       string                 `json:"phone"`
	Query       string                 `json:"query"`
	Results     []domain.IdentityMatch `json:"results"`
	Searching   bool                   `json:"searching"`
	Status      Status                 `json:"status"`
	Busy        bool                   `json:"busy"`
	LastAction  string                 `json:"last_action"`
	Alert       string                 `json:"alert,omitempty"`
	Vibrate     []int                  `json:"vibrate,omitempty"`
	FocusSearch bool                   `json:"focus_search"`
	Feed        domain.ActivityFeed    `json:"feed"`
}

// Console holds one driver's page state. All methods are safe for
// concurrent use.
type Console struct {
	mu       sync.Mutex
	searcher Searcher
	assigner StampAssigner
	feed     FeedLoader
	opts     Options

	search *Debouncer
	reset  *Debouncer

	state    State
	inFlight bool
}

func NewConsole(searcher Searcher, assigner StampAssigner, feed FeedLoader, opts Options) *Console {
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = identity.DefaultMinQueryLength
	}
	if opts.SearchTimeout <= 0 {
		opts.SearchTimeout = 10 * time.Second
	}

	return &Console{
		searcher: searcher,
		assigner: assigner,
		feed:     feed,
		opts:     opts,
		search:   NewDebouncer(opts.SearchDebounce, opts.Scheduler),
		reset:    NewDebouncer(opts.SuccessReset, opts.Scheduler),
		state: State{
			Status:      StatusIdle,
			FocusSearch: true,
		},
	}
}

// Type records the search text, derives the phone from it and schedules a
// search for when typing pauses.
func (c *Console) Type(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Query = query
	c.state.Phone = DerivePhone(query)
	c.state.FocusSearch = false
	// a search still running for the previous text is cancelled below
	c.state.Searching = false

	c.search.Schedule(func(ctx context.Context) {
		c.runSearch(ctx, query)
	})
}

func (c *Console) runSearch(ctx context.Context, query string) {
	if utf8.RuneCountInString(query) < c.opts.MinQueryLength {
		c.mu.Lock()
		if ctx.Err() == nil {
			c.state.Results = nil
			c.state.Searching = false
		}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.state.Searching = true
	c.mu.Unlock()

	sctx, cancel := context.WithTimeout(ctx, c.opts.SearchTimeout)
	defer cancel()

	results, err := c.searcher.Search(sctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	// superseded by a newer keystroke, selection or clear
	if ctx.Err() != nil {
		return
	}

	c.state.Searching = false
	if err != nil {
		logger.Warn("identity search failed", "query", query, "error", err)
		c.state.Results = nil
		return
	}
	c.state.Results = results
}

// Select fills the phone from the result at index and hides the search.
func (c *Console) Select(index int) (domain.IdentityMatch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.state.Results) {
		return domain.IdentityMatch{}, ErrNoSuchResult
	}

	match := c.state.Results[index]
	c.search.Cancel()
	c.state.Phone = match.Phone
	c.state.Query = ""
	c.state.Results = nil
	c.state.Searching = false

	return match, nil
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.search.Cancel()
	c.clearInputLocked()
}

// AssignStamps runs the assignment for the tracked phone. Only one assignment
// may be in flight per console.
func (c *Console) AssignStamps(ctx context.Context, count int) (domain.StampAssignment, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return domain.StampAssignment{}, ErrAssignmentInFlight
	}

	phone := c.state.Phone
	if len(identity.NormalizePhone(phone)) < identity.PhoneDigits {
		c.state.Alert = AlertPhoneTooShort
		c.mu.Unlock()
		return domain.StampAssignment{}, stamp.ErrPhoneTooShort
	}

	c.inFlight = true
	c.reset.Cancel()
	c.state.Status = StatusLoading
	c.state.FocusSearch = false
	c.mu.Unlock()

	result, err := c.assigner.AssignStamps(ctx, phone, count)

	c.mu.Lock()
	c.inFlight = false
	if err != nil {
		c.state.Status = StatusError
		c.state.Alert = AlertFailed
		c.mu.Unlock()

		logger.Error("Failed to assign stamps", "phone", phone, "count", count, "error", err)
		return domain.StampAssignment{}, fmt.Errorf("failed to assign stamps: %w", err)
	}

	c.state.Status = StatusSuccess
	c.state.LastAction = result.LastAction
	c.state.Vibrate = VibratePattern
	c.reset.Schedule(func(context.Context) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.search.Cancel()
		c.clearInputLocked()
		c.state.Status = StatusIdle
		c.state.FocusSearch = true
	})
	c.mu.Unlock()

	c.Refresh(ctx)

	return result, nil
}

// Refresh reloads the activity feed. A failed load keeps the previous feed.
func (c *Console) Refresh(ctx context.Context) {
	feed, err := c.feed.Recent(ctx)
	if err != nil {
		logger.Warn("Failed to refresh activity feed", "error", err)
		return
	}

	c.mu.Lock()
	c.state.Feed = feed
	c.mu.Unlock()
}

// Snapshot returns the current state. The alert and the vibrate pattern are
// delivered once.
func (c *Console) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Busy = c.inFlight
	s.Results = append([]domain.IdentityMatch(nil), c.state.Results...)

	c.state.Alert = ""
	c.state.Vibrate = nil

	return s
}

// Close stops every pending timer.
func (c *Console) Close() {
	c.search.Cancel()
	c.reset.Cancel()
}

func (c *Console) clearInputLocked() {
	c.state.Query = ""
	c.state.Phone = ""
	c.state.Results = nil
	c.state.Searching = false
}
