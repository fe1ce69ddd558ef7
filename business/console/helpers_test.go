package console

import (
	"context"
	"errors"
	"sync"
	"time"

	"driverStamps/domain"
)

type manualTask struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

// manualScheduler runs tasks only when the test says so.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

func (m *manualScheduler) schedule(d time.Duration, f func()) func() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTask{delay: d, f: f}
	m.tasks = append(m.tasks, t)

	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

func (m *manualScheduler) pending() []*manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*manualTask
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

func (m *manualScheduler) fireAll() {
	tasks := m.pending()

	m.mu.Lock()
	for _, t := range tasks {
		t.fired = true
	}
	m.mu.Unlock()

	for _, t := range tasks {
		t.f()
	}
}

type fakeSearcher struct {
	mu      sync.Mutex
	queries []string
	results []domain.IdentityMatch
	err     error
	during  func()
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]domain.IdentityMatch, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	during := f.during
	f.mu.Unlock()

	if during != nil {
		during()
	}
	return f.results, f.err
}

func (f *fakeSearcher) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

type fakeAssigner struct {
	mu    sync.Mutex
	calls []string
	err   error
	block chan struct{}
	began chan struct{}
}

func (f *fakeAssigner) AssignStamps(_ context.Context, phone string, count int) (domain.StampAssignment, error) {
	f.mu.Lock()
	f.calls = append(f.calls, phone)
	f.mu.Unlock()

	if f.began != nil {
		f.began <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return domain.StampAssignment{}, f.err
	}

	desc := "Assigned 3 Stamps"
	if count >= 6 {
		desc = "Redeemed Reward"
	}
	return domain.StampAssignment{
		Phone:       phone,
		Count:       count,
		Reward:      count >= 6,
		Description: desc,
		LastAction:  phone + " • " + desc,
	}, nil
}

func (f *fakeAssigner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeFeed struct {
	mu    sync.Mutex
	loads int
	feed  domain.ActivityFeed
	fail  bool
}

func (f *fakeFeed) Recent(context.Context) (domain.ActivityFeed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.fail {
		return domain.ActivityFeed{}, errors.New("feed down")
	}
	return f.feed, nil
}

func newTestConsole() (*Console, *manualScheduler, *fakeSearcher, *fakeAssigner, *fakeFeed) {
	sched := &manualScheduler{}
	searcher := &fakeSearcher{}
	assigner := &fakeAssigner{}
	feed := &fakeFeed{feed: domain.ActivityFeed{Today: 1}}

	c := NewConsole(searcher, assigner, feed, Options{
		SearchDebounce: 500 * time.Millisecond,
		SuccessReset:   2 * time.Second,
		MinQueryLength: 3,
		Scheduler:      sched.schedule,
	})
	return c, sched, searcher, assigner, feed
}
