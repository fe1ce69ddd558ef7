package console

import (
	"context"
	"errors"
	"testing"

	"driverStamps/business/stamp"
	"driverStamps/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePhone(t *testing.T) {
	assert.Equal(t, "5512345678", DerivePhone("55 1234 5678"))
	assert.Equal(t, "", DerivePhone("551234567"))
	assert.Equal(t, "", DerivePhone("+52 55 1234 5678"))
	assert.Equal(t, "", DerivePhone("ana"))
}

func TestType_ShortQueryNeverSearches(t *testing.T) {
	c, sched, searcher, _, _ := newTestConsole()

	c.Type("an")
	sched.fireAll()

	assert.Empty(t, searcher.calls())
	assert.Empty(t, c.Snapshot().Results)
}

func TestType_KeystrokeCancelsPendingSearch(t *testing.T) {
	c, sched, searcher, _, _ := newTestConsole()
	searcher.results = []domain.IdentityMatch{{ID: "c1", Name: "Ana", Phone: "5511111111", Kind: domain.IdentityCustomer}}

	c.Type("ana")
	c.Type("ana l")
	assert.Empty(t, searcher.calls())
	require.Len(t, sched.pending(), 1)

	sched.fireAll()

	assert.Equal(t, []string{"ana l"}, searcher.calls())
	state := c.Snapshot()
	assert.Len(t, state.Results, 1)
	assert.False(t, state.Searching)
}

func TestType_TracksPhoneFromQuery(t *testing.T) {
	c, _, _, _, _ := newTestConsole()

	c.Type("5512345678")
	assert.Equal(t, "5512345678", c.Snapshot().Phone)

	c.Type("551234567")
	assert.Equal(t, "", c.Snapshot().Phone)
}

func TestType_SearchErrorDegradesToEmpty(t *testing.T) {
	c, sched, searcher, _, _ := newTestConsole()
	searcher.results = []domain.IdentityMatch{{ID: "c1", Name: "Ana", Phone: "5511111111"}}

	c.Type("ana")
	sched.fireAll()
	require.Len(t, c.Snapshot().Results, 1)

	searcher.mu.Lock()
	searcher.err = errors.New("backend down")
	searcher.mu.Unlock()

	c.Type("anab")
	sched.fireAll()

	state := c.Snapshot()
	assert.Empty(t, state.Results)
	assert.Empty(t, state.Alert)
	assert.False(t, state.Searching)
}

func TestType_SupersededSearchIsDropped(t *testing.T) {
	c, sched, searcher, _, _ := newTestConsole()
	searcher.results = []domain.IdentityMatch{{ID: "c1", Phone: "5511111111"}}
	searcher.during = func() { c.Clear() }

	c.Type("ana")
	sched.fireAll()

	assert.Empty(t, c.Snapshot().Results)
}

func TestType_ShortQueryAfterRunningSearchStopsSearching(t *testing.T) {
	c, sched, searcher, _, _ := newTestConsole()
	searcher.during = func() { c.Type("an") }

	c.Type("ana")
	sched.fireAll()

	state := c.Snapshot()
	assert.Equal(t, "an", state.Query)
	assert.False(t, state.Searching)

	// the short query's own task
	sched.fireAll()

	state = c.Snapshot()
	assert.False(t, state.Searching)
	assert.Empty(t, state.Results)
	assert.Equal(t, []string{"ana"}, searcher.calls())
}

func TestSelect(t *testing.T) {
	c, sched, searcher, _, _ := newTestConsole()
	searcher.results = []domain.IdentityMatch{
		{ID: "c1", Name: "Ana", Phone: "5511111111", Kind: domain.IdentityCustomer},
		{ID: "r1", Name: "Tacos Ana", Phone: "+525522222222", Kind: domain.IdentityRestaurant},
	}

	c.Type("ana")
	sched.fireAll()

	_, err := c.Select(5)
	assert.ErrorIs(t, err, ErrNoSuchResult)

	match, err := c.Select(1)
	require.NoError(t, err)
	assert.Equal(t, "r1", match.ID)

	state := c.Snapshot()
	assert.Equal(t, "+525522222222", state.Phone)
	assert.Empty(t, state.Query)
	assert.Empty(t, state.Results)
}

func TestClear(t *testing.T) {
	c, sched, searcher, _, _ := newTestConsole()

	c.Type("5512345678")
	c.Clear()
	sched.fireAll()

	state := c.Snapshot()
	assert.Empty(t, state.Query)
	assert.Empty(t, state.Phone)
	assert.Empty(t, searcher.calls())
}

func TestAssignStamps_ShortPhoneAlertsOnly(t *testing.T) {
	c, _, _, assigner, feed := newTestConsole()

	c.Type("55123")
	_, err := c.AssignStamps(context.Background(), 3)
	assert.ErrorIs(t, err, stamp.ErrPhoneTooShort)
	assert.Zero(t, assigner.callCount())
	assert.Zero(t, feed.loads)

	state := c.Snapshot()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Equal(t, AlertPhoneTooShort, state.Alert)

	// one-shot
	assert.Empty(t, c.Snapshot().Alert)
}

func TestAssignStamps_SuccessThenReset(t *testing.T) {
	c, sched, _, assigner, feed := newTestConsole()

	c.Type("5512345678")
	sched.fireAll()

	got, err := c.AssignStamps(context.Background(), 6)
	require.NoError(t, err)
	assert.True(t, got.Reward)
	assert.Equal(t, 1, assigner.callCount())
	assert.Equal(t, 1, feed.loads)

	state := c.Snapshot()
	assert.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, "5512345678 • Redeemed Reward", state.LastAction)
	assert.Equal(t, []int{50, 30, 50}, state.Vibrate)
	assert.Equal(t, 1, state.Feed.Today)
	assert.Equal(t, "5512345678", state.Phone)

	require.Len(t, sched.pending(), 1)
	sched.fireAll()

	state = c.Snapshot()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Empty(t, state.Phone)
	assert.Empty(t, state.Query)
	assert.True(t, state.FocusSearch)
	assert.Nil(t, state.Vibrate)
	assert.Equal(t, "5512345678 • Redeemed Reward", state.LastAction)
}

func TestAssignStamps_Failure(t *testing.T) {
	c, _, _, assigner, feed := newTestConsole()
	assigner.err = errors.New("upsert failed")

	c.Type("5512345678")
	_, err := c.AssignStamps(context.Background(), 2)
	require.Error(t, err)

	state := c.Snapshot()
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, AlertFailed, state.Alert)
	assert.Equal(t, "5512345678", state.Phone)
	assert.Zero(t, feed.loads)
}

func TestAssignStamps_RejectsWhileInFlight(t *testing.T) {
	c, _, _, assigner, _ := newTestConsole()
	assigner.block = make(chan struct{})
	assigner.began = make(chan struct{}, 1)

	c.Type("5512345678")

	done := make(chan error, 1)
	go func() {
		_, err := c.AssignStamps(context.Background(), 1)
		done <- err
	}()
	<-assigner.began

	assert.True(t, c.Snapshot().Busy)
	assert.Equal(t, StatusLoading, c.Snapshot().Status)

	_, err := c.AssignStamps(context.Background(), 2)
	assert.ErrorIs(t, err, ErrAssignmentInFlight)

	close(assigner.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, assigner.callCount())
	assert.False(t, c.Snapshot().Busy)
}

func TestRefresh_KeepsFeedOnError(t *testing.T) {
	c, _, _, _, feed := newTestConsole()

	c.Refresh(context.Background())
	assert.Equal(t, 1, c.Snapshot().Feed.Today)

	feed.mu.Lock()
	feed.fail = true
	feed.mu.Unlock()

	c.Refresh(context.Background())
	assert.Equal(t, 1, c.Snapshot().Feed.Today)
}
