package console

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_OnlyLastTaskRuns(t *testing.T) {
	sched := &manualScheduler{}
	d := NewDebouncer(500*time.Millisecond, sched.schedule)

	var ran []string
	d.Schedule(func(context.Context) { ran = append(ran, "first") })
	d.Schedule(func(context.Context) { ran = append(ran, "second") })

	pending := sched.pending()
	require.Len(t, pending, 1)
	assert.Equal(t, 500*time.Millisecond, pending[0].delay)
	assert.True(t, d.Pending())

	sched.fireAll()
	assert.Equal(t, []string{"second"}, ran)
	assert.False(t, d.Pending())
}

func TestDebouncer_Cancel(t *testing.T) {
	sched := &manualScheduler{}
	d := NewDebouncer(time.Second, sched.schedule)

	ran := false
	d.Schedule(func(context.Context) { ran = true })
	d.Cancel()

	assert.Empty(t, sched.pending())
	sched.fireAll()
	assert.False(t, ran)
}

func TestDebouncer_CancelsRunningTask(t *testing.T) {
	sched := &manualScheduler{}
	d := NewDebouncer(time.Second, sched.schedule)

	var running context.Context
	d.Schedule(func(ctx context.Context) { running = ctx })
	sched.fireAll()
	require.NotNil(t, running)
	assert.NoError(t, running.Err())

	d.Schedule(func(context.Context) {})
	assert.ErrorIs(t, running.Err(), context.Canceled)
}

func TestDebouncer_StaleTimerIsIgnored(t *testing.T) {
	sched := &manualScheduler{}
	d := NewDebouncer(time.Second, sched.schedule)

	ran := 0
	d.Schedule(func(context.Context) { ran++ })
	stale := sched.pending()[0]
	d.Schedule(func(context.Context) { ran += 10 })

	// a timer that fired before Stop could take effect
	stale.f()
	assert.Equal(t, 0, ran)

	sched.fireAll()
	assert.Equal(t, 10, ran)
}

func TestDebouncer_TimerScheduler(t *testing.T) {
	d := NewDebouncer(5*time.Millisecond, nil)

	done := make(chan struct{})
	d.Schedule(func(context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}
