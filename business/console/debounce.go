package console

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs f after d and returns a function that stops it.
type Scheduler func(d time.Duration, f func()) (stop func() bool)

func TimerScheduler(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Debouncer keeps at most one outstanding task. Scheduling a new task stops
// the pending timer and cancels the context of a task already running.
type Debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	schedule Scheduler

	gen    uint64
	stop   func() bool
	cancel context.CancelFunc
}

func NewDebouncer(delay time.Duration, schedule Scheduler) *Debouncer {
	if schedule == nil {
		schedule = TimerScheduler
	}

	return &Debouncer{
		delay:    delay,
		schedule: schedule,
	}
}

func (d *Debouncer) Schedule(task func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()

	ctx, cancel := context.WithCancel(context.Background())
	d.gen++
	gen := d.gen
	d.cancel = cancel

	d.stop = d.schedule(d.delay, func() {
		d.mu.Lock()
		if d.gen != gen {
			d.mu.Unlock()
			return
		}
		d.stop = nil
		d.mu.Unlock()

		task(ctx)
	})
}

// Cancel drops the pending task, if any, and cancels a running one.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
}

// Pending reports whether a task is waiting for its timer.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.stop != nil
}

func (d *Debouncer) cancelLocked() {
	d.gen++
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
