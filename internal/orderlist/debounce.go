package orderlist

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a typed search is sent.
const DefaultDebounce = 500 * time.Millisecond

// Timer is a handle to a scheduled task. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d unless the returned Timer is stopped first.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealScheduler is backed by time.AfterFunc.
var RealScheduler Scheduler = realScheduler{}

// Debouncer keeps at most one pending task. Each Trigger cancels the
// previous task and restarts the quiet period.
type Debouncer struct {
	delay time.Duration
	sched Scheduler

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	stopped bool
}

func NewDebouncer(delay time.Duration, sched Scheduler) *Debouncer {
	if sched == nil {
		sched = RealScheduler
	}
	return &Debouncer{delay: delay, sched: sched}
}

func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.sched.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A stopped timer may still fire if Stop raced with expiry.
		current := gen == d.gen && !d.stopped
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			f()
		}
	})
}

// Cancel drops the pending task, if any. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

func (d *Debouncer) cancelLocked() bool {
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}

// Stop cancels the pending task and rejects further triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
