package cursor

import "time"

// DefaultInterval is the caret throttle window.
const DefaultInterval = 40 * time.Millisecond

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a pending callback that can be stopped. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d. Callbacks must run on the same goroutine that
// drives the Broadcaster.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Broadcaster coalesces local caret changes into at most one emit per
// interval. It is not safe for concurrent use.
type Broadcaster struct {
	lastSentAt time.Time
	clock      Clock
	sched      Scheduler
	timer      Timer
	position   func() int
	emit       func(pos int)
	interval   time.Duration
	generation uint64
	lastSent   int
	hasSent    bool
	pending    bool
}

// NewBroadcaster creates a broadcaster that reads the caret with position and
// sends it with emit.
func NewBroadcaster(interval time.Duration, clock Clock, sched Scheduler, position func() int, emit func(pos int)) *Broadcaster {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Broadcaster{
		interval: interval,
		clock:    clock,
		sched:    sched,
		position: position,
		emit:     emit,
	}
}

// Schedule requests a caret broadcast. With force the pending timer is
// cancelled, the throttle state is forgotten and the caret is sent right
// away. Otherwise the caret is sent now if the window has passed, or a single
// timer is armed for the rest of the window.
func (b *Broadcaster) Schedule(force bool) {
	if force {
		b.stop()
		b.hasSent = false
		b.lastSentAt = time.Time{}
		b.send()
		return
	}

	if b.pending {
		// таймер уже взведен, он прочитает актуальную позицию
		return
	}

	elapsed := b.clock.Now().Sub(b.lastSentAt)
	if b.lastSentAt.IsZero() || elapsed >= b.interval {
		b.send()
		return
	}
	b.arm(b.interval - elapsed)
}

// Flush sends a pending caret now.
func (b *Broadcaster) Flush() {
	if !b.pending {
		return
	}
	b.stop()
	b.send()
}

// Cancel drops a pending broadcast. Used when the editor loses focus.
func (b *Broadcaster) Cancel() {
	b.stop()
}

// Pending reports whether a timer is armed.
func (b *Broadcaster) Pending() bool {
	return b.pending
}

func (b *Broadcaster) arm(d time.Duration) {
	b.generation++
	gen := b.generation
	b.pending = true
	b.timer = b.sched.AfterFunc(d, func() { b.fire(gen) })
}

func (b *Broadcaster) fire(gen uint64) {
	if gen != b.generation || !b.pending {
		return
	}
	b.pending = false
	b.timer = nil
	b.send()
}

func (b *Broadcaster) stop() {
	b.generation++
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = nil
	b.pending = false
}

func (b *Broadcaster) send() {
	pos := b.position()
	if b.hasSent && pos == b.lastSent {
		return
	}
	b.lastSent = pos
	b.hasSent = true
	b.lastSentAt = b.clock.Now()
	b.emit(pos)
}
