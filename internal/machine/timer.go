package machine

import (
	"context"
	"time"
)

// Timer is a periodic tick source.
type Timer struct {
	interval time.Duration
}

// NewTimer returns a timer firing hz times per second.
func NewTimer(hz int) *Timer {
	return &Timer{interval: time.Second / time.Duration(hz)}
}

// Interval returns the tick period.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// C starts the ticker and returns its channel with a stop function.
func (t *Timer) C() (<-chan time.Time, func()) {
	tk := time.NewTicker(t.interval)
	return tk.C, tk.Stop
}

// Run calls fn on every tick until ctx is done.
func (t *Timer) Run(ctx context.Context, fn func()) error {
	c, stop := t.C()
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c:
			fn()
		}
	}
}
