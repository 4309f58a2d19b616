package game

import (
	"fmt"
	"time"
)

// Clock accumulates one player's thinking time for the banner row. It
// is display-only: nothing in scope forfeits on time.
type Clock struct {
	elapsed time.Duration
	running bool
	since   time.Time
}

// NewClock returns a paused clock at zero.
func NewClock() *Clock {
	return &Clock{}
}

// Start resumes the clock. Starting a running clock is a no-op.
func (cl *Clock) Start() {
	if cl.running {
		return
	}
	cl.running = true
	cl.since = time.Now()
}

// Pause stops the clock and banks the elapsed time.
func (cl *Clock) Pause() {
	if !cl.running {
		return
	}
	cl.elapsed += time.Since(cl.since)
	cl.running = false
}

// Elapsed returns the total thinking time so far.
func (cl *Clock) Elapsed() time.Duration {
	if cl.running {
		return cl.elapsed + time.Since(cl.since)
	}
	return cl.elapsed
}

// String formats the elapsed time as M:SS.
func (cl *Clock) String() string {
	e := cl.Elapsed()
	return fmt.Sprintf("%d:%02d", int(e.Minutes()), int(e.Seconds())%60)
}
