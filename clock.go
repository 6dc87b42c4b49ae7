package arcscroll

import "time"

// Clock abstracts the time source used for fades, animated moves, the
// auto-hide delay, and the edge cooldown. Production code uses SystemClock;
// tests substitute a manually advanced clock to make every timer and
// animation deterministic.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules f to run after d elapses on the clock and
	// returns a Timer that can cancel the call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled callback created by Clock.AfterFunc.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the
	// call was stopped before it ran. Callers must not rely on Stop
	// alone for correctness: every timer callback re-checks a generation
	// counter, so a callback that slips through is still a no-op.
	Stop() bool
}

// SystemClock returns the Clock backed by the runtime's timers.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return systemTimer{time.AfterFunc(d, f)}
}

type systemTimer struct{ t *time.Timer }

func (st systemTimer) Stop() bool { return st.t.Stop() }
