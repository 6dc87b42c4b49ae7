package arcscroll

import (
	"sync"
	"time"
)

// VisibilityState identifies the phase of the show/hide state machine.
type VisibilityState int

const (
	// VisibilityHidden means the scrollbar is fully transparent.
	VisibilityHidden VisibilityState = iota
	// VisibilityAppearing means a fade toward full opacity is running.
	VisibilityAppearing
	// VisibilityVisible means the scrollbar is fully opaque.
	VisibilityVisible
	// VisibilityDisappearing means a fade toward transparency is running.
	VisibilityDisappearing
)

// String returns the name of the state.
func (s VisibilityState) String() string {
	switch s {
	case VisibilityHidden:
		return "hidden"
	case VisibilityAppearing:
		return "appearing"
	case VisibilityVisible:
		return "visible"
	case VisibilityDisappearing:
		return "disappearing"
	default:
		return "unknown"
	}
}

// VisibilityConfig configures a VisibilityController.
type VisibilityConfig struct {
	// AutoHide arms a hide timer after each activity burst. When false
	// the scrollbar stays visible once shown.
	AutoHide bool

	// HideDelay is the inactivity window before a hide starts.
	HideDelay time.Duration

	// FadeDuration is the length of the opacity animation.
	FadeDuration time.Duration

	// Easing shapes the opacity animation. Nil means linear.
	Easing Easing

	// OnChange, if set, is called (without internal locks held) whenever
	// a fade starts, so the host can schedule a repaint.
	OnChange func()
}

// VisibilityController manages the scrollbar's show/hide opacity state
// machine. Activity makes the scrollbar appear and (re)arms the auto-hide
// timer; the timer fading it back out. Opacity is evaluated on read, so no
// per-frame ticker is needed.
//
// Fades are continuous and interruptible: a disappear interrupted by new
// activity reverses from the current opacity, and re-triggering an appear
// that is already running does not restart it.
type VisibilityController struct {
	mu       sync.Mutex
	clock    Clock
	autoHide bool
	delay    time.Duration
	duration time.Duration
	easing   Easing
	onChange func()

	scrollable bool

	// Fade record. When fading is false the opacity is steady at target.
	fadeFrom float64
	target   float64
	start    time.Time
	fading   bool

	// hideGen identifies the latest armed hide timer. A timer callback
	// carrying an older generation is stale and must not act: Stop alone
	// is not trusted to prevent a concurrent fire.
	hideGen   uint64
	hideTimer Timer
}

// NewVisibilityController creates a controller in the Hidden state.
// A nil clock defaults to SystemClock.
func NewVisibilityController(clock Clock, cfg VisibilityConfig) *VisibilityController {
	if clock == nil {
		clock = SystemClock()
	}
	return &VisibilityController{
		clock:    clock,
		autoHide: cfg.AutoHide,
		delay:    cfg.HideDelay,
		duration: cfg.FadeDuration,
		easing:   cfg.Easing,
		onChange: cfg.OnChange,
	}
}

// SetScrollable informs the controller whether the content can scroll at
// all. While not scrollable, activity is suppressed entirely and the state
// never leaves Hidden; becoming unscrollable while visible snaps back to
// hidden and cancels any pending hide timer.
func (v *VisibilityController) SetScrollable(scrollable bool) {
	v.mu.Lock()
	if v.scrollable == scrollable {
		v.mu.Unlock()
		return
	}
	v.scrollable = scrollable
	changed := false
	if !scrollable {
		v.hideGen++
		v.stopTimerLocked()
		if v.target != 0 || v.fading {
			v.fading = false
			v.target = 0
			v.fadeFrom = 0
			changed = true
		}
	}
	onChange := v.onChange
	v.mu.Unlock()
	if changed && onChange != nil {
		onChange()
	}
}

// Activity signals user interaction: a scroll delta, a rotary-driven move,
// or the content becoming scrollable. It starts or continues the appear
// fade and re-arms the hide timer. While the content is not scrollable the
// signal is ignored.
func (v *VisibilityController) Activity() {
	v.mu.Lock()
	if !v.scrollable {
		v.mu.Unlock()
		return
	}
	changed := false
	if v.target != 1 {
		v.beginFadeLocked(1)
		changed = true
	}

	// Latest activity wins: invalidate any pending hide timer before
	// arming a new one.
	v.hideGen++
	v.stopTimerLocked()
	if v.autoHide {
		gen := v.hideGen
		v.hideTimer = v.clock.AfterFunc(v.delay, func() { v.hideTimerFired(gen) })
	}
	onChange := v.onChange
	v.mu.Unlock()
	if changed && onChange != nil {
		onChange()
	}
}

// Opacity returns the current opacity in [0, 1], applying the configured
// easing to the fade progress.
func (v *VisibilityController) Opacity() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opacityLocked(v.clock.Now())
}

// State returns the current phase of the state machine.
func (v *VisibilityController) State() VisibilityState {
	v.mu.Lock()
	defer v.mu.Unlock()
	o := v.opacityLocked(v.clock.Now())
	switch {
	case o <= 0:
		return VisibilityHidden
	case o >= 1:
		return VisibilityVisible
	case v.target == 1:
		return VisibilityAppearing
	default:
		return VisibilityDisappearing
	}
}

// Close cancels the pending hide timer, if any. The controller keeps its
// last opacity; it is intended to be discarded along with its scrollbar.
func (v *VisibilityController) Close() {
	v.mu.Lock()
	v.hideGen++
	v.stopTimerLocked()
	v.mu.Unlock()
}

func (v *VisibilityController) hideTimerFired(gen uint64) {
	v.mu.Lock()
	if gen != v.hideGen || !v.autoHide || !v.scrollable {
		// Stale fire: a newer activity re-armed the timer after this
		// callback was already scheduled.
		v.mu.Unlock()
		return
	}
	changed := false
	if v.target != 0 {
		v.beginFadeLocked(0)
		changed = true
	}
	onChange := v.onChange
	v.mu.Unlock()
	if changed && onChange != nil {
		onChange()
	}
}

// beginFadeLocked starts a fade toward target from the current opacity, so
// an interrupted fade reverses without a visual jump.
func (v *VisibilityController) beginFadeLocked(target float64) {
	now := v.clock.Now()
	cur := v.opacityLocked(now)
	v.fadeFrom = cur
	v.target = target
	v.start = now
	v.fading = cur != target
	Logger().Debug("visibility fade",
		"from", cur,
		"target", target,
	)
}

func (v *VisibilityController) opacityLocked(now time.Time) float64 {
	if !v.fading {
		return v.target
	}
	if v.duration <= 0 {
		return v.target
	}
	t := float64(now.Sub(v.start)) / float64(v.duration)
	if t >= 1 {
		return v.target
	}
	return v.fadeFrom + (v.target-v.fadeFrom)*ease(v.easing, t)
}

func (v *VisibilityController) stopTimerLocked() {
	if v.hideTimer != nil {
		v.hideTimer.Stop()
		v.hideTimer = nil
	}
}
