package arcscroll

import (
	"sync"
	"time"
)

// Direction is the rotation direction of one rotary tick.
type Direction int

const (
	// Clockwise moves toward the end of the content.
	Clockwise Direction = iota
	// CounterClockwise moves toward the start of the content.
	CounterClockwise
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

func (d Direction) sign() float64 {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// RotaryEvent is one discrete tick from a rotating bezel or crown.
type RotaryEvent struct {
	Direction Direction
}

// Haptics delivers tactile confirmation pulses. Vibrate is fire-and-forget;
// implementations that cannot vibrate may simply ignore the call.
type Haptics interface {
	Vibrate(d time.Duration, amplitude float64)
}

// Fixed haptic pulse parameters, fired once per accepted tick.
const (
	hapticPulseDuration  = 25 * time.Millisecond
	hapticPulseAmplitude = 0.6
)

// EdgeCooldown is the suppression window after a tick at a scroll
// boundary. Further edge ticks inside the window are dropped entirely, so
// holding the bezel against an edge produces a single bump rather than a
// stream of feedback. Expiry is purely time based; nothing cancels the
// window early.
const EdgeCooldown = time.Second

// RotaryConfig configures a RotaryInputController.
type RotaryConfig struct {
	// Magnitude is the distance of one tick in tracker units: pages for
	// the paged variant (normally 1), scroll units for the continuous
	// variant.
	Magnitude float64

	// Move is the animation applied to each tick's transition.
	Move Move

	// Haptics receives one pulse per accepted tick. Nil disables
	// haptic feedback.
	Haptics Haptics

	// OnActivity, if set, is called for each accepted tick so the
	// scrollbar can surface itself.
	OnActivity func()
}

// RotaryInputController turns a stream of discrete rotary ticks into
// animated position moves with haptic confirmation.
//
// The controller keeps its own optimistic position estimate so a burst of
// ticks accumulates correctly instead of re-targeting a stale position,
// and tags every move with an epoch so only the newest move's completion
// clears the animating flag. While no controller-driven move is in flight
// the estimate resynchronizes from the tracker on every change
// notification (the user may have touch-scrolled meanwhile).
type RotaryInputController struct {
	mu      sync.Mutex
	clock   Clock
	tracker PositionTracker
	cfg     RotaryConfig

	estimate      float64
	epoch         uint64
	animating     bool
	cooldownUntil time.Time
}

// NewRotaryInputController creates a controller seeded with the tracker's
// current position. A nil clock defaults to SystemClock.
func NewRotaryInputController(clock Clock, tracker PositionTracker, cfg RotaryConfig) *RotaryInputController {
	if clock == nil {
		clock = SystemClock()
	}
	return &RotaryInputController{
		clock:    clock,
		tracker:  tracker,
		cfg:      cfg,
		estimate: tracker.Position(),
	}
}

// HandleTick processes one rotary tick.
func (c *RotaryInputController) HandleTick(d Direction) {
	c.mu.Lock()
	now := c.clock.Now()

	var atEdge bool
	if d == CounterClockwise {
		atEdge = c.tracker.ExtentBefore() <= 0
	} else {
		atEdge = c.tracker.ExtentAfter() <= 0
	}
	if atEdge {
		if now.Before(c.cooldownUntil) {
			// Inside the cooldown window: drop the tick entirely,
			// no move and no haptic.
			c.mu.Unlock()
			Logger().Debug("rotary tick dropped at edge", "direction", d.String())
			return
		}
		c.cooldownUntil = now.Add(EdgeCooldown)
		Logger().Debug("edge cooldown armed", "direction", d.String())
	}

	// The edge bump uses the same magnitude as a regular tick; the
	// model clamps the target back to the boundary.
	next := c.estimate + d.sign()*c.cfg.Magnitude

	c.epoch++
	thisEpoch := c.epoch
	c.animating = true
	// Optimistic update: successive ticks accumulate from here without
	// waiting for the animation to finish.
	c.estimate = next

	tracker := c.tracker
	move := c.cfg.Move
	haptics := c.cfg.Haptics
	onActivity := c.cfg.OnActivity
	c.mu.Unlock()

	tracker.MoveTo(next, move, func() { c.moveDone(thisEpoch) })
	if haptics != nil {
		haptics.Vibrate(hapticPulseDuration, hapticPulseAmplitude)
	}
	if onActivity != nil {
		onActivity()
	}
	Logger().Debug("rotary tick",
		"direction", d.String(),
		"target", next,
		"edge", atEdge,
	)
}

// TrackerChanged must be called on every tracker change notification. It
// resynchronizes the position estimate from the tracker whenever the
// controller is not driving an animation itself; notifications caused by
// a controller-driven move in flight are ignored to avoid a feedback loop.
func (c *RotaryInputController) TrackerChanged() {
	c.mu.Lock()
	if !c.animating {
		c.estimate = c.tracker.Position()
	}
	c.mu.Unlock()
}

func (c *RotaryInputController) moveDone(epoch uint64) {
	c.mu.Lock()
	// Only the newest move's completion counts; completions of
	// superseded moves arrive late and must not clear the flag.
	if epoch == c.epoch {
		c.animating = false
	}
	c.mu.Unlock()
}
