package arcscroll

import (
	"errors"
	"fmt"
	"time"
)

// Default configuration values.
const (
	// DefaultPadding is the distance from the display edge to the
	// outside of the stroke, in pixels.
	DefaultPadding = 8.0

	// DefaultStrokeWidth is the stroke width in pixels.
	DefaultStrokeWidth = 8.0

	// DefaultHideDelay is the inactivity window before auto-hide.
	DefaultHideDelay = 3 * time.Second

	// DefaultFadeDuration is the length of the opacity animation.
	DefaultFadeDuration = 250 * time.Millisecond

	// DefaultPageMoveDuration is the length of a rotary page transition.
	DefaultPageMoveDuration = 250 * time.Millisecond

	// DefaultScrollMoveDuration is the length of a rotary continuous
	// scroll step.
	DefaultScrollMoveDuration = 100 * time.Millisecond

	// DefaultRotaryMagnitude is the continuous scroll distance of one
	// rotary tick, in scroll units.
	DefaultRotaryMagnitude = 50.0
)

// Option configures a Scrollbar during creation.
//
// Example:
//
//	bar, err := arcscroll.New(region,
//	    arcscroll.WithStrokeWidth(6),
//	    arcscroll.WithAutoHide(false),
//	)
type Option func(*config)

// config holds the construction-time configuration of a Scrollbar.
type config struct {
	clock        Clock
	padding      float64
	strokeWidth  float64
	lineCap      LineCap
	autoHide     bool
	hideDelay    time.Duration
	fadeDuration time.Duration
	fadeEasing   Easing
	theme        Theme
	trackColor   *RGBA
	thumbColor   *RGBA
	haptics      Haptics
	hapticsOn    bool
	pageMove     Move
	scrollMove   Move
	magnitude    float64
	onInvalidate func()
}

// defaultConfig returns the default scrollbar configuration.
func defaultConfig() config {
	return config{
		clock:        SystemClock(),
		padding:      DefaultPadding,
		strokeWidth:  DefaultStrokeWidth,
		lineCap:      LineCapRound,
		autoHide:     true,
		hideDelay:    DefaultHideDelay,
		fadeDuration: DefaultFadeDuration,
		fadeEasing:   EaseInOut,
		theme:        DefaultTheme(),
		hapticsOn:    true,
		pageMove:     Move{Duration: DefaultPageMoveDuration, Easing: EaseInOutCirc},
		scrollMove:   Move{Duration: DefaultScrollMoveDuration, Easing: EaseLinear},
		magnitude:    DefaultRotaryMagnitude,
	}
}

// validate rejects configuration-contract violations at construction time.
// The running scrollbar has no error paths, so bad parameters must be
// caught here.
func (c *config) validate() error {
	var errs []error
	if c.padding < 0 {
		errs = append(errs, fmt.Errorf("padding must not be negative, got %v", c.padding))
	}
	if c.strokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke width must be positive, got %v", c.strokeWidth))
	}
	if c.hideDelay <= 0 {
		errs = append(errs, fmt.Errorf("hide delay must be positive, got %v", c.hideDelay))
	}
	if c.fadeDuration < 0 {
		errs = append(errs, fmt.Errorf("fade duration must not be negative, got %v", c.fadeDuration))
	}
	if c.pageMove.Duration < 0 {
		errs = append(errs, fmt.Errorf("page move duration must not be negative, got %v", c.pageMove.Duration))
	}
	if c.scrollMove.Duration < 0 {
		errs = append(errs, fmt.Errorf("scroll move duration must not be negative, got %v", c.scrollMove.Duration))
	}
	if c.magnitude <= 0 {
		errs = append(errs, fmt.Errorf("rotary magnitude must be positive, got %v", c.magnitude))
	}
	return errors.Join(errs...)
}

// WithClock sets the time source. Tests use this to substitute a manually
// advanced clock.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPadding sets the distance from the display edge to the outside of
// the stroke, in pixels.
func WithPadding(padding float64) Option {
	return func(c *config) { c.padding = padding }
}

// WithStrokeWidth sets the stroke width in pixels.
func WithStrokeWidth(width float64) Option {
	return func(c *config) { c.strokeWidth = width }
}

// WithLineCap sets the shape of the arc endpoints.
func WithLineCap(cap LineCap) Option {
	return func(c *config) { c.lineCap = cap }
}

// WithAutoHide controls whether the scrollbar fades out after the hide
// delay. When disabled, the scrollbar stays visible once shown.
func WithAutoHide(autoHide bool) Option {
	return func(c *config) { c.autoHide = autoHide }
}

// WithHideDelay sets the inactivity window before auto-hide.
func WithHideDelay(delay time.Duration) Option {
	return func(c *config) { c.hideDelay = delay }
}

// WithFade sets the duration and easing of the opacity animation.
// A nil easing means linear.
func WithFade(duration time.Duration, easing Easing) Option {
	return func(c *config) {
		c.fadeDuration = duration
		c.fadeEasing = easing
	}
}

// WithTheme sets the theme from which the track and thumb colors derive.
func WithTheme(theme Theme) Option {
	return func(c *config) { c.theme = theme }
}

// WithTrackColor overrides the theme's track color.
func WithTrackColor(color RGBA) Option {
	return func(c *config) { c.trackColor = &color }
}

// WithThumbColor overrides the theme's thumb color.
func WithThumbColor(color RGBA) Option {
	return func(c *config) { c.thumbColor = &color }
}

// WithHaptics sets the haptic actuator receiving tick confirmation pulses.
// Without an actuator, haptic calls are skipped.
func WithHaptics(h Haptics) Option {
	return func(c *config) { c.haptics = h }
}

// WithHapticsEnabled controls whether haptic pulses fire at all.
func WithHapticsEnabled(enabled bool) Option {
	return func(c *config) { c.hapticsOn = enabled }
}

// WithPageMove sets the animation of rotary page transitions.
func WithPageMove(m Move) Option {
	return func(c *config) { c.pageMove = m }
}

// WithScrollMove sets the animation of rotary continuous scroll steps.
func WithScrollMove(m Move) Option {
	return func(c *config) { c.scrollMove = m }
}

// WithRotaryMagnitude sets the continuous scroll distance of one rotary
// tick, in scroll units. Ignored by paged scrollbars, which always move
// one page per tick.
func WithRotaryMagnitude(magnitude float64) Option {
	return func(c *config) { c.magnitude = magnitude }
}

// WithInvalidate sets a callback invoked (without internal locks held)
// whenever the scrollbar's appearance may have changed, so the host can
// schedule a repaint.
func WithInvalidate(fn func()) Option {
	return func(c *config) { c.onInvalidate = fn }
}
