package arcscroll

import (
	"errors"
	"sync"
)

var errNilModel = errors.New("arcscroll: model must not be nil")

// Theme supplies the colors the scrollbar derives its style from. Hosts
// call Scrollbar.SetTheme when their theme changes; per-instance color
// overrides (WithTrackColor, WithThumbColor) take precedence over the
// theme.
type Theme struct {
	Track RGBA
	Thumb RGBA
}

// DefaultTheme returns the standard dark-dial colors.
func DefaultTheme() Theme {
	return Theme{
		Track: Hex("#AEB2B8"),
		Thumb: Hex("#E8EAED"),
	}
}

// Scrollbar is one circular scrollbar instance. It owns a visibility
// controller, a position tracker over exactly one model variant, and a
// rotary input controller, and exposes the per-frame geometry through
// Frame.
//
// Instances are created with New (continuous) or NewPaged (paged) and must
// be released with Close so no model or rotary callback lands on a dead
// instance.
type Scrollbar struct {
	mu sync.Mutex

	cfg        config
	tracker    PositionTracker
	visibility *VisibilityController
	rotary     *RotaryInputController

	// Derived style, recomputed by SetTheme.
	trackColor RGBA
	thumbColor RGBA

	unsubscribe func()
	stop        chan struct{}
	closed      bool
}

// New creates a scrollbar over a continuous scroll model.
func New(model ScrollModel, opts ...Option) (*Scrollbar, error) {
	if model == nil {
		return nil, errNilModel
	}
	cfg := buildConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newScrollbar(cfg, NewContinuousTracker(model), cfg.magnitude, cfg.scrollMove), nil
}

// NewPaged creates a scrollbar over a paged model. Rotary ticks always
// move one page.
func NewPaged(model PageModel, opts ...Option) (*Scrollbar, error) {
	if model == nil {
		return nil, errNilModel
	}
	cfg := buildConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newScrollbar(cfg, NewPagedTracker(model), 1, cfg.pageMove), nil
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func newScrollbar(cfg config, tracker PositionTracker, magnitude float64, move Move) *Scrollbar {
	s := &Scrollbar{
		cfg:     cfg,
		tracker: tracker,
		stop:    make(chan struct{}),
	}
	s.restyleLocked()

	s.visibility = NewVisibilityController(cfg.clock, VisibilityConfig{
		AutoHide:     cfg.autoHide,
		HideDelay:    cfg.hideDelay,
		FadeDuration: cfg.fadeDuration,
		Easing:       cfg.fadeEasing,
		OnChange:     cfg.onInvalidate,
	})
	s.visibility.SetScrollable(tracker.Scrollable())

	var haptics Haptics
	if cfg.hapticsOn {
		haptics = cfg.haptics
	}
	s.rotary = NewRotaryInputController(cfg.clock, tracker, RotaryConfig{
		Magnitude:  magnitude,
		Move:       move,
		Haptics:    haptics,
		OnActivity: s.visibility.Activity,
	})

	s.unsubscribe = tracker.Subscribe(s.trackerChanged)
	return s
}

// HandleRotary processes one rotary tick synchronously. Hosts that receive
// rotary events through their own dispatch call this directly; hosts with
// a channel-based source use Attach.
func (s *Scrollbar) HandleRotary(ev RotaryEvent) {
	s.mu.Lock()
	closed := s.closed
	rotary := s.rotary
	s.mu.Unlock()
	if closed {
		return
	}
	rotary.HandleTick(ev.Direction)
}

// Attach consumes rotary events from the channel on a background goroutine
// until the channel closes or the scrollbar is closed. It may be called at
// most once per source; a scrollbar without a rotary source simply never
// calls it and falls back to touch-only scrolling.
func (s *Scrollbar) Attach(events <-chan RotaryEvent) {
	go func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				s.HandleRotary(ev)
			case <-s.stop:
				return
			}
		}
	}()
}

// Close releases the model subscription, stops the rotary pump, and
// cancels the pending hide timer. The scrollbar must not be used after
// Close.
func (s *Scrollbar) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.stop)
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.visibility.Close()
}

// Frame returns the current renderable snapshot: track and thumb geometry,
// derived colors, opacity, and stroke style. Hosts call it once per frame
// and hand the result to their Surface; Frame.Equal makes the repaint
// dirty check trivial.
func (s *Scrollbar) Frame() Frame {
	s.mu.Lock()
	trackColor := s.trackColor
	thumbColor := s.thumbColor
	stroke := StrokeStyle{Width: s.cfg.strokeWidth, Cap: s.cfg.lineCap}
	padding := s.cfg.padding
	s.mu.Unlock()

	frame := Frame{
		Track:      TrackSegment(),
		TrackColor: trackColor,
		ThumbColor: thumbColor,
		Opacity:    s.visibility.Opacity(),
		Stroke:     stroke,
		Padding:    padding,
	}
	if fv := s.tracker.FractionVisible(); fv > 0 {
		frame.Thumb = ThumbSegment(fv, s.tracker.Fraction())
	} else {
		frame.Thumb = ThumbSegment(0, 0)
	}
	return frame
}

// Visibility exposes the visibility controller, mainly for hosts that want
// to inspect the current state.
func (s *Scrollbar) Visibility() *VisibilityController {
	return s.visibility
}

// Tracker exposes the position tracker.
func (s *Scrollbar) Tracker() PositionTracker {
	return s.tracker
}

// SetTheme recomputes the derived track and thumb colors from a new host
// theme. Explicit color overrides keep precedence.
func (s *Scrollbar) SetTheme(theme Theme) {
	s.mu.Lock()
	s.cfg.theme = theme
	s.restyleLocked()
	onInvalidate := s.cfg.onInvalidate
	s.mu.Unlock()
	if onInvalidate != nil {
		onInvalidate()
	}
}

// restyleLocked recomputes the derived style from the theme and overrides.
func (s *Scrollbar) restyleLocked() {
	s.trackColor = s.cfg.theme.Track
	if s.cfg.trackColor != nil {
		s.trackColor = *s.cfg.trackColor
	}
	s.thumbColor = s.cfg.theme.Thumb
	if s.cfg.thumbColor != nil {
		s.thumbColor = *s.cfg.thumbColor
	}
}

// trackerChanged handles every model change notification: it re-evaluates
// scrollability, surfaces the scrollbar, resynchronizes the rotary
// estimate, and asks the host to repaint.
func (s *Scrollbar) trackerChanged() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	onInvalidate := s.cfg.onInvalidate
	s.mu.Unlock()

	scrollable := s.tracker.Scrollable()
	s.visibility.SetScrollable(scrollable)
	if scrollable {
		s.visibility.Activity()
	}
	s.rotary.TrackerChanged()
	if onInvalidate != nil {
		onInvalidate()
	}
}
