package arcscroll

// PositionTracker exposes a uniform position contract over the two model
// variants: continuous scroll offsets and discrete page indexes. The
// variant is chosen once at construction and never switched; no code
// branches on the variant after that.
//
// Position, ExtentBefore and ExtentAfter share one unit: pixels (or
// whatever the scroll model uses) for the continuous variant, pages for
// the paged variant.
type PositionTracker interface {
	// Position returns the current position in model units. For the
	// paged variant this is fractional while a transition is animating.
	Position() float64

	// Fraction returns the position input for the thumb-angle mapping:
	// viewport extents scrolled for the continuous variant (see
	// ScrollFraction), the page index for the paged variant.
	Fraction() float64

	// FractionVisible returns the thumb-to-track ratio (see
	// FractionVisible).
	FractionVisible() float64

	// ExtentBefore returns the scrollable distance before the current
	// position, in model units.
	ExtentBefore() float64

	// ExtentAfter returns the scrollable distance after the current
	// position, in model units.
	ExtentAfter() float64

	// Scrollable reports whether the content can scroll at all.
	Scrollable() bool

	// MoveTo requests an animated transition to target, in model units.
	// The target is clamped (and, for the paged variant, rounded to the
	// nearest page). done, if non-nil, runs exactly once: when the move
	// settles, or at the moment a newer move or a direct scroll cancels
	// it.
	MoveTo(target float64, m Move, done func())

	// Subscribe registers a change notification callback and returns a
	// function that cancels the subscription.
	Subscribe(fn func()) (cancel func())
}

// NewContinuousTracker wraps a continuous scroll model.
func NewContinuousTracker(model ScrollModel) PositionTracker {
	return &continuousTracker{model: model}
}

// NewPagedTracker wraps a paged model.
func NewPagedTracker(model PageModel) PositionTracker {
	return &pagedTracker{model: model}
}

type continuousTracker struct {
	model ScrollModel
}

func (t *continuousTracker) Position() float64 {
	return t.model.Offset()
}

func (t *continuousTracker) Fraction() float64 {
	return ScrollFraction(t.model.Offset(), t.model.ViewportExtent(), t.model.MaxExtent())
}

func (t *continuousTracker) FractionVisible() float64 {
	return FractionVisible(t.model.ViewportExtent(), t.model.MaxExtent())
}

func (t *continuousTracker) ExtentBefore() float64 {
	offset := t.model.Offset()
	if offset < 0 {
		return 0
	}
	max := t.model.MaxExtent()
	if offset > max {
		return max
	}
	return offset
}

func (t *continuousTracker) ExtentAfter() float64 {
	remaining := t.model.MaxExtent() - t.model.Offset()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t *continuousTracker) Scrollable() bool {
	return t.model.ViewportExtent() > 0 && t.model.MaxExtent() > 0
}

func (t *continuousTracker) MoveTo(target float64, m Move, done func()) {
	// The model clamps the target into [0, MaxExtent] itself.
	t.model.AnimateTo(target, m, done)
}

func (t *continuousTracker) Subscribe(fn func()) (cancel func()) {
	return t.model.Subscribe(fn)
}

type pagedTracker struct {
	model PageModel
}

func (t *pagedTracker) Position() float64 {
	if p, ok := t.model.(PagePositioner); ok {
		return p.PagePosition()
	}
	return float64(t.model.CurrentPage())
}

func (t *pagedTracker) Fraction() float64 {
	return t.Position()
}

func (t *pagedTracker) FractionVisible() float64 {
	count := t.model.PageCount()
	if count <= 0 {
		return 0
	}
	// One page of viewport over count-1 pages of scrollable extent.
	return FractionVisible(1, float64(count-1))
}

func (t *pagedTracker) ExtentBefore() float64 {
	page := t.model.CurrentPage()
	if page < 0 {
		return 0
	}
	return float64(page)
}

func (t *pagedTracker) ExtentAfter() float64 {
	remaining := t.model.PageCount() - 1 - t.model.CurrentPage()
	if remaining < 0 {
		return 0
	}
	return float64(remaining)
}

func (t *pagedTracker) Scrollable() bool {
	return t.model.PageCount() > 1
}

func (t *pagedTracker) MoveTo(target float64, m Move, done func()) {
	// The model clamps the rounded index into [0, PageCount-1] itself.
	t.model.AnimateToPage(roundPage(target), m, done)
}

func (t *pagedTracker) Subscribe(fn func()) (cancel func()) {
	return t.model.Subscribe(fn)
}
