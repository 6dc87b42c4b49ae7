package arcscroll

import (
	"math"
	"sync"
	"time"
)

// Move describes one animated position transition.
// A zero Duration means the move applies immediately.
type Move struct {
	Duration time.Duration
	Easing   Easing
}

// ScrollModel is a continuous scrollable position source: a scroll offset
// over content measured in pixels (or any consistent unit).
//
// Implementations must tolerate transient offsets outside [0, MaxExtent]
// only as read-side values (fling overscroll); AnimateTo targets are
// clamped into range.
type ScrollModel interface {
	// Offset returns the current scroll offset.
	Offset() float64

	// ViewportExtent returns the size of the visible window.
	ViewportExtent() float64

	// MaxExtent returns the maximum scroll offset. Zero means the
	// content fits the viewport.
	MaxExtent() float64

	// AnimateTo seeks to the given offset, clamped into [0, MaxExtent].
	// done, if non-nil, is called exactly once: when the seek settles, or
	// at the moment a newer seek or a direct scroll cancels it. Callers
	// waiting on a completion must always receive one.
	AnimateTo(offset float64, m Move, done func())

	// Subscribe registers a change notification callback and returns a
	// function that cancels the subscription.
	Subscribe(fn func()) (cancel func())
}

// PageModel is a discrete paged position source: a current page index out
// of a fixed page count.
type PageModel interface {
	// CurrentPage returns the current (or, during a transition, the
	// target) page index.
	CurrentPage() int

	// PageCount returns the number of pages.
	PageCount() int

	// AnimateToPage transitions to the given page, clamped into
	// [0, PageCount-1]. done, if non-nil, is called exactly once: when
	// the transition settles, or at the moment a newer transition or a
	// direct page change cancels it.
	AnimateToPage(page int, m Move, done func())

	// Subscribe registers a change notification callback and returns a
	// function that cancels the subscription.
	Subscribe(fn func()) (cancel func())
}

// PagePositioner is optionally implemented by page models that can report
// a fractional position while a transition is in flight, letting the thumb
// glide between pages instead of jumping.
type PagePositioner interface {
	// PagePosition returns the animated page position, fractional during
	// a transition and integer-valued at rest.
	PagePosition() float64
}

// subscribers is a small registry of change callbacks shared by the
// built-in models.
type subscribers struct {
	next int
	fns  map[int]func()
}

func (s *subscribers) add(fn func()) (id int) {
	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	id = s.next
	s.next++
	s.fns[id] = fn
	return id
}

func (s *subscribers) remove(id int) {
	delete(s.fns, id)
}

// snapshot returns the registered callbacks so they can be invoked after
// the caller releases its lock.
func (s *subscribers) snapshot() []func() {
	if len(s.fns) == 0 {
		return nil
	}
	out := make([]func(), 0, len(s.fns))
	for _, fn := range s.fns {
		out = append(out, fn)
	}
	return out
}

// seek is an in-flight animated transition, evaluated on read.
type seek struct {
	from, to float64
	start    time.Time
	move     Move
	done     func()
	timer    Timer
}

func (s *seek) valueAt(now time.Time) float64 {
	if s.move.Duration <= 0 {
		return s.to
	}
	t := float64(now.Sub(s.start)) / float64(s.move.Duration)
	if t >= 1 {
		return s.to
	}
	return s.from + (s.to-s.from)*ease(s.move.Easing, t)
}

// ScrollRegion is the built-in ScrollModel: a scroll offset with viewport
// and content metrics and an animated programmatic seek. It serves as the
// reference scrollable for hosts that track scroll state themselves; hosts
// with their own scroll machinery implement ScrollModel directly.
type ScrollRegion struct {
	mu       sync.Mutex
	clock    Clock
	viewport float64
	max      float64
	offset   float64 // settled offset; the seek target while seeking
	seek     *seek
	seekGen  uint64
	subs     subscribers
}

// NewScrollRegion creates a scroll region with the given viewport and
// maximum scroll extents. A nil clock defaults to SystemClock.
func NewScrollRegion(clock Clock, viewportExtent, maxExtent float64) *ScrollRegion {
	if clock == nil {
		clock = SystemClock()
	}
	if maxExtent < 0 {
		maxExtent = 0
	}
	return &ScrollRegion{clock: clock, viewport: viewportExtent, max: maxExtent}
}

// Offset returns the current offset, interpolated while a seek is running.
func (r *ScrollRegion) Offset() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seek != nil {
		return r.seek.valueAt(r.clock.Now())
	}
	return r.offset
}

// ViewportExtent returns the viewport size.
func (r *ScrollRegion) ViewportExtent() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport
}

// MaxExtent returns the maximum scroll offset.
func (r *ScrollRegion) MaxExtent() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.max
}

// SetOffset applies a direct (touch) scroll to the given offset, cancelling
// any seek in flight. The offset is clamped into [0, MaxExtent].
func (r *ScrollRegion) SetOffset(offset float64) {
	r.mu.Lock()
	cancelled := r.cancelSeekLocked()
	r.offset = r.clampLocked(offset)
	subs := r.subs.snapshot()
	r.mu.Unlock()
	settle(cancelled)
	notify(subs)
}

// ScrollBy applies a relative (touch) scroll delta.
func (r *ScrollRegion) ScrollBy(delta float64) {
	r.mu.Lock()
	cancelled := r.cancelSeekLocked()
	r.offset = r.clampLocked(r.offset + delta)
	subs := r.subs.snapshot()
	r.mu.Unlock()
	settle(cancelled)
	notify(subs)
}

// SetMetrics updates the viewport and maximum extents, re-clamping the
// offset if the content shrank.
func (r *ScrollRegion) SetMetrics(viewportExtent, maxExtent float64) {
	r.mu.Lock()
	if maxExtent < 0 {
		maxExtent = 0
	}
	r.viewport = viewportExtent
	r.max = maxExtent
	cancelled := r.cancelSeekLocked()
	r.offset = r.clampLocked(r.offset)
	subs := r.subs.snapshot()
	r.mu.Unlock()
	settle(cancelled)
	notify(subs)
}

// AnimateTo implements ScrollModel.
func (r *ScrollRegion) AnimateTo(offset float64, m Move, done func()) {
	r.mu.Lock()
	target := r.clampLocked(offset)
	cancelled := r.cancelSeekLocked()
	if m.Duration <= 0 {
		r.offset = target
		subs := r.subs.snapshot()
		r.mu.Unlock()
		settle(cancelled)
		settle(done)
		notify(subs)
		return
	}
	now := r.clock.Now()
	s := &seek{from: r.offset, to: target, start: now, move: m, done: done}
	r.seek = s
	r.offset = target
	r.seekGen++
	gen := r.seekGen
	s.timer = r.clock.AfterFunc(m.Duration, func() { r.finishSeek(gen) })
	subs := r.subs.snapshot()
	r.mu.Unlock()
	settle(cancelled)
	notify(subs)
}

// Subscribe implements ScrollModel.
func (r *ScrollRegion) Subscribe(fn func()) (cancel func()) {
	r.mu.Lock()
	id := r.subs.add(fn)
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.subs.remove(id)
		r.mu.Unlock()
	}
}

func (r *ScrollRegion) finishSeek(gen uint64) {
	r.mu.Lock()
	if gen != r.seekGen || r.seek == nil {
		r.mu.Unlock()
		return
	}
	done := r.seek.done
	r.seek = nil
	subs := r.subs.snapshot()
	r.mu.Unlock()
	// done runs before the change notification so observers of the
	// notification already see the move as settled.
	settle(done)
	notify(subs)
}

// cancelSeekLocked stops the pending seek and returns its done callback.
// The caller must invoke it (via settle) after releasing the lock: a
// cancelled seek still completes, so a controller waiting on the move is
// never left holding a completion that will not arrive.
func (r *ScrollRegion) cancelSeekLocked() (cancelled func()) {
	if r.seek == nil {
		return nil
	}
	if r.seek.timer != nil {
		r.seek.timer.Stop()
	}
	cancelled = r.seek.done
	r.seek = nil
	r.seekGen++
	return cancelled
}

func (r *ScrollRegion) clampLocked(offset float64) float64 {
	if offset < 0 {
		return 0
	}
	if offset > r.max {
		return r.max
	}
	return offset
}

// Pager is the built-in PageModel: a page index out of a fixed count with
// an animated fractional transition between pages.
type Pager struct {
	mu      sync.Mutex
	clock   Clock
	page    int // settled page; the transition target while seeking
	count   int
	seek    *seek
	seekGen uint64
	subs    subscribers
}

// NewPager creates a pager with the given page count, starting at page 0.
// A nil clock defaults to SystemClock.
func NewPager(clock Clock, pageCount int) *Pager {
	if clock == nil {
		clock = SystemClock()
	}
	if pageCount < 0 {
		pageCount = 0
	}
	return &Pager{clock: clock, count: pageCount}
}

// CurrentPage implements PageModel.
func (p *Pager) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// PageCount implements PageModel.
func (p *Pager) PageCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// PagePosition implements PagePositioner: the animated page position,
// fractional while a transition runs.
func (p *Pager) PagePosition() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seek != nil {
		return p.seek.valueAt(p.clock.Now())
	}
	return float64(p.page)
}

// SetPage jumps directly to the given page, cancelling any transition.
func (p *Pager) SetPage(page int) {
	p.mu.Lock()
	cancelled := p.cancelSeekLocked()
	p.page = p.clampLocked(page)
	subs := p.subs.snapshot()
	p.mu.Unlock()
	settle(cancelled)
	notify(subs)
}

// SetPageCount updates the page count, re-clamping the current page.
func (p *Pager) SetPageCount(pageCount int) {
	p.mu.Lock()
	if pageCount < 0 {
		pageCount = 0
	}
	p.count = pageCount
	cancelled := p.cancelSeekLocked()
	p.page = p.clampLocked(p.page)
	subs := p.subs.snapshot()
	p.mu.Unlock()
	settle(cancelled)
	notify(subs)
}

// AnimateToPage implements PageModel.
func (p *Pager) AnimateToPage(page int, m Move, done func()) {
	p.mu.Lock()
	target := p.clampLocked(page)
	cancelled := p.cancelSeekLocked()
	if m.Duration <= 0 {
		p.page = target
		subs := p.subs.snapshot()
		p.mu.Unlock()
		settle(cancelled)
		settle(done)
		notify(subs)
		return
	}
	now := p.clock.Now()
	s := &seek{from: float64(p.page), to: float64(target), start: now, move: m, done: done}
	p.seek = s
	p.page = target
	p.seekGen++
	gen := p.seekGen
	s.timer = p.clock.AfterFunc(m.Duration, func() { p.finishSeek(gen) })
	subs := p.subs.snapshot()
	p.mu.Unlock()
	settle(cancelled)
	notify(subs)
}

// Subscribe implements PageModel.
func (p *Pager) Subscribe(fn func()) (cancel func()) {
	p.mu.Lock()
	id := p.subs.add(fn)
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		p.subs.remove(id)
		p.mu.Unlock()
	}
}

func (p *Pager) finishSeek(gen uint64) {
	p.mu.Lock()
	if gen != p.seekGen || p.seek == nil {
		p.mu.Unlock()
		return
	}
	done := p.seek.done
	p.seek = nil
	subs := p.subs.snapshot()
	p.mu.Unlock()
	settle(done)
	notify(subs)
}

// cancelSeekLocked stops the pending transition and returns its done
// callback for the caller to invoke after releasing the lock.
func (p *Pager) cancelSeekLocked() (cancelled func()) {
	if p.seek == nil {
		return nil
	}
	if p.seek.timer != nil {
		p.seek.timer.Stop()
	}
	cancelled = p.seek.done
	p.seek = nil
	p.seekGen++
	return cancelled
}

func (p *Pager) clampLocked(page int) int {
	if page < 0 {
		return 0
	}
	if p.count > 0 && page > p.count-1 {
		return p.count - 1
	}
	if p.count == 0 {
		return 0
	}
	return page
}

// notify invokes change callbacks outside any model lock.
func notify(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

// settle invokes a seek completion callback, if any. It must run before
// the corresponding change notification and outside any model lock.
func settle(done func()) {
	if done != nil {
		done()
	}
}

// roundPage rounds a fractional page target to the nearest valid index.
func roundPage(target float64) int {
	return int(math.Round(target))
}
