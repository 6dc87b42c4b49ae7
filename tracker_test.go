package arcscroll

import (
	"testing"
	"time"
)

func TestContinuousTracker(t *testing.T) {
	r := NewScrollRegion(newFakeClock(), 500, 2000)
	tracker := NewContinuousTracker(r)

	if !tracker.Scrollable() {
		t.Fatal("tracker not scrollable")
	}
	if got := tracker.FractionVisible(); !almostEqual(got, 0.2) {
		t.Fatalf("FractionVisible() = %v, want 0.2", got)
	}

	r.SetOffset(1000)
	if got := tracker.Position(); got != 1000 {
		t.Fatalf("Position() = %v, want 1000", got)
	}
	if got := tracker.Fraction(); !almostEqual(got, 2) {
		t.Fatalf("Fraction() = %v, want 2 (viewport extents)", got)
	}
	if got := tracker.ExtentBefore(); got != 1000 {
		t.Fatalf("ExtentBefore() = %v, want 1000", got)
	}
	if got := tracker.ExtentAfter(); got != 1000 {
		t.Fatalf("ExtentAfter() = %v, want 1000", got)
	}
}

func TestContinuousTrackerEdges(t *testing.T) {
	r := NewScrollRegion(newFakeClock(), 500, 2000)
	tracker := NewContinuousTracker(r)

	if got := tracker.ExtentBefore(); got != 0 {
		t.Fatalf("ExtentBefore() at start = %v, want 0", got)
	}
	r.SetOffset(2000)
	if got := tracker.ExtentAfter(); got != 0 {
		t.Fatalf("ExtentAfter() at end = %v, want 0", got)
	}
}

func TestContinuousTrackerMoveToClamps(t *testing.T) {
	r := NewScrollRegion(newFakeClock(), 500, 2000)
	tracker := NewContinuousTracker(r)

	tracker.MoveTo(99999, Move{}, nil)
	if got := tracker.Position(); got != 2000 {
		t.Fatalf("Position() = %v, want 2000", got)
	}
	tracker.MoveTo(-40, Move{}, nil)
	if got := tracker.Position(); got != 0 {
		t.Fatalf("Position() = %v, want 0", got)
	}
}

func TestContinuousTrackerNotScrollable(t *testing.T) {
	tests := []struct {
		name     string
		viewport float64
		max      float64
	}{
		{name: "content fits", viewport: 500, max: 0},
		{name: "zero viewport", viewport: 0, max: 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewScrollRegion(newFakeClock(), tt.viewport, tt.max)
			if NewContinuousTracker(r).Scrollable() {
				t.Error("Scrollable() = true, want false")
			}
		})
	}
}

func TestPagedTracker(t *testing.T) {
	p := NewPager(newFakeClock(), 3)
	tracker := NewPagedTracker(p)

	if !tracker.Scrollable() {
		t.Fatal("tracker not scrollable")
	}
	if got := tracker.FractionVisible(); !almostEqual(got, 1.0/3) {
		t.Fatalf("FractionVisible() = %v, want 1/3", got)
	}
	if got := tracker.ExtentBefore(); got != 0 {
		t.Fatalf("ExtentBefore() = %v, want 0", got)
	}
	if got := tracker.ExtentAfter(); got != 2 {
		t.Fatalf("ExtentAfter() = %v, want 2", got)
	}

	p.SetPage(2)
	if got := tracker.Fraction(); got != 2 {
		t.Fatalf("Fraction() = %v, want 2", got)
	}
	if got := tracker.ExtentAfter(); got != 0 {
		t.Fatalf("ExtentAfter() at last page = %v, want 0", got)
	}
}

func TestPagedTrackerMoveToRoundsAndClamps(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		want   int
	}{
		{name: "rounds down", target: 1.4, want: 1},
		{name: "rounds up", target: 1.6, want: 2},
		{name: "clamps high", target: 7.3, want: 2},
		{name: "clamps low", target: -2.8, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(newFakeClock(), 3)
			NewPagedTracker(p).MoveTo(tt.target, Move{}, nil)
			if got := p.CurrentPage(); got != tt.want {
				t.Errorf("CurrentPage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPagedTrackerAnimatedPosition(t *testing.T) {
	clock := newFakeClock()
	p := NewPager(clock, 3)
	tracker := NewPagedTracker(p)

	tracker.MoveTo(1, Move{Duration: 250 * time.Millisecond, Easing: EaseLinear}, nil)
	clock.advance(125 * time.Millisecond)
	if got := tracker.Position(); !almostEqual(got, 0.5) {
		t.Fatalf("Position() mid-transition = %v, want 0.5", got)
	}
	// Edge detection keeps using the settled page, not the glide.
	if got := tracker.ExtentBefore(); got != 1 {
		t.Fatalf("ExtentBefore() mid-transition = %v, want 1", got)
	}
}

func TestPagedTrackerSinglePageNotScrollable(t *testing.T) {
	p := NewPager(newFakeClock(), 1)
	tracker := NewPagedTracker(p)
	if tracker.Scrollable() {
		t.Fatal("Scrollable() = true for a single page, want false")
	}
	if got := tracker.FractionVisible(); got != 1 {
		t.Fatalf("FractionVisible() = %v, want 1", got)
	}
}
