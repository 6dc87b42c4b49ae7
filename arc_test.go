package arcscroll

import (
	"math"
	"testing"
)

const geomEps = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < geomEps
}

func TestFractionVisible(t *testing.T) {
	tests := []struct {
		name      string
		viewport  float64
		maxExtent float64
		want      float64
	}{
		{
			name:     "five viewports of content",
			viewport: 500, maxExtent: 2000,
			want: 0.2,
		},
		{
			name:     "content fits viewport",
			viewport: 500, maxExtent: 0,
			want: 1,
		},
		{
			name:     "equal viewport and max extent",
			viewport: 100, maxExtent: 100,
			want: 0.5,
		},
		{
			name:     "zero viewport is degenerate",
			viewport: 0, maxExtent: 1000,
			want: 0,
		},
		{
			name:     "negative viewport is degenerate",
			viewport: -10, maxExtent: 1000,
			want: 0,
		},
		{
			name:     "negative max extent treated as zero",
			viewport: 100, maxExtent: -5,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FractionVisible(tt.viewport, tt.maxExtent)
			if !almostEqual(got, tt.want) {
				t.Errorf("FractionVisible(%v, %v) = %v, want %v",
					tt.viewport, tt.maxExtent, got, tt.want)
			}
		})
	}
}

func TestFractionVisibleRange(t *testing.T) {
	// The ratio stays in (0, 1] for any positive viewport, and equals 1
	// only when there is nothing to scroll.
	for _, viewport := range []float64{1, 50, 500, 1e6} {
		for _, max := range []float64{0, 1, 500, 2000, 1e9} {
			got := FractionVisible(viewport, max)
			if got <= 0 || got > 1 {
				t.Errorf("FractionVisible(%v, %v) = %v, want in (0, 1]", viewport, max, got)
			}
			if (got == 1) != (max == 0) {
				t.Errorf("FractionVisible(%v, %v) = %v; ratio must be 1 iff maxExtent is 0",
					viewport, max, got)
			}
		}
	}
}

func TestScrollFraction(t *testing.T) {
	tests := []struct {
		name                   string
		offset, viewport, max float64
		want                   float64
	}{
		{name: "at start", offset: 0, viewport: 500, max: 2000, want: 0},
		{name: "one viewport scrolled", offset: 500, viewport: 500, max: 2000, want: 1},
		{name: "at end", offset: 2000, viewport: 500, max: 2000, want: 4},
		{name: "overscroll past start clamps", offset: -80, viewport: 500, max: 2000, want: 0},
		{name: "overscroll past end clamps", offset: 2400, viewport: 500, max: 2000, want: 4},
		{name: "zero viewport is degenerate", offset: 100, viewport: 0, max: 2000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScrollFraction(tt.offset, tt.viewport, tt.max)
			if !almostEqual(got, tt.want) {
				t.Errorf("ScrollFraction(%v, %v, %v) = %v, want %v",
					tt.offset, tt.viewport, tt.max, got, tt.want)
			}
		})
	}
}

func TestTrackSegment(t *testing.T) {
	track := TrackSegment()
	if !almostEqual(track.StartAngle, -math.Pi/6) {
		t.Errorf("track start = %v, want -pi/6", track.StartAngle)
	}
	if !almostEqual(track.Length, math.Pi/3) {
		t.Errorf("track length = %v, want pi/3", track.Length)
	}
	if !almostEqual(track.EndAngle(), math.Pi/6) {
		t.Errorf("track end = %v, want pi/6", track.EndAngle())
	}
	if track.Empty() {
		t.Error("track must not be empty")
	}
}

func TestThumbSegment(t *testing.T) {
	tests := []struct {
		name            string
		fractionVisible float64
		scrollFraction  float64
		wantStart       float64
		wantLength      float64
	}{
		{
			// Scenario: 500 px viewport over 2000 px of max extent.
			name:            "fifth of content at start",
			fractionVisible: 0.2, scrollFraction: 0,
			wantStart:  TrackStartAngle,
			wantLength: TrackSweep * 0.2,
		},
		{
			name:            "fifth of content fully scrolled",
			fractionVisible: 0.2, scrollFraction: 4,
			wantStart:  TrackStartAngle + TrackSweep*0.8,
			wantLength: TrackSweep * 0.2,
		},
		{
			name:            "half of content one viewport in",
			fractionVisible: 0.5, scrollFraction: 1,
			wantStart:  TrackStartAngle + TrackSweep*0.5,
			wantLength: TrackSweep * 0.5,
		},
		{
			name:            "full thumb when content fits",
			fractionVisible: 1, scrollFraction: 0,
			wantStart:  TrackStartAngle,
			wantLength: TrackSweep,
		},
		{
			name:            "negative scroll fraction clamps to start",
			fractionVisible: 0.2, scrollFraction: -3,
			wantStart:  TrackStartAngle,
			wantLength: TrackSweep * 0.2,
		},
		{
			name:            "oversized ratio clamps to full track",
			fractionVisible: 1.8, scrollFraction: 0,
			wantStart:  TrackStartAngle,
			wantLength: TrackSweep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumb := ThumbSegment(tt.fractionVisible, tt.scrollFraction)
			if !almostEqual(thumb.StartAngle, tt.wantStart) {
				t.Errorf("start = %v, want %v", thumb.StartAngle, tt.wantStart)
			}
			if !almostEqual(thumb.Length, tt.wantLength) {
				t.Errorf("length = %v, want %v", thumb.Length, tt.wantLength)
			}
		})
	}
}

func TestThumbSegmentDegenerate(t *testing.T) {
	for _, fv := range []float64{0, -0.5} {
		thumb := ThumbSegment(fv, 2)
		if !thumb.Empty() {
			t.Errorf("ThumbSegment(%v, 2) not empty: %+v", fv, thumb)
		}
	}
}

func TestThumbStaysOnTrack(t *testing.T) {
	// For consistent inputs (scrollFraction derived from the same metrics
	// as fractionVisible) the thumb never leaves the track.
	track := TrackSegment()
	for _, max := range []float64{100, 500, 2000, 10000} {
		viewport := 500.0
		fv := FractionVisible(viewport, max)
		for _, offset := range []float64{0, max * 0.25, max * 0.5, max * 0.99, max} {
			sf := ScrollFraction(offset, viewport, max)
			thumb := ThumbSegment(fv, sf)
			if thumb.StartAngle < track.StartAngle-geomEps {
				t.Errorf("max=%v offset=%v: thumb starts before track (%v < %v)",
					max, offset, thumb.StartAngle, track.StartAngle)
			}
			if thumb.EndAngle() > track.EndAngle()+geomEps {
				t.Errorf("max=%v offset=%v: thumb ends past track (%v > %v)",
					max, offset, thumb.EndAngle(), track.EndAngle())
			}
		}
	}
}
