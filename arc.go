package arcscroll

import "math"

// Track geometry constants. The track is a fixed 60-degree arc centered on
// 3 o'clock, i.e. running from "2 o'clock" to "4 o'clock" on the dial.
const (
	// TrackStartAngle is where the track begins, in radians.
	TrackStartAngle = -math.Pi / 6

	// TrackSweep is the angular length of the track, in radians.
	TrackSweep = math.Pi / 3
)

// Default alpha scales applied to the track and thumb colors before the
// scrollbar opacity is multiplied in.
const (
	trackAlphaScale = 0.3
	thumbAlphaScale = 1.0
)

// ArcSegment describes one arc of the scrollbar: its start angle and
// angular length, plus the alpha scale applied to its color when painted.
// The alpha actually painted is AlphaScale times the scrollbar opacity.
type ArcSegment struct {
	StartAngle float64 // radians, package angle convention
	Length     float64 // radians
	AlphaScale float64 // [0, 1]
}

// EndAngle returns the angle at which the segment ends.
func (s ArcSegment) EndAngle() float64 {
	return s.StartAngle + s.Length
}

// Empty reports whether the segment has no visible extent.
func (s ArcSegment) Empty() bool {
	return s.Length <= 0
}

// TrackSegment returns the fixed track geometry.
func TrackSegment() ArcSegment {
	return ArcSegment{
		StartAngle: TrackStartAngle,
		Length:     TrackSweep,
		AlphaScale: trackAlphaScale,
	}
}

// ThumbSegment returns the thumb geometry for the given thumb-to-track
// ratio and scroll fraction.
//
// The thumb length is the track length scaled by fractionVisible, and the
// thumb start advances from the track start by one thumb length per unit of
// scrollFraction. With scrollFraction measured in viewport extents (see
// ScrollFraction), the thumb lands exactly at the track end when the
// content is scrolled to its maximum.
//
// fractionVisible outside (0, 1] yields a degenerate zero-length segment.
func ThumbSegment(fractionVisible, scrollFraction float64) ArcSegment {
	if fractionVisible <= 0 {
		return ArcSegment{StartAngle: TrackStartAngle, AlphaScale: thumbAlphaScale}
	}
	if fractionVisible > 1 {
		fractionVisible = 1
	}
	if scrollFraction < 0 {
		scrollFraction = 0
	}
	length := TrackSweep * fractionVisible
	return ArcSegment{
		StartAngle: length*scrollFraction + TrackStartAngle,
		Length:     length,
		AlphaScale: thumbAlphaScale,
	}
}

// FractionVisible returns the thumb-to-track ratio for a scrollable with
// the given viewport and maximum scroll extents. The result is in (0, 1],
// equal to 1 exactly when maxExtent is 0 (content fits the viewport).
// A non-positive viewport yields 0, which ThumbSegment maps to a
// degenerate segment.
func FractionVisible(viewportExtent, maxExtent float64) float64 {
	if viewportExtent <= 0 {
		return 0
	}
	if maxExtent < 0 {
		maxExtent = 0
	}
	return 1 / (maxExtent/viewportExtent + 1)
}

// ScrollFraction returns the scroll position expressed in viewport extents:
// how many viewport heights of content lie before the current offset. The
// offset is clamped into [0, maxExtent] first, so transient overscroll
// during a fling never produces a thumb outside the track.
func ScrollFraction(offset, viewportExtent, maxExtent float64) float64 {
	if viewportExtent <= 0 {
		return 0
	}
	if maxExtent < 0 {
		maxExtent = 0
	}
	if offset < 0 {
		offset = 0
	}
	if offset > maxExtent {
		offset = maxExtent
	}
	return offset / viewportExtent
}
