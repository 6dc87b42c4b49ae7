// Package arcscroll provides a circular, auto-hiding scrollbar overlay for
// round displays, driven by touch scrolling or discrete rotary input.
//
// # Overview
//
// arcscroll maps a linear scroll position onto a fixed 60-degree arc at the
// edge of a round screen (the "2 o'clock" position) and keeps that geometry
// in sync with a scrollable content source. Rotary bezel or crown ticks are
// translated into animated position changes with haptic confirmation, edge
// detection at the scroll boundaries, and stale-animation suppression.
//
// # Quick Start
//
//	import "github.com/roundui/arcscroll"
//
//	// A continuous scrollable: 500 px viewport over 2500 px of content.
//	region := arcscroll.NewScrollRegion(nil, 500, 2000)
//
//	bar, err := arcscroll.New(region)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bar.Close()
//
//	// Feed rotary ticks from the platform event source.
//	bar.Attach(rotaryEvents)
//
//	// Each frame, hand the current geometry to the render surface.
//	surface.Paint(bar.Frame())
//
// # Architecture
//
// The package is organized around four collaborating pieces:
//   - Geometry mapping: ArcSegment, TrackSegment, ThumbSegment (pure functions)
//   - VisibilityController: show/hide opacity state machine with auto-hide
//   - PositionTracker: uniform contract over continuous and paged models
//   - RotaryInputController: tick handling, edge cooldown, haptics, epochs
//
// A Scrollbar owns one of each and wires them together. Rendering is
// external: hosts consume Frame values through the Surface interface. The
// painter subpackage provides a software rasterizer for hosts without a
// native arc-drawing primitive.
//
// # Coordinate System
//
// Angles are in radians with 0 at 3 o'clock, increasing clockwise in screen
// coordinates (y down). The track spans TrackSweep (60 degrees) starting at
// TrackStartAngle (-30 degrees).
//
// # Concurrency
//
// All public entry points are safe for concurrent use. Internally there are
// no action queues: a newer move, fade, or timer always supersedes a pending
// one, and stale completions are discarded by epoch comparison.
package arcscroll
