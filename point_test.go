package arcscroll

import (
	"math"
	"testing"
)

func pointsAlmostEqual(p, q Point) bool {
	return almostEqual(p.X, q.X) && almostEqual(p.Y, q.Y)
}

func TestPointOnCircle(t *testing.T) {
	center := Pt(100, 100)
	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{name: "3 o'clock", angle: 0, want: Pt(150, 100)},
		{name: "6 o'clock", angle: math.Pi / 2, want: Pt(100, 150)},
		{name: "9 o'clock", angle: math.Pi, want: Pt(50, 100)},
		{name: "12 o'clock", angle: -math.Pi / 2, want: Pt(100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointOnCircle(center, 50, tt.angle)
			if !pointsAlmostEqual(got, tt.want) {
				t.Errorf("PointOnCircle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestPointOnCircleTrackEnds(t *testing.T) {
	// The track ends land symmetrically about 3 o'clock, on the right
	// half of the dial.
	center := Pt(0, 0)
	start := PointOnCircle(center, 100, TrackStartAngle)
	end := PointOnCircle(center, 100, TrackStartAngle+TrackSweep)
	if !almostEqual(start.X, end.X) {
		t.Errorf("track end X coordinates = %v, %v, want symmetric", start.X, end.X)
	}
	if !almostEqual(start.Y, -end.Y) {
		t.Errorf("track end Y coordinates = %v, %v, want mirrored", start.Y, end.Y)
	}
	if start.X <= 0 {
		t.Errorf("track start X = %v, want on the right half", start.X)
	}
}
