package arcscroll

import "math"

// Point represents a 2D point or vector in screen coordinates (y down).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointOnCircle returns the point at the given angle on a circle.
// The angle follows the package convention: radians, 0 at 3 o'clock,
// increasing clockwise on screen.
func PointOnCircle(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
