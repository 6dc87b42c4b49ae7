package arcscroll

import "math"

// Easing maps normalized animation progress in [0, 1] to an eased value in
// [0, 1]. Easing functions must be monotonic with f(0)=0 and f(1)=1.
type Easing func(t float64) float64

// Common easing functions.
var (
	// EaseLinear applies no easing (constant speed).
	EaseLinear Easing = func(t float64) float64 { return t }

	// EaseInOut is a quadratic S-curve: accelerates at the start,
	// decelerates at the end.
	EaseInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseInOutCirc is a circular S-curve with a steeper middle section
	// than EaseInOut. Used for page transitions.
	EaseInOutCirc Easing = func(t float64) float64 {
		t *= 2
		if t < 1 {
			return -0.5 * (math.Sqrt(1-t*t) - 1)
		}
		t -= 2
		return 0.5 * (math.Sqrt(1-t*t) + 1)
	}
)

// ease evaluates e at t with clamping into [0, 1].
// A nil easing falls back to linear.
func ease(e Easing, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if e == nil {
		return t
	}
	return e(t)
}
