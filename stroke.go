package arcscroll

// LineCap specifies the shape of arc endpoints.
type LineCap int

const (
	// LineCapRound specifies a rounded cap. This is the default: round
	// caps read naturally against a circular bezel.
	LineCapRound LineCap = iota
	// LineCapButt specifies a flat cap.
	LineCapButt
	// LineCapSquare specifies a square cap.
	LineCapSquare
)

// String returns the name of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapButt:
		return "butt"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// StrokeStyle describes how the track and thumb arcs are stroked.
type StrokeStyle struct {
	// Width is the stroke width in pixels.
	Width float64

	// Cap is the shape of the arc endpoints.
	Cap LineCap
}
