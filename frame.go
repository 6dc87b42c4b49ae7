package arcscroll

// Frame is one renderable snapshot of the scrollbar: the track and thumb
// geometry, the colors derived from the active theme, the overall opacity,
// and the stroke style. Frames are plain values; comparing the current
// frame against the previously painted one is the repaint dirty check.
type Frame struct {
	Track ArcSegment
	Thumb ArcSegment

	TrackColor RGBA
	ThumbColor RGBA

	// Opacity is the scrollbar opacity in [0, 1]. The alpha painted for
	// each segment is segment.AlphaScale * Opacity.
	Opacity float64

	Stroke StrokeStyle

	// Padding is the distance in pixels from the display edge to the
	// outside of the stroke.
	Padding float64
}

// Equal reports whether two frames would paint identically. Surfaces use it
// to skip repaints when nothing changed.
func (f Frame) Equal(g Frame) bool {
	return f == g
}

// Visible reports whether painting the frame would produce any output.
func (f Frame) Visible() bool {
	return f.Opacity > 0 && !f.Thumb.Empty()
}

// Surface renders scrollbar frames. Implementations should apply the
// Frame.Equal dirty check and repaint only when the frame changed.
//
// The painter subpackage provides a software implementation; hosts with a
// native arc primitive implement Surface directly.
type Surface interface {
	Paint(Frame) error
}
