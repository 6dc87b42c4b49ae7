// Package painter provides a software Surface implementation that renders
// scrollbar frames onto an in-memory raster image. It is the reference
// renderer for hosts without a native arc primitive, and doubles as the
// export path for the demo binary.
package painter

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/roundui/arcscroll"
)

var errBadSize = errors.New("painter: size must be positive")

// Option configures a Painter.
type Option func(*config)

type config struct {
	background color.Color
	fontSize   float64
}

func defaultConfig() config {
	return config{
		background: color.Black,
		fontSize:   24,
	}
}

// WithBackground sets the color the canvas is cleared to before each paint.
func WithBackground(c color.Color) Option {
	return func(cfg *config) { cfg.background = c }
}

// WithFontSize sets the size of the center label text.
func WithFontSize(size float64) Option {
	return func(cfg *config) { cfg.fontSize = size }
}

// Painter rasterizes scrollbar frames onto a square canvas sized to the
// round display's bounding box. It implements arcscroll.Surface.
//
// Paint applies the frame dirty check itself: repainting an unchanged frame
// is free. Painter is safe for concurrent use.
type Painter struct {
	mu   sync.Mutex
	size int
	cfg  config
	face font.Face

	img       image.Image
	last      arcscroll.Frame
	label     string
	lastLabel string
	painted   bool
	repaints  int
}

// New creates a painter for a size x size pixel canvas.
func New(size int, opts ...Option) (*Painter, error) {
	if size <= 0 {
		return nil, errBadSize
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: cfg.fontSize})
	return &Painter{size: size, cfg: cfg, face: face}, nil
}

// Size returns the canvas edge length in pixels.
func (p *Painter) Size() int {
	return p.size
}

// SetLabel sets the text drawn at the canvas center on the next paint. The
// empty string disables the label. The demo uses it for the page number.
func (p *Painter) SetLabel(label string) {
	p.mu.Lock()
	p.label = label
	p.mu.Unlock()
}

// Repaints returns how many paints actually rasterized, as opposed to being
// skipped by the dirty check.
func (p *Painter) Repaints() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.repaints
}

// Image returns the most recently painted canvas, or nil before the first
// paint.
func (p *Painter) Image() image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.img
}

// SavePNG writes the most recently painted canvas to a PNG file.
func (p *Painter) SavePNG(path string) error {
	p.mu.Lock()
	img := p.img
	p.mu.Unlock()
	if img == nil {
		return errors.New("painter: nothing painted yet")
	}
	return gg.SavePNG(path, img)
}

// Paint rasterizes the frame. Unchanged frames are skipped.
func (p *Painter) Paint(frame arcscroll.Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.painted && frame.Equal(p.last) && p.label == p.lastLabel {
		return nil
	}

	dc := gg.NewContext(p.size, p.size)
	dc.SetColor(p.cfg.background)
	dc.Clear()

	center := float64(p.size) / 2
	radius := center - frame.Padding - frame.Stroke.Width/2

	if frame.Opacity > 0 && radius > 0 {
		dc.SetLineWidth(frame.Stroke.Width)
		dc.SetLineCap(lineCap(frame.Stroke.Cap))
		p.strokeArc(dc, center, radius, frame.Track, frame.TrackColor, frame.Opacity)
		p.strokeArc(dc, center, radius, frame.Thumb, frame.ThumbColor, frame.Opacity)
	}

	if p.label != "" {
		dc.SetFontFace(p.face)
		dc.SetColor(frame.ThumbColor.Color())
		dc.DrawStringAnchored(p.label, center, center, 0.5, 0.5)
	}

	p.img = dc.Image()
	p.last = frame
	p.lastLabel = p.label
	p.painted = true
	p.repaints++
	return nil
}

func (p *Painter) strokeArc(dc *gg.Context, center, radius float64, seg arcscroll.ArcSegment, col arcscroll.RGBA, opacity float64) {
	if seg.Empty() {
		return
	}
	dc.SetColor(col.ScaleAlpha(seg.AlphaScale * opacity).Color())
	dc.DrawArc(center, center, radius, seg.StartAngle, seg.EndAngle())
	dc.Stroke()
}

func lineCap(c arcscroll.LineCap) gg.LineCap {
	switch c {
	case arcscroll.LineCapButt:
		return gg.LineCapButt
	case arcscroll.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapRound
	}
}
