package glyphy

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

// Renderer draws layout plans onto a gg.Context.
//
// Renderer caches one face per distinct scale and is NOT safe for
// concurrent use. Create one per render loop.
type Renderer struct {
	source     *text.FontSource
	faces      map[float64]text.Face
	clear      bool
	clearColor Color
	closed     bool
}

// NewRenderer loads the font and returns a Renderer.
// Without font options the embedded Go Mono face is used.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		source *text.FontSource
		err    error
	)
	switch {
	case len(o.fontData) > 0:
		source, err = text.NewFontSource(o.fontData)
	case o.fontPath != "":
		source, err = text.NewFontSourceFromFile(o.fontPath)
	default:
		source, err = text.NewFontSource(gomono.TTF)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	Logger().Info("font loaded", "name", source.Name())

	return &Renderer{
		source:     source,
		faces:      make(map[float64]text.Face),
		clear:      o.clear,
		clearColor: o.clearColor,
	}, nil
}

// FontName returns the name of the loaded font.
func (r *Renderer) FontName() string {
	return r.source.Name()
}

// Draw renders every placement of plan onto dc. Each entry is drawn with
// its top-left corner at its position, in its color, at its scale.
// If clearing is enabled the whole context is cleared first.
//
// Draw is a no-op on a closed Renderer.
func (r *Renderer) Draw(dc *gg.Context, plan LayoutPlan) {
	if r.closed || dc == nil {
		return
	}

	if r.clear {
		dc.ClearWithColor(toGG(r.clearColor))
	}

	for _, p := range plan {
		face := r.face(p.Entry.Scale)
		dc.SetFont(face)
		c := p.Entry.Color
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.DrawString(p.Entry.Text, p.Position.X, p.Position.Y+face.Metrics().Ascent)
	}
}

// face returns the cached face for scale, creating it on first use.
func (r *Renderer) face(scale float64) text.Face {
	if f, ok := r.faces[scale]; ok {
		return f
	}
	f := r.source.Face(scale)
	r.faces[scale] = f
	Logger().Debug("face created", "scale", scale, "cached", len(r.faces))
	return f
}

// Close releases the font source. Close is idempotent.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.faces = nil
	return r.source.Close()
}

func toGG(c Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
