package glyphy

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Default: Go Mono, cleared to opaque black every frame
//	r, err := glyphy.NewRenderer()
//
//	// Custom font, draw over whatever is already there
//	r, err := glyphy.NewRenderer(
//		glyphy.WithFontFile("Inconsolata-Regular.ttf"),
//		glyphy.WithClear(false),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	fontData   []byte
	fontPath   string
	clear      bool
	clearColor Color
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		clear:      true,
		clearColor: Color{R: 0, G: 0, B: 0, A: 1},
	}
}

// WithFontData sets TTF/OTF data for the renderer's font.
// It takes precedence over WithFontFile.
func WithFontData(data []byte) RendererOption {
	return func(o *rendererOptions) {
		o.fontData = data
	}
}

// WithFontFile loads the renderer's font from a file.
// An empty path keeps the default font.
func WithFontFile(path string) RendererOption {
	return func(o *rendererOptions) {
		o.fontPath = path
	}
}

// WithClear controls whether Draw clears the target before drawing.
func WithClear(clear bool) RendererOption {
	return func(o *rendererOptions) {
		o.clear = clear
	}
}

// WithClearColor sets the normalized color Draw clears to.
func WithClearColor(c Color) RendererOption {
	return func(o *rendererOptions) {
		o.clearColor = c
	}
}
