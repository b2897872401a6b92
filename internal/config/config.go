// Package config parses glyphy's command-line configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/glyphy"
)

// Defaults match the text the viewer shows when no lines are given.
const (
	DefaultTitle  = "glyphy"
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultText   = "a: vec![#dd1133]"
	DefaultColor  = "#af4573"
	DefaultScale  = 40.0
)

var (
	// ErrInvalidLine is returned for a -line value that is not
	// "text|#rrggbb|scale".
	ErrInvalidLine = errors.New("config: invalid line")

	// ErrInvalidSize is returned for a non-positive window size.
	ErrInvalidSize = errors.New("config: invalid window size")
)

// Line is one configured text line, before validation.
type Line struct {
	Text  string
	Color string
	Scale float64
}

// Config holds everything cmd/glyphy is configured with.
type Config struct {
	Title   string
	Width   int
	Height  int
	Lines   []Line
	Font    string // TTF/OTF path; empty for the embedded font
	PNG     string // headless output path; empty for window mode
	Dump    bool
	NoClear bool
	Verbose bool
}

// lineFlags collects repeated -line values. They are parsed after the
// flag set so errors keep their identity.
type lineFlags []string

func (l *lineFlags) String() string {
	return strings.Join(*l, ", ")
}

func (l *lineFlags) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// ParseLine parses "text|#rrggbb|scale". The text itself may contain "|";
// the color and scale are taken from the last two fields.
func ParseLine(v string) (Line, error) {
	i := strings.LastIndex(v, "|")
	if i < 0 {
		return Line{}, fmt.Errorf("%w: %q: want text|#rrggbb|scale", ErrInvalidLine, v)
	}
	j := strings.LastIndex(v[:i], "|")
	if j < 0 {
		return Line{}, fmt.Errorf("%w: %q: want text|#rrggbb|scale", ErrInvalidLine, v)
	}

	scale, err := strconv.ParseFloat(strings.TrimSpace(v[i+1:]), 64)
	if err != nil {
		return Line{}, fmt.Errorf("%w: %q: scale: %v", ErrInvalidLine, v, err)
	}

	return Line{
		Text:  v[:j],
		Color: strings.TrimSpace(v[j+1 : i]),
		Scale: scale,
	}, nil
}

// Parse parses args (without the program name). Usage and flag errors are
// written to output.
func Parse(args []string, output io.Writer) (Config, error) {
	var (
		cfg   Config
		lines lineFlags
	)

	fs := flag.NewFlagSet("glyphy", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Title, "title", DefaultTitle, "window title")
	fs.IntVar(&cfg.Width, "width", DefaultWidth, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", DefaultHeight, "window height in pixels")
	fs.Var(&lines, "line", "text line as `text|#rrggbb|scale` (repeatable)")
	fs.StringVar(&cfg.Font, "font", "", "TTF/OTF font file (default: embedded Go Mono)")
	fs.StringVar(&cfg.PNG, "png", "", "render once to this PNG file instead of opening a window")
	fs.BoolVar(&cfg.Dump, "dump", false, "print the layout plan and exit")
	fs.BoolVar(&cfg.NoClear, "no-clear", false, "do not clear the frame before drawing")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	for _, v := range lines {
		ln, err := ParseLine(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Lines = append(cfg.Lines, ln)
	}
	if len(cfg.Lines) == 0 {
		cfg.Lines = []Line{{Text: DefaultText, Color: DefaultColor, Scale: DefaultScale}}
	}
	return cfg, nil
}

// Entries validates the configured lines and converts them to text
// entries in order.
func (c Config) Entries() ([]glyphy.TextEntry, error) {
	entries := make([]glyphy.TextEntry, 0, len(c.Lines))
	for i, ln := range c.Lines {
		e, err := glyphy.NewTextEntry(ln.Text, ln.Color, ln.Scale)
		if err != nil {
			return nil, fmt.Errorf("config: line %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// RendererOptions returns the renderer options implied by the config.
func (c Config) RendererOptions() []glyphy.RendererOption {
	return []glyphy.RendererOption{
		glyphy.WithFontFile(c.Font),
		glyphy.WithClear(!c.NoClear),
	}
}
