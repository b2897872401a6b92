// Package plandump prints layout plans to a terminal.
//
// Each placement becomes one line: a color swatch, the position, the
// scale, the color in hex and the text drawn in its own color. On outputs
// without color support the styling is dropped and plain text remains.
package plandump

import (
	"fmt"

	"github.com/gogpu/glyphy"
	"github.com/muesli/termenv"
)

// Write prints plan to out, one placement per line.
func Write(out *termenv.Output, plan glyphy.LayoutPlan) error {
	for i, p := range plan {
		hex := p.Entry.Color.Hex()
		c := out.Color(hex)

		swatch := out.String("  ").Background(c)
		label := out.String(p.Entry.Text).Foreground(c)

		_, err := fmt.Fprintf(out, "%s %3d  x=%-8.1f y=%-8.1f scale=%-6.1f %s %s\n",
			swatch, i, p.Position.X, p.Position.Y, p.Entry.Scale, hex, label)
		if err != nil {
			return fmt.Errorf("plandump: %w", err)
		}
	}
	return nil
}
