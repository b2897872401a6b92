// Package glyphy draws a right-aligned stack of colored text lines.
//
// # Overview
//
// glyphy has two pure pieces and one drawing piece:
//   - ParseHex and ParseHexNormalized turn "#rrggbb" strings into colors.
//   - Plan places text entries against the right edge of a viewport.
//   - Renderer draws a plan onto a gg.Context with gg's text package.
//
// The integration/glyphcanvas package moves a drawn plan into a gogpu
// window, and cmd/glyphy wires everything into an executable.
//
// # Quick Start
//
//	entry, err := glyphy.NewTextEntry("a: vec![#dd1133]", "#af4573", 40)
//	if err != nil {
//		return err
//	}
//	plan := glyphy.Plan([]glyphy.TextEntry{entry}, 800)
//
//	r, err := glyphy.NewRenderer()
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	dc := gg.NewContext(800, 600)
//	r.Draw(dc, plan)
//	dc.SavePNG("glyphy.png")
//
// # Layout
//
// Widths are estimated, not measured: a line of n characters at scale s
// is taken to be 1.5*s*n pixels wide. Every line shares the x offset of
// the longest line, so shorter lines start at the same column.
//
// # Coordinate System
//
// Origin (0,0) is top-left, X grows right, Y grows down. Positions in a
// LayoutPlan are the top-left corner of each line.
package glyphy
