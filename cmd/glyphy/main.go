// Command glyphy draws colored text lines right-aligned in a GPU window.
//
// Usage:
//
//	glyphy [-line 'text|#rrggbb|scale']... [-width 800] [-height 600]
//	glyphy -png out.png ...   render once offscreen
//	glyphy -dump ...          print the layout plan
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/glyphy"
	"github.com/gogpu/glyphy/integration/glyphcanvas"
	"github.com/gogpu/glyphy/internal/config"
	"github.com/gogpu/glyphy/internal/plandump"
	"github.com/gogpu/gogpu"
	"github.com/muesli/termenv"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glyphy.SetLogger(logger)
	gg.SetLogger(logger)

	if err := run(cfg); err != nil {
		logger.Error("glyphy failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	entries, err := cfg.Entries()
	if err != nil {
		return err
	}

	if cfg.Dump {
		out := termenv.NewOutput(os.Stdout)
		return plandump.Write(out, glyphy.Plan(entries, float64(cfg.Width)))
	}

	renderer, err := glyphy.NewRenderer(cfg.RendererOptions()...)
	if err != nil {
		return err
	}
	defer func() { _ = renderer.Close() }()

	if cfg.PNG != "" {
		return renderPNG(cfg, renderer, entries)
	}
	return runWindow(cfg, renderer, entries)
}

// renderPNG draws one frame offscreen and saves it.
func renderPNG(cfg config.Config, renderer *glyphy.Renderer, entries []glyphy.TextEntry) error {
	dc := gg.NewContext(cfg.Width, cfg.Height)
	defer func() { _ = dc.Close() }()

	renderer.Draw(dc, glyphy.Plan(entries, float64(cfg.Width)))

	if err := dc.SavePNG(cfg.PNG); err != nil {
		return fmt.Errorf("save %s: %w", cfg.PNG, err)
	}
	glyphy.Logger().Info("frame saved", "path", cfg.PNG, "width", cfg.Width, "height", cfg.Height)
	return nil
}

// runWindow opens the window and redraws the plan whenever a frame is
// requested. The plan is recomputed from the current surface width so
// the text stays against the right edge after a resize.
func runWindow(cfg config.Config, renderer *glyphy.Renderer, entries []glyphy.TextEntry) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false))

	logger := glyphy.Logger()
	var canvas *glyphcanvas.Canvas

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			c, err := glyphcanvas.New(renderer, w, h)
			if err != nil {
				logger.Error("canvas creation failed", "err", err)
				app.Quit()
				return
			}
			if provider := app.GPUContextProvider(); provider != nil {
				_ = c.ShareDevice(provider)
			}
			logger.Info("window ready", "backend", dc.Backend(), "font", renderer.FontName())
			canvas = c
		}

		if err := canvas.Resize(w, h); err != nil {
			logger.Warn("canvas resize failed", "err", err)
			return
		}

		plan := glyphy.Plan(entries, float64(canvas.Width()))
		if err := canvas.DrawPlan(plan); err != nil {
			logger.Warn("draw failed", "err", err)
			return
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			logger.Warn("render failed", "err", err)
		}
	})

	app.OnClose(func() {
		if canvas != nil {
			_ = canvas.Close()
		}
		gg.CloseAccelerator()
	})

	return app.Run()
}
