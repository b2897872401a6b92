// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/glyphy"
	"github.com/gogpu/gpucontext"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("glyphcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("glyphcanvas: invalid dimensions")

	// ErrNilRenderer is returned when New is called without a renderer.
	ErrNilRenderer = errors.New("glyphcanvas: nil renderer")

	// ErrNilProvider is returned when ShareDevice is called with a nil provider.
	ErrNilProvider = errors.New("glyphcanvas: nil DeviceProvider")
)

// textureDestroyer matches the gogpu texture Destroy method.
type textureDestroyer interface {
	Destroy()
}

// Canvas draws layout plans offscreen and hands the result to a window.
type Canvas struct {
	ctx         *gg.Context
	renderer    *glyphy.Renderer
	texture     any // *pendingTexture until the first RenderTo, then the GPU texture
	oldTexture  any // replaced by a resize, destroyed once the GPU is idle
	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a Canvas of the given pixel size drawing with renderer.
// The renderer stays owned by the caller.
func New(renderer *glyphy.Renderer, width, height int) (*Canvas, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	glyphy.Logger().Info("canvas created", "width", width, "height", height)

	return &Canvas{
		ctx:      gg.NewContext(width, height),
		renderer: renderer,
		width:    width,
		height:   height,
		dirty:    true,
	}, nil
}

// ShareDevice offers the window's GPU device to gg's accelerator so both
// use one device. The provider should come from
// gogpu.App.GPUContextProvider().
//
// A refusal from the accelerator is logged and not returned: gg falls back
// to its own device or to CPU rendering.
func (c *Canvas) ShareDevice(provider gpucontext.DeviceProvider) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if provider == nil {
		return ErrNilProvider
	}
	if err := gg.SetAcceleratorDeviceProvider(provider); err != nil {
		glyphy.Logger().Warn("device sharing unavailable", "err", err)
	}
	return nil
}

// DrawPlan renders plan into the offscreen context and marks the canvas
// for upload.
func (c *Canvas) DrawPlan(plan glyphy.LayoutPlan) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.renderer.Draw(c.ctx, plan)
	c.dirty = true
	return nil
}

// Context returns the offscreen drawing context, or nil once closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Width returns the canvas width in pixels. It is the viewport width
// plans for this canvas should be computed against.
func (c *Canvas) Width() int {
	return c.width
}

// IsDirty reports whether the canvas has pixels not yet uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Resize changes the canvas size. The content is cleared; callers redraw
// with DrawPlan. Resizing to the current size is a no-op.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}

	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("glyphcanvas: context resize failed: %w", err)
	}

	glyphy.Logger().Debug("canvas resized",
		"from", fmt.Sprintf("%dx%d", c.width, c.height),
		"to", fmt.Sprintf("%dx%d", width, height))

	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush brings the texture up to date with the offscreen pixels and
// returns it. Before the first RenderTo the returned value is a pending
// placeholder; the real GPU texture needs a TextureCreator.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// In-flight command buffers may still sample the old texture, so it is
	// parked and destroyed after the next texture write.
	if c.sizeChanged {
		if c.texture != nil {
			destroy(c.oldTexture)
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	if err := c.ctx.FlushGPU(); err != nil {
		// CPU-rendered glyphs are already in the pixmap.
		glyphy.Logger().Debug("gpu flush failed", "err", err)
	}

	data := c.ctx.ResizeTarget().Data()

	if c.texture == nil {
		c.texture = &pendingTexture{width: c.width, height: c.height, data: data}
		c.dirty = false
		return c.texture, nil
	}

	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("glyphcanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Close releases the textures and the offscreen context. The renderer is
// left open. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	destroy(c.oldTexture)
	c.oldTexture = nil
	destroy(c.texture)
	c.texture = nil

	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}
	c.renderer = nil
	return nil
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds pixels until RenderTo can create the GPU texture.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
