// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glyphcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the uploaded texture cannot be
	// drawn by the given gpucontext.TextureDrawer.
	ErrInvalidDrawContext = errors.New("glyphcanvas: texture is not a gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("glyphcanvas: draw context has no TextureCreator")
)

// RenderTo uploads the canvas if needed and draws it at the surface
// origin. dc is the per-frame drawer, usually gogpu.Context.AsTextureDrawer().
//
// The first call creates the GPU texture; later calls update it in place
// and only when the canvas is dirty.
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// Texture creation waits for the GPU, so the parked texture is
		// no longer referenced once it returns.
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("glyphcanvas: NewTextureFromRGBA failed: %w", err)
		}

		// gg pixmaps are premultiplied.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}

		c.texture = realTex
		tex = realTex

		destroy(c.oldTexture)
		c.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, 0, 0)
}
