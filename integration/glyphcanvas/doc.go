// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glyphcanvas puts glyphy layout plans into gogpu windows.
//
// A Canvas owns an offscreen gg.Context and a glyphy.Renderer. Each frame
// the plan is drawn into the context, the pixels are uploaded to a GPU
// texture, and the texture is drawn onto the window surface:
//
//	LayoutPlan -> Renderer -> gg.Context (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	canvas, err := glyphcanvas.New(renderer, 800, 600)
//	if err != nil {
//		return err
//	}
//	defer canvas.Close()
//	canvas.ShareDevice(app.GPUContextProvider())
//
//	app.OnDraw(func(dc *gogpu.Context) {
//		plan := glyphy.Plan(entries, float64(dc.Width()))
//		canvas.DrawPlan(plan)
//		canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// The device, queue and surface stay with the host application; the
// Canvas only sees them through gpucontext interfaces passed per call.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Drive it from the window's draw
// callback only.
package glyphcanvas
