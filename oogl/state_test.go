// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"cardboard.dev/f32color"
	"cardboard.dev/internal/gl"
)

func TestFixedStateCaching(t *testing.T) {
	ctx, f := newTestContext(t)

	black := f32color.RGBA{A: 1}
	ctx.ClearColor(black)
	ctx.ClearColor(black)
	ctx.ClearColor(f32color.RGBA{R: 1, A: 1})
	assert.Equal(t, 2, f.Count("ClearColor"))

	ctx.SetViewport(image.Rectangle{})
	ctx.SetViewport(image.Rectangle{})
	ctx.SetViewport(image.Rect(0, 0, 640, 480))
	calls := f.CallsTo("Viewport")
	assert.Len(t, calls, 2)
	assert.Equal(t, []any{0, 0, 640, 480}, calls[1].Args)

	ctx.SetBlending(true)
	ctx.SetBlending(true)
	ctx.SetBlending(false)
	assert.Equal(t, 1, f.Count("Enable"))
	assert.Equal(t, 1, f.Count("Disable"))
	assert.False(t, f.Enabled(gl.BLEND))

	ctx.SetBlendFactors(BlendOne, BlendOneMinusSrcAlpha)
	ctx.SetBlendFactors(BlendOne, BlendOneMinusSrcAlpha)
	assert.Equal(t, []any{gl.Enum(gl.ONE), gl.Enum(gl.ONE_MINUS_SRC_ALPHA)}, f.CallsTo("BlendFunc")[0].Args)
	assert.Equal(t, 1, f.Count("BlendFunc"))

	ctx.SetBlendEquation(BlendReverseSubtract)
	ctx.SetBlendEquation(BlendReverseSubtract)
	assert.Equal(t, []any{gl.Enum(gl.FUNC_REVERSE_SUBTRACT)}, f.CallsTo("BlendEquation")[0].Args)
	assert.Equal(t, 1, f.Count("BlendEquation"))

	ctx.SetBlendColor(f32color.RGBA{R: .5})
	assert.Equal(t, []any{float32(.5), float32(0), float32(0), float32(0)}, f.CallsTo("BlendColor")[0].Args)
}

func TestClearFlags(t *testing.T) {
	ctx, f := newTestContext(t)
	ctx.Clear(ClearColorBuffer | ClearStencilBuffer)
	ctx.Clear(ClearDepthBuffer)
	calls := f.CallsTo("Clear")
	assert.Equal(t, []any{gl.Enum(gl.COLOR_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)}, calls[0].Args)
	assert.Equal(t, []any{gl.Enum(gl.DEPTH_BUFFER_BIT)}, calls[1].Args)
}
