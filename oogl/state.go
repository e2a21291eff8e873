// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"image"

	"cardboard.dev/f32color"
	"cardboard.dev/internal/gl"
)

// ClearFlags selects the buffers cleared by Context.Clear.
type ClearFlags uint8

const (
	ClearColorBuffer ClearFlags = 1 << iota
	ClearDepthBuffer
	ClearStencilBuffer
)

// BlendFactor is a source or destination blending factor.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstantColor
	BlendOneMinusConstantColor
	BlendConstantAlpha
	BlendOneMinusConstantAlpha
	BlendSrcAlphaSaturate
)

// BlendEquation combines the weighted source and destination colors.
type BlendEquation uint8

const (
	BlendAdd BlendEquation = iota
	BlendSubtract
	BlendReverseSubtract
)

// fixedState caches fixed function state so that redundant calls are
// skipped.
type fixedState struct {
	clearColor    f32color.RGBA
	clearColorSet bool
	viewport      image.Rectangle
	viewportSet   bool
	blend         bool
	blendSet      bool
	srcFactor     BlendFactor
	dstFactor     BlendFactor
	factorsSet    bool
	equation      BlendEquation
	equationSet   bool
}

// ClearColor sets the color used by Clear.
func (c *Context) ClearColor(col f32color.RGBA) {
	s := &c.state
	if s.clearColorSet && s.clearColor == col {
		return
	}
	s.clearColor, s.clearColorSet = col, true
	c.f.ClearColor(col.Float32())
}

// Clear clears the selected buffers of the bound framebuffer.
func (c *Context) Clear(flags ClearFlags) {
	var mask gl.Enum
	if flags&ClearColorBuffer != 0 {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if flags&ClearDepthBuffer != 0 {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if flags&ClearStencilBuffer != 0 {
		mask |= gl.STENCIL_BUFFER_BIT
	}
	c.f.Clear(mask)
}

// SetViewport maps normalized device coordinates to r, in pixels.
func (c *Context) SetViewport(r image.Rectangle) {
	s := &c.state
	if s.viewportSet && s.viewport == r {
		return
	}
	s.viewport, s.viewportSet = r, true
	c.f.Viewport(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// SetBlending enables or disables blending.
func (c *Context) SetBlending(enable bool) {
	s := &c.state
	if s.blendSet && s.blend == enable {
		return
	}
	s.blend, s.blendSet = enable, true
	if enable {
		c.f.Enable(gl.BLEND)
	} else {
		c.f.Disable(gl.BLEND)
	}
}

// SetBlendFactors sets the source and destination blending factors.
func (c *Context) SetBlendFactors(src, dst BlendFactor) {
	s := &c.state
	if s.factorsSet && s.srcFactor == src && s.dstFactor == dst {
		return
	}
	s.srcFactor, s.dstFactor, s.factorsSet = src, dst, true
	c.f.BlendFunc(src.glEnum(), dst.glEnum())
}

// SetBlendEquation sets how weighted colors are combined.
func (c *Context) SetBlendEquation(eq BlendEquation) {
	s := &c.state
	if s.equationSet && s.equation == eq {
		return
	}
	s.equation, s.equationSet = eq, true
	c.f.BlendEquation(eq.glEnum())
}

// SetBlendColor sets the constant color of the constant blend factors.
func (c *Context) SetBlendColor(col f32color.RGBA) {
	c.f.BlendColor(col.Float32())
}

func (f BlendFactor) glEnum() gl.Enum {
	switch f {
	case BlendZero:
		return gl.ZERO
	case BlendOne:
		return gl.ONE
	case BlendSrcColor:
		return gl.SRC_COLOR
	case BlendOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case BlendDstColor:
		return gl.DST_COLOR
	case BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case BlendSrcAlpha:
		return gl.SRC_ALPHA
	case BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case BlendDstAlpha:
		return gl.DST_ALPHA
	case BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case BlendConstantColor:
		return gl.CONSTANT_COLOR
	case BlendOneMinusConstantColor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	case BlendConstantAlpha:
		return gl.CONSTANT_ALPHA
	case BlendOneMinusConstantAlpha:
		return gl.ONE_MINUS_CONSTANT_ALPHA
	case BlendSrcAlphaSaturate:
		return gl.SRC_ALPHA_SATURATE
	default:
		panic(fmt.Errorf("invalid blend factor %d", f))
	}
}

func (e BlendEquation) glEnum() gl.Enum {
	switch e {
	case BlendAdd:
		return gl.FUNC_ADD
	case BlendSubtract:
		return gl.FUNC_SUBTRACT
	case BlendReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	default:
		panic(fmt.Errorf("invalid blend equation %d", e))
	}
}
