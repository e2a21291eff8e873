// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && cgo) || windows

package oogl

import (
	"image"
	"runtime"
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardboard.dev/f32"
	"cardboard.dev/f32color"
	"cardboard.dev/internal/egl"
	"cardboard.dev/internal/gl"
)

// newEGLContext returns a context for a real OpenGL ES 2.0 driver, or
// skips the test when none is available.
func newEGLContext(t *testing.T) *Context {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	ec, err := egl.NewContext(16, 16)
	if err != nil {
		t.Skipf("no EGL context: %v", err)
	}
	t.Cleanup(ec.Release)
	if err := ec.MakeCurrent(); err != nil {
		t.Skipf("EGL context not usable: %v", err)
	}
	t.Cleanup(ec.ReleaseCurrent)
	ctx, err := Load(gl.LibGLESv2, WithDebugOutput(true))
	if err != nil {
		t.Skipf("no OpenGL ES 2.0 library: %v", err)
	}
	t.Cleanup(ctx.Release)
	return ctx
}

// newRenderTarget binds a framebuffer rendering to a new size×size
// RGBA texture.
func newRenderTarget(t *testing.T, ctx *Context, size int) (*Texture2D, *FramebufferBinding) {
	t.Helper()
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	t.Cleanup(tex.Release)
	tex.SetSize(image.Pt(size, size))
	tb := tex.Bind(nil)
	tb.Alloc(0)
	tb.SetFilters(Nearest, nil)
	tb.Release()

	fb := NewFramebuffer(ctx)
	t.Cleanup(fb.Release)
	fbb := fb.Bind()
	t.Cleanup(fbb.Release)
	fbb.AttachTexture2D(tex, 0)
	require.Equal(t, FramebufferComplete, fbb.Status())
	ctx.SetViewport(image.Rect(0, 0, size, size))
	return tex, fbb
}

func requireUniform(t *testing.T, pixels []byte, want [4]byte) {
	t.Helper()
	for i := 0; i < len(pixels); i += 4 {
		require.Equal(t, want[:], pixels[i:i+4], "pixel %d", i/4)
	}
}

func TestEGLClear(t *testing.T) {
	ctx := newEGLContext(t)
	_, fbb := newRenderTarget(t, ctx, 4)

	ctx.ClearColor(f32color.RGBA{R: 1, A: 1})
	ctx.Clear(ClearColorBuffer)
	got := make([]byte, 4*4*4)
	fbb.ReadPixels(image.Rect(0, 0, 4, 4), got)
	requireUniform(t, got, [4]byte{0xff, 0, 0, 0xff})
}

func TestEGLTextureRoundTrip(t *testing.T) {
	ctx := newEGLContext(t)
	tex, fbb := newRenderTarget(t, ctx, 4)

	data := make([]byte, 4*4*4)
	for i := range data {
		data[i] = byte(i * 3)
	}
	tb := tex.Bind(nil)
	tb.Set(0, data)
	tb.Release()

	got := make([]byte, len(data))
	fbb.ReadPixels(image.Rect(0, 0, 4, 4), got)
	assert.Equal(t, data, got)
}

func TestEGLDrawTriangleFan(t *testing.T) {
	ctx := newEGLContext(t)
	_, fbb := newRenderTarget(t, ctx, 8)

	vert := shader.Sources{
		Name: "fill.vert",
		GLSL100ES: `#version 100
attribute vec2 a_pos;
void main() {
	gl_Position = vec4(a_pos, 0.0, 1.0);
}
`,
		Inputs: []shader.InputLocation{{Name: "a_pos", Location: 0, Type: shader.DataTypeFloat, Size: 2}},
	}
	frag := shader.Sources{
		Name: "fill.frag",
		GLSL100ES: `#version 100
precision mediump float;
uniform vec4 u_color;
void main() {
	gl_FragColor = u_color;
}
`,
	}
	p, err := NewProgramFromSources(ctx, vert, frag)
	require.NoError(t, err)
	defer p.Release()
	var block struct {
		Pos   Attrib[f32.Point]      `glsl:"a_pos"`
		Color Uniform[f32color.RGBA] `glsl:"u_color"`
	}
	Reflect(p, &block)
	require.True(t, block.Pos.Active())
	require.True(t, block.Color.Active())

	vb := NewVertexBuffer[f32.Point](ctx, StaticDraw, []AttribPtr{block.Pos.ToPointerSimple()})
	defer vb.Release()
	pb := p.Bind()
	defer pb.Release()
	vbb := vb.Bind()
	defer vbb.Release()
	vbb.AllocAndSet([]f32.Point{f32.Pt(-1, -1), f32.Pt(1, -1), f32.Pt(1, 1), f32.Pt(-1, 1)})
	vbb.ConfigureAttribs()
	vbb.EnableAttribs()
	defer vbb.DisableAttribs()
	block.Color.Set(pb, f32color.RGBA{G: 1, A: 1})

	ctx.ClearColor(f32color.RGBA{})
	ctx.Clear(ClearColorBuffer)
	vbb.Draw(pb, TriangleFan)
	got := make([]byte, 8*8*4)
	fbb.ReadPixels(image.Rect(0, 0, 8, 8), got)
	requireUniform(t, got, [4]byte{0, 0xff, 0, 0xff})
}
