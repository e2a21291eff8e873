// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardboard.dev/internal/gl"
	"cardboard.dev/internal/gl/gltest"
)

func TestCaps(t *testing.T) {
	f := gltest.New()
	f.Strings[gl.EXTENSIONS] = "GL_OES_texture_npot GL_KHR_debug GL_EXT_blend_minmax"
	ctx, _ := newStubContext(t, f)
	caps := ctx.Caps()

	assert.Equal(t, "gltest", caps.Vendor)
	assert.Equal(t, [2]int{2, 0}, caps.GLVersion)
	assert.Equal(t, []string{"GL_EXT_blend_minmax", "GL_KHR_debug", "GL_OES_texture_npot"}, caps.Extensions)
	assert.True(t, caps.HasExtension("GL_EXT_blend_minmax"))
	assert.False(t, caps.HasExtension("GL_OES_vertex_array_object"))
	assert.True(t, caps.DebugLabels)
	assert.True(t, caps.DebugOutput)
	assert.True(t, caps.NPOTTextures)
	assert.Equal(t, 16, caps.MaxTextureUnits)
	assert.Equal(t, 4096, caps.MaxTextureSize)
	assert.Equal(t, 16, caps.MaxVertexAttribs)
	assert.Equal(t, 256, caps.MaxLabelLength)
}

func TestCapsWithoutDebugEntryPoints(t *testing.T) {
	f := gltest.New()
	f.Labels = false
	f.DebugOutput = false
	ctx, _ := newStubContext(t, f, WithDebugOutput(true))
	caps := ctx.Caps()
	assert.False(t, caps.DebugLabels)
	assert.False(t, caps.DebugOutput)
	assert.Zero(t, caps.MaxLabelLength)
	assert.Zero(t, f.Count("DebugMessageCallback"))
}

func TestLoadMissingEntryPoints(t *testing.T) {
	ctx, err := Load(func(string) unsafe.Pointer { return nil })
	require.Error(t, err)
	assert.Nil(t, ctx)
	assert.True(t, strings.HasPrefix(err.Error(), "oogl: gl: "), err.Error())
	require.Panics(t, func() {
		MustLoad(func(string) unsafe.Pointer { return nil })
	})
}

func TestProbeLogged(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	newStubContext(t, gltest.New(), WithLogger(l))
	assert.Contains(t, buf.String(), "oogl: context created")
	assert.Contains(t, buf.String(), "texture_units=16")
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)
	newTestContext(t)
	assert.Contains(t, buf.String(), `renderer="gltest software"`)

	SetLogger(nil)
	buf.Reset()
	newTestContext(t)
	assert.Empty(t, buf.String())
}

func TestTextureUnitPool(t *testing.T) {
	ctx, _ := newTestContext(t, WithMaxTextureUnits(2))
	assert.Equal(t, 2, ctx.FreeTextureUnits())
	u0 := ctx.NewTextureUnit()
	u1 := ctx.NewTextureUnit()
	assert.Equal(t, 0, u0.Index())
	assert.Equal(t, 1, u1.Index())
	require.PanicsWithError(t, "all 2 texture units are in use", func() {
		ctx.NewTextureUnit()
	})

	u0.Release()
	u0.Release()
	assert.Equal(t, 1, ctx.FreeTextureUnits())
	u2 := ctx.NewTextureUnit()
	assert.Equal(t, 0, u2.Index())
	u1.Release()
	u2.Release()
	assert.Equal(t, 2, ctx.FreeTextureUnits())
}

func TestTextureUnitPoolLimit(t *testing.T) {
	f := gltest.New()
	f.Integers[gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS] = 80
	ctx, _ := newStubContext(t, f)
	assert.Equal(t, 80, ctx.Caps().MaxTextureUnits)
	assert.Equal(t, 32, ctx.FreeTextureUnits())
}

func TestDebugLabels(t *testing.T) {
	ctx, f := newTestContext(t)
	vb := NewVertexBuffer[vertex](ctx, StaticDraw, vertexAttribs)
	defer vb.Release()
	vb.SetDebugLabel([]byte("quad vertices"))
	assert.Equal(t, []byte("quad vertices"), vb.DebugLabel())
	assert.Equal(t, []any{gl.Enum(gl.BUFFER_KHR), uint(1), "quad vertices"}, f.CallsTo("ObjectLabel")[0].Args)

	p := NewProgram(ctx)
	defer p.Release()
	p.SetDebugLabel([]byte("blit"))
	assert.Equal(t, gl.Enum(gl.PROGRAM_KHR), f.CallsTo("ObjectLabel")[1].Args[0])

	long := bytes.Repeat([]byte{'x'}, 256)
	require.PanicsWithError(t, "debug label of 256 bytes exceeds the limit of 255 bytes", func() {
		vb.SetDebugLabel(long)
	})
	vb.SetDebugLabel(long[:255])
	assert.Equal(t, long[:255], vb.DebugLabel())
	require.Panics(t, func() {
		vb.SetDebugLabel([]byte("a\x00b"))
	})
	assert.Equal(t, 3, f.Count("ObjectLabel"))
}

func TestDebugLabelsUnavailable(t *testing.T) {
	f := gltest.New()
	f.Labels = false
	ctx, _ := newStubContext(t, f)
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	tex.SetDebugLabel([]byte("atlas"))
	assert.Nil(t, tex.DebugLabel())
	assert.Zero(t, f.Count("ObjectLabel"))
	assert.Zero(t, f.Count("GetObjectLabel"))
}

func TestDebugLabelsRequireKHRDebug(t *testing.T) {
	f := gltest.New()
	f.Strings[gl.EXTENSIONS] = "GL_EXT_debug_label GL_EXT_debug_marker"
	ctx, _ := newStubContext(t, f)
	assert.False(t, ctx.Caps().DebugLabels)
	assert.Zero(t, ctx.Caps().MaxLabelLength)

	vb := NewVertexBuffer[vertex](ctx, StaticDraw, vertexAttribs)
	defer vb.Release()
	vb.SetDebugLabel([]byte("quad"))
	assert.Nil(t, vb.DebugLabel())
	assert.Zero(t, f.Count("ObjectLabel"))
	assert.Zero(t, f.Count("GetObjectLabel"))
}

func TestDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := gltest.New()
	ctx := newContext(f, WithDebugOutput(true), WithLogger(l))
	assert.True(t, f.Enabled(gl.DEBUG_OUTPUT_KHR))
	assert.True(t, f.Enabled(gl.DEBUG_OUTPUT_SYNCHRONOUS_KHR))

	f.Emit(gl.DebugMessage{
		Source:   gl.DEBUG_SOURCE_API_KHR,
		Type:     gl.DEBUG_TYPE_ERROR_KHR,
		ID:       1282,
		Severity: gl.DEBUG_SEVERITY_HIGH_KHR,
		Message:  "GL_INVALID_OPERATION in glDrawArrays",
	})
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `message="GL_INVALID_OPERATION in glDrawArrays"`)
	assert.Contains(t, out, "source=api")
	assert.Contains(t, out, "type=error")
	assert.Contains(t, out, "id=1282")

	ctx.Release()
	assert.False(t, f.Enabled(gl.DEBUG_OUTPUT_KHR))
	calls := f.CallsTo("DebugMessageCallback")
	require.Len(t, calls, 2)
	assert.Equal(t, []any{false}, calls[1].Args)

	buf.Reset()
	f.Emit(gl.DebugMessage{Message: "dropped"})
	assert.Empty(t, buf.String())
}
