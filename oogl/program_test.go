// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"image"
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardboard.dev/f32"
	"cardboard.dev/f32color"
	"cardboard.dev/internal/gl"
	"cardboard.dev/internal/gl/gltest"
)

func TestShaderCompile(t *testing.T) {
	ctx, f := newTestContext(t)
	s := NewShader(ctx, FragmentShader)
	defer s.Release()
	assert.Equal(t, FragmentShader, s.Type())
	assert.Equal(t, []any{gl.Enum(gl.FRAGMENT_SHADER)}, f.CallsTo("CreateShader")[0].Args)

	require.PanicsWithError(t, "fragment shader source contains a NUL byte at offset 4", func() {
		s.SetSource([]byte("void\x00main"))
	})
	assert.Zero(t, f.Count("ShaderSource"))

	s.SetSource([]byte("void main() {}"))
	assert.True(t, s.Compile())
	assert.Empty(t, s.InfoLog())

	f.CompileFails = true
	f.InfoLog = "0:1: syntax error"
	assert.False(t, s.Compile())
	assert.Equal(t, []byte("0:1: syntax error"), s.InfoLog())

	s.Release()
	s.Release()
	assert.Equal(t, 1, f.Count("DeleteShader"))
}

func TestProgramDescriptors(t *testing.T) {
	ctx, f := newTestContext(t)
	p := newLinkedProgram(t, ctx, f, testReflection)

	assert.Equal(t, []string{"u_color", "u_offset", "u_tex", "u_weights"}, p.UniformNames())
	assert.Equal(t, []string{"a_color", "a_pos"}, p.AttribNames())
	assert.Equal(t, UniformDescriptor{Location: 3, Type: TypeFloat, Len: 4}, p.UniformDescriptors()["u_weights"])
	assert.Equal(t, UniformDescriptor{Location: 0, Type: TypeVec3, Len: 1}, p.UniformDescriptors()["u_offset"])
	assert.Equal(t, AttribDescriptor{Location: 1, Type: TypeVec4, Len: 1}, p.AttribDescriptors()["a_color"])
}

func TestLinkFailure(t *testing.T) {
	ctx, f := newTestContext(t)
	f.LinkFails = true
	f.InfoLog = "undefined varying"
	p := NewProgram(ctx)
	defer p.Release()
	assert.False(t, p.Link())
	assert.False(t, p.Linked())
	assert.Equal(t, []byte("undefined varying"), p.InfoLog())
	assert.Nil(t, p.UniformDescriptors())
	require.PanicsWithError(t, "program #1 is not linked", func() {
		GetUniform[float32](p, "u_alpha")
	})
}

func TestBindAttribLocation(t *testing.T) {
	ctx, f := newTestContext(t)
	f.Reflection = testReflection
	p := NewProgram(ctx)
	defer p.Release()
	p.BindAttribLocation(3, "a_pos")
	require.True(t, p.Link())
	assert.Equal(t, 3, p.AttribDescriptors()["a_pos"].Location)
	assert.Equal(t, 0, p.AttribDescriptors()["a_color"].Location)

	require.PanicsWithError(t, "attribute location 16 out of range (max 16)", func() {
		p.BindAttribLocation(16, "a_color")
	})
}

func TestUniformTypeMismatch(t *testing.T) {
	ctx, f := newTestContext(t)
	p := newLinkedProgram(t, ctx, f, testReflection)
	pb := p.Bind()
	defer pb.Release()
	f.Reset()

	require.PanicsWithError(t, `uniform "u_offset": value type f32.Point cannot be bound to shader type vec3`, func() {
		GetUniform[f32.Point](p, "u_offset").Set(pb, f32.Pt(1, 2))
	})
	require.PanicsWithError(t, `uniform "u_tex": value type float32 cannot be bound to shader type sampler2D`, func() {
		GetUniform[float32](p, "u_tex")
	})
	for _, c := range f.Calls {
		assert.NotContains(t, c.Name, "Uniform")
	}
}

func TestUniformSet(t *testing.T) {
	ctx, f := newTestContext(t)
	p := newLinkedProgram(t, ctx, f, testReflection)
	color := GetUniform[f32color.RGBA](p, "u_color")
	weights := GetUniform[float32](p, "u_weights")
	tex := GetUniform[*TextureUnit](p, "u_tex")
	missing := GetUniform[image.Point](p, "u_missing")
	assert.True(t, color.Active())
	assert.False(t, missing.Active())
	assert.Equal(t, InactiveLocation, missing.Location())

	unit := ctx.NewTextureUnit()
	defer unit.Release()
	unit2 := ctx.NewTextureUnit()
	defer unit2.Release()

	pb := p.Bind()
	defer pb.Release()
	f.Reset()
	color.Set(pb, f32color.RGBA{R: 1, G: .5, B: .25, A: 1})
	weights.Set(pb, 2.5)
	tex.Set(pb, unit2)
	missing.Set(pb, image.Pt(1, 2))

	assert.Equal(t, []any{gl.Uniform{V: 1}, float32(1), float32(.5), float32(.25), float32(1)}, f.CallsTo("Uniform4f")[0].Args)
	assert.Equal(t, []any{gl.Uniform{V: 3}, float32(2.5)}, f.CallsTo("Uniform1f")[0].Args)
	assert.Equal(t, []any{gl.Uniform{V: 2}, 1}, f.CallsTo("Uniform1i")[0].Args)
	assert.Zero(t, f.Count("Uniform2i"))

	unit2.Release()
	require.PanicsWithError(t, "use of texture unit 1 after Release", func() {
		tex.Set(pb, unit2)
	})
}

func TestUniformScalarTypes(t *testing.T) {
	ctx, f := newTestContext(t)
	p := newLinkedProgram(t, ctx, f, uniformsOnly(
		gl.ActiveInfo{Name: "u_count", Size: 1, Type: gl.INT},
		gl.ActiveInfo{Name: "u_flag", Size: 1, Type: gl.BOOL},
		gl.ActiveInfo{Name: "u_cell", Size: 1, Type: gl.INT_VEC2},
		gl.ActiveInfo{Name: "u_sampler", Size: 1, Type: gl.SAMPLER_2D},
	))
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	tb := tex.BindUnit(4)
	defer tb.Release()
	pb := p.Bind()
	defer pb.Release()
	f.Reset()

	GetUniform[int32](p, "u_count").Set(pb, -3)
	GetUniform[uint32](p, "u_count").Set(pb, 7)
	GetUniform[bool](p, "u_flag").Set(pb, true)
	GetUniform[image.Point](p, "u_cell").Set(pb, image.Pt(2, 3))
	GetUniform[[2]uint32](p, "u_cell").Set(pb, [2]uint32{4, 5})
	GetUniform[*Texture2DBinding](p, "u_sampler").Set(pb, tb)

	assert.Equal(t, []gltest.Call{
		{Name: "Uniform1i", Args: []any{gl.Uniform{V: 0}, -3}},
		{Name: "Uniform1i", Args: []any{gl.Uniform{V: 0}, 7}},
		{Name: "Uniform1i", Args: []any{gl.Uniform{V: 1}, 1}},
		{Name: "Uniform2i", Args: []any{gl.Uniform{V: 2}, 2, 3}},
		{Name: "Uniform2i", Args: []any{gl.Uniform{V: 2}, 4, 5}},
		{Name: "Uniform1i", Args: []any{gl.Uniform{V: 3}, 4}},
	}, f.Calls)

	require.Panics(t, func() {
		GetUniform[uint32](p, "u_count").Set(pb, 1<<31)
	})
}

func TestUniformWrongProgram(t *testing.T) {
	ctx, f := newTestContext(t)
	a := newLinkedProgram(t, ctx, f, testReflection)
	b := newLinkedProgram(t, ctx, f, testReflection)
	color := GetUniform[f32color.RGBA](a, "u_color")

	bb := b.Bind()
	require.PanicsWithError(t, `uniform "u_color" of program #1 set through binding of program #2`, func() {
		color.Set(bb, f32color.RGBA{})
	})
	bb.Release()

	// Linking again invalidates handles.
	require.True(t, a.Link())
	ab := a.Bind()
	defer ab.Release()
	require.PanicsWithError(t, `uniform "u_color": program #1 was linked again since the handle was obtained`, func() {
		color.Set(ab, f32color.RGBA{})
	})
	GetUniform[f32color.RGBA](a, "u_color").Set(ab, f32color.RGBA{A: 1})
	assert.Equal(t, 1, f.Count("Uniform4f"))
}

func TestAttribHandles(t *testing.T) {
	ctx, f := newTestContext(t)
	p := newLinkedProgram(t, ctx, f, testReflection)

	pos := GetAttrib[f32.Point](p, "a_pos")
	assert.True(t, pos.Active())
	assert.Equal(t, AttribPtr{Location: 0, Type: AttribPtrType{Scalar: Float, Len: 2}}, pos.ToPointerSimple())
	assert.Equal(t, AttribPtr{Location: 0, Type: AttribPtrType{Scalar: Short, Len: 2, Normalize: true}},
		pos.ToPointer(AttribPtrType{Scalar: Short, Len: 2, Normalize: true}))
	require.PanicsWithError(t, `attribute "a_pos": pointer of 3 components cannot feed value type f32.Point of 2 components`, func() {
		pos.ToPointer(AttribPtrType{Scalar: Float, Len: 3})
	})

	require.PanicsWithError(t, `attribute "a_color": value type f32.Point cannot be bound to shader type vec4`, func() {
		GetAttrib[f32.Point](p, "a_color")
	})

	missing := GetAttrib[float32](p, "a_missing")
	assert.False(t, missing.Active())
	assert.Equal(t, InactiveLocation, missing.ToPointerSimple().Location)

	require.True(t, p.Link())
	require.Panics(t, func() {
		pos.ToPointerSimple()
	})
}

func TestNewProgramFromSources(t *testing.T) {
	ctx, f := newTestContext(t)
	f.Reflection = testReflection
	vert := shader.Sources{
		Name:      "blit.vert",
		GLSL100ES: "attribute vec2 a_pos; void main() {}",
		Inputs: []shader.InputLocation{
			{Name: "a_pos", Location: 1, Type: shader.DataTypeFloat, Size: 2},
			{Name: "a_color", Location: 0, Type: shader.DataTypeFloat, Size: 4},
		},
	}
	frag := shader.Sources{
		Name:      "blit.frag",
		GLSL100ES: "uniform sampler2D u_tex; void main() {}",
		Textures:  []shader.TextureBinding{{Name: "u_tex", Binding: 2}},
	}
	p, err := NewProgramFromSources(ctx, vert, frag)
	require.NoError(t, err)
	defer p.Release()

	assert.Equal(t, 1, p.AttribDescriptors()["a_pos"].Location)
	assert.Equal(t, []any{gl.Uniform{V: 2}, 2}, f.CallsTo("Uniform1i")[0].Args)
	assert.Equal(t, 2, f.Count("DeleteShader"))
	assert.Equal(t, 2, f.Count("DetachShader"))

	f.CompileFails = true
	f.InfoLog = "0:1: error"
	_, err = NewProgramFromSources(ctx, vert, frag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blit.vert")
	assert.Contains(t, err.Error(), "0:1: error")

	f.CompileFails = false
	_, err = NewProgramFromSources(ctx, vert, shader.Sources{Name: "empty.frag"})
	require.ErrorContains(t, err, "no GLSL ES 1.00 source")

	f.InfoLog = ""
	f.LinkFails = true
	_, err = NewProgramFromSources(ctx, vert, frag)
	require.ErrorContains(t, err, "link blit.vert, blit.frag")
}
