// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"testing"

	"cardboard.dev/f32"
	"cardboard.dev/f32color"
	"cardboard.dev/internal/gl"
	"cardboard.dev/internal/gl/gltest"
)

type vertex struct {
	Pos   f32.Point
	Color f32color.RGBA
}

var vertexAttribs = []AttribPtr{
	{Location: 0, Type: AttribPtrType{Scalar: Float, Len: 2}},
	{Location: 1, Type: AttribPtrType{Scalar: Float, Len: 4}},
}

// newTestContext returns a context over a fresh stub, with the calls
// made while creating the context forgotten.
func newTestContext(t *testing.T, opts ...Option) (*Context, *gltest.Functions) {
	t.Helper()
	return newStubContext(t, gltest.New(), opts...)
}

func newStubContext(t *testing.T, f *gltest.Functions, opts ...Option) (*Context, *gltest.Functions) {
	t.Helper()
	ctx := newContext(f, opts...)
	t.Cleanup(ctx.Release)
	f.Reset()
	return ctx, f
}

// testReflection is the interface of a small textured shader pair.
var testReflection = gltest.Reflection{
	Uniforms: []gl.ActiveInfo{
		{Name: "u_offset", Size: 1, Type: gl.FLOAT_VEC3},
		{Name: "u_color", Size: 1, Type: gl.FLOAT_VEC4},
		{Name: "u_tex", Size: 1, Type: gl.SAMPLER_2D},
		{Name: "u_weights[0]", Size: 4, Type: gl.FLOAT},
	},
	Attribs: []gl.ActiveInfo{
		{Name: "a_pos", Size: 1, Type: gl.FLOAT_VEC2},
		{Name: "a_color", Size: 1, Type: gl.FLOAT_VEC4},
	},
}

// newLinkedProgram links a program reporting refl.
func newLinkedProgram(t *testing.T, ctx *Context, f *gltest.Functions, refl gltest.Reflection) *Program {
	t.Helper()
	f.Reflection = refl
	p := NewProgram(ctx)
	if !p.Link() {
		t.Fatalf("link failed: %s", p.InfoLog())
	}
	t.Cleanup(p.Release)
	return p
}

func uniformsOnly(uniforms ...gl.ActiveInfo) gltest.Reflection {
	return gltest.Reflection{Uniforms: uniforms}
}
