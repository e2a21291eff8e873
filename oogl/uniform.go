// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/exp/slices"

	"cardboard.dev/f32"
	"cardboard.dev/f32color"
	"cardboard.dev/internal/gl"
)

// UniformValue is the set of Go types that can be assigned to uniforms.
type UniformValue interface {
	float32 | int32 | uint32 | bool | f32.Point | image.Point | [2]uint32 | f32color.RGBA | *TextureUnit | *Texture2DBinding
}

// Uniform is a typed handle to a uniform of a linked program. A handle
// to a uniform the program does not use is inactive and setting it does
// nothing.
type Uniform[T UniformValue] struct {
	p      *Program
	gen    int
	name   string
	loc    gl.Uniform
	active bool
}

// GetUniform returns a handle to the named uniform of p. It panics if
// the uniform is active but its shader type does not accept values of
// type T.
func GetUniform[T UniformValue](p *Program, name string) Uniform[T] {
	p.checkLinked()
	u := Uniform[T]{p: p, gen: p.gen, name: name}
	d, ok := p.uniforms[name]
	if !ok {
		return u
	}
	if !slices.Contains(uniformTypes[T](), d.Type) {
		var zero T
		panic(fmt.Errorf("uniform %q: value type %T cannot be bound to shader type %s", name, zero, d.Type))
	}
	u.loc = gl.Uniform{V: d.Location}
	u.active = true
	return u
}

// uniformTypes returns the shader types accepting values of type T.
func uniformTypes[T UniformValue]() []ShaderDataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return []ShaderDataType{TypeFloat}
	case int32, uint32:
		return []ShaderDataType{TypeInt}
	case bool:
		return []ShaderDataType{TypeBool}
	case f32.Point:
		return []ShaderDataType{TypeVec2}
	case image.Point, [2]uint32:
		return []ShaderDataType{TypeIVec2}
	case f32color.RGBA:
		return []ShaderDataType{TypeVec4}
	case *TextureUnit:
		return []ShaderDataType{TypeSampler2D, TypeSamplerCube}
	case *Texture2DBinding:
		return []ShaderDataType{TypeSampler2D}
	default:
		panic(fmt.Errorf("unsupported uniform value type %T", zero))
	}
}

// Name returns the uniform name.
func (u Uniform[T]) Name() string {
	return u.name
}

// Active reports whether the program uses the uniform.
func (u Uniform[T]) Active() bool {
	return u.active
}

// Location returns the uniform location, InactiveLocation if inactive.
func (u Uniform[T]) Location() int {
	if !u.active {
		return InactiveLocation
	}
	return u.loc.V
}

// Set assigns v to the uniform of the program bound by pb. It panics if
// pb binds another program or the program was linked again since the
// handle was obtained.
func (u Uniform[T]) Set(pb *ProgramBinding, v T) {
	pb.check()
	if u.p == nil {
		panic(fmt.Errorf("uniform %q: handle not obtained from GetUniform", u.name))
	}
	if pb.p != u.p {
		panic(fmt.Errorf("uniform %q of program #%d set through binding of program #%d", u.name, u.p.prog.V, pb.p.prog.V))
	}
	if u.gen != u.p.gen {
		panic(fmt.Errorf("uniform %q: program #%d was linked again since the handle was obtained", u.name, u.p.prog.V))
	}
	if !u.active {
		return
	}
	f := u.p.ctx.f
	switch v := any(v).(type) {
	case float32:
		f.Uniform1f(u.loc, v)
	case int32:
		f.Uniform1i(u.loc, int(v))
	case uint32:
		if v > math.MaxInt32 {
			panic(fmt.Errorf("uniform %q: value %d overflows int", u.name, v))
		}
		f.Uniform1i(u.loc, int(v))
	case bool:
		b := 0
		if v {
			b = 1
		}
		f.Uniform1i(u.loc, b)
	case f32.Point:
		f.Uniform2f(u.loc, v.X, v.Y)
	case image.Point:
		f.Uniform2i(u.loc, v.X, v.Y)
	case [2]uint32:
		if v[0] > math.MaxInt32 || v[1] > math.MaxInt32 {
			panic(fmt.Errorf("uniform %q: value %v overflows ivec2", u.name, v))
		}
		f.Uniform2i(u.loc, int(v[0]), int(v[1]))
	case f32color.RGBA:
		f.Uniform4f(u.loc, v.R, v.G, v.B, v.A)
	case *TextureUnit:
		v.check()
		f.Uniform1i(u.loc, v.index)
	case *Texture2DBinding:
		v.check()
		f.Uniform1i(u.loc, v.unit)
	}
}
