// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"

	"cardboard.dev/f32"
	"cardboard.dev/f32color"
)

// AttribValue is the set of Go types vertex attributes can be fed as.
type AttribValue interface {
	float32 | f32.Point | f32color.RGBA
}

// Attrib is a typed handle to a vertex attribute of a linked program. A
// handle to an attribute the program does not use is inactive; its
// pointers are at InactiveLocation.
type Attrib[T AttribValue] struct {
	p      *Program
	gen    int
	name   string
	loc    int
	active bool
}

// GetAttrib returns a handle to the named attribute of p. It panics if
// the attribute is active but its shader type does not accept values of
// type T.
func GetAttrib[T AttribValue](p *Program, name string) Attrib[T] {
	p.checkLinked()
	a := Attrib[T]{p: p, gen: p.gen, name: name, loc: InactiveLocation}
	d, ok := p.attribs[name]
	if !ok {
		return a
	}
	if want := attribType[T](); d.Type != want {
		var zero T
		panic(fmt.Errorf("attribute %q: value type %T cannot be bound to shader type %s", name, zero, d.Type))
	}
	a.loc = d.Location
	a.active = true
	return a
}

// attribType returns the shader type of attributes fed as T.
func attribType[T AttribValue]() ShaderDataType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return TypeFloat
	case f32.Point:
		return TypeVec2
	case f32color.RGBA:
		return TypeVec4
	default:
		panic(fmt.Errorf("unsupported attribute value type %T", zero))
	}
}

// attribLen returns the number of components of T.
func attribLen[T AttribValue]() int {
	switch attribType[T]() {
	case TypeVec2:
		return 2
	case TypeVec4:
		return 4
	default:
		return 1
	}
}

func (a Attrib[T]) Name() string {
	return a.name
}

// Active reports whether the program uses the attribute.
func (a Attrib[T]) Active() bool {
	return a.active
}

// Location returns the attribute location, InactiveLocation if
// inactive.
func (a Attrib[T]) Location() int {
	return a.loc
}

// ToPointer describes the attribute stored in vertex memory as t. It
// panics if t has a different number of components than T.
func (a Attrib[T]) ToPointer(t AttribPtrType) AttribPtr {
	a.checkGen()
	if n := attribLen[T](); t.Len != n {
		var zero T
		panic(fmt.Errorf("attribute %q: pointer of %d components cannot feed value type %T of %d components", a.name, t.Len, zero, n))
	}
	return AttribPtr{Location: a.loc, Type: t}
}

// ToPointerSimple describes the attribute stored in vertex memory as
// float32 components.
func (a Attrib[T]) ToPointerSimple() AttribPtr {
	return a.ToPointer(AttribPtrType{Scalar: Float, Len: attribLen[T]()})
}

func (a Attrib[T]) checkGen() {
	if a.p == nil {
		panic(fmt.Errorf("attribute %q: handle not obtained from GetAttrib", a.name))
	}
	if a.gen != a.p.gen {
		panic(fmt.Errorf("attribute %q: program #%d was linked again since the handle was obtained", a.name, a.p.prog.V))
	}
}
