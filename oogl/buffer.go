// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"unsafe"

	"gioui.org/shader"

	"cardboard.dev/internal/byteslice"
	"cardboard.dev/internal/gl"
)

// BufferUsageHint tells the driver how the contents of a buffer will be
// accessed.
type BufferUsageHint uint8

const (
	// StaticDraw buffers are set once and drawn many times.
	StaticDraw BufferUsageHint = iota
	// DynamicDraw buffers are set repeatedly and drawn many times.
	DynamicDraw
	// StreamDraw buffers are set once and drawn at most a few times.
	StreamDraw
)

// DrawPrimitive is the kind of primitive assembled by draw calls.
type DrawPrimitive uint8

const (
	Points DrawPrimitive = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

// ScalarType is the component type of a vertex attribute in memory.
type ScalarType uint8

const (
	Byte ScalarType = iota
	UnsignedByte
	Short
	UnsignedShort
	Float
)

// AttribPtrType describes the memory layout of one vertex attribute.
type AttribPtrType struct {
	Scalar ScalarType
	// Len is the number of components, 1 to 4.
	Len int
	// Normalize maps integer components to [0, 1] or [-1, 1].
	Normalize bool
}

// InactiveLocation is the location of attributes and uniforms that are
// not active in a linked program.
const InactiveLocation = -1

// AttribPtr describes where a vertex attribute is fed from. Attributes
// at InactiveLocation take up space in the vertex but are not
// configured.
type AttribPtr struct {
	Location int
	Type     AttribPtrType
}

func (u BufferUsageHint) String() string {
	switch u {
	case StaticDraw:
		return "static draw"
	case DynamicDraw:
		return "dynamic draw"
	case StreamDraw:
		return "stream draw"
	default:
		return fmt.Sprintf("BufferUsageHint(%d)", uint8(u))
	}
}

func (u BufferUsageHint) glEnum() gl.Enum {
	switch u {
	case StaticDraw:
		return gl.STATIC_DRAW
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	default:
		panic(fmt.Errorf("invalid buffer usage hint %d", u))
	}
}

func (p DrawPrimitive) glEnum() gl.Enum {
	switch p {
	case Points:
		return gl.POINTS
	case Lines:
		return gl.LINES
	case LineStrip:
		return gl.LINE_STRIP
	case LineLoop:
		return gl.LINE_LOOP
	case Triangles:
		return gl.TRIANGLES
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case TriangleFan:
		return gl.TRIANGLE_FAN
	default:
		panic(fmt.Errorf("invalid draw primitive %d", p))
	}
}

// Size returns the size in bytes of one component.
func (s ScalarType) Size() int {
	switch s {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case Float:
		return 4
	default:
		panic(fmt.Errorf("invalid scalar type %d", s))
	}
}

func (s ScalarType) glEnum() gl.Enum {
	switch s {
	case Byte:
		return gl.BYTE
	case UnsignedByte:
		return gl.UNSIGNED_BYTE
	case Short:
		return gl.SHORT
	case UnsignedShort:
		return gl.UNSIGNED_SHORT
	case Float:
		return gl.FLOAT
	default:
		panic(fmt.Errorf("invalid scalar type %d", s))
	}
}

func (s ScalarType) String() string {
	switch s {
	case Byte:
		return "byte"
	case UnsignedByte:
		return "unsigned byte"
	case Short:
		return "short"
	case UnsignedShort:
		return "unsigned short"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("ScalarType(%d)", uint8(s))
	}
}

// Size returns the size in bytes of the attribute.
func (t AttribPtrType) Size() int {
	return t.Scalar.Size() * t.Len
}

// Size returns the size in bytes of the attribute.
func (a AttribPtr) Size() int {
	return a.Type.Size()
}

// Active reports whether the attribute is fed to the program.
func (a AttribPtr) Active() bool {
	return a.Location != InactiveLocation
}

// AttribPtrsFromInputs describes a vertex made of the given shader
// inputs, in order.
func AttribPtrsFromInputs(inputs []shader.InputLocation) []AttribPtr {
	ptrs := make([]AttribPtr, len(inputs))
	for i, inp := range inputs {
		var s ScalarType
		switch inp.Type {
		case shader.DataTypeFloat:
			s = Float
		case shader.DataTypeShort:
			s = Short
		default:
			panic(fmt.Errorf("input %q: unsupported data type %d", inp.Name, inp.Type))
		}
		ptrs[i] = AttribPtr{
			Location: inp.Location,
			Type:     AttribPtrType{Scalar: s, Len: inp.Size},
		}
	}
	return ptrs
}

// VertexBuffer is a buffer object of vertices of type T.
type VertexBuffer[T any] struct {
	ctx     *Context
	buf     gl.Buffer
	usage   BufferUsageHint
	attribs []AttribPtr
	stride  int
	len     int
}

// VertexBufferBinding is a scoped binding of a VertexBuffer to the
// ARRAY_BUFFER binding point.
type VertexBufferBinding[T any] struct {
	scope
	b *VertexBuffer[T]
}

// NewVertexBuffer creates a vertex buffer. The attributes must describe
// every byte of T; it panics otherwise.
func NewVertexBuffer[T any](ctx *Context, usage BufferUsageHint, attribs []AttribPtr) *VertexBuffer[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	stride := 0
	for _, a := range attribs {
		if a.Type.Len < 1 || a.Type.Len > 4 {
			panic(fmt.Errorf("vertex attribute at location %d has %d components, expected 1 to 4", a.Location, a.Type.Len))
		}
		stride += a.Size()
	}
	if stride != size {
		panic(fmt.Errorf("vertex attributes describe %d bytes per vertex, but %T is %d bytes", stride, zero, size))
	}
	return &VertexBuffer[T]{
		ctx:     ctx,
		buf:     ctx.f.CreateBuffer(),
		usage:   usage,
		attribs: append([]AttribPtr(nil), attribs...),
		stride:  stride,
	}
}

// Len returns the number of vertices allocated.
func (b *VertexBuffer[T]) Len() int {
	return b.len
}

// Stride returns the size in bytes of one vertex.
func (b *VertexBuffer[T]) Stride() int {
	return b.stride
}

// Usage returns the usage hint of the buffer.
func (b *VertexBuffer[T]) Usage() BufferUsageHint {
	return b.usage
}

// Attribs returns the attribute layout of one vertex.
func (b *VertexBuffer[T]) Attribs() []AttribPtr {
	return b.attribs
}

// SetDebugLabel labels the buffer in driver debug output.
func (b *VertexBuffer[T]) SetDebugLabel(label []byte) {
	b.ctx.setDebugLabel(gl.BUFFER_KHR, b.buf.V, label)
}

// DebugLabel returns the label set by SetDebugLabel.
func (b *VertexBuffer[T]) DebugLabel() []byte {
	return b.ctx.debugLabel(gl.BUFFER_KHR, b.buf.V)
}

// Release deletes the buffer object. Release is idempotent.
func (b *VertexBuffer[T]) Release() {
	if !b.buf.Valid() {
		return
	}
	b.ctx.arrayBuffer.forget(b.buf.V)
	b.ctx.f.DeleteBuffer(b.buf)
	b.buf = gl.Buffer{}
	b.len = 0
}

// Bind binds the buffer to ARRAY_BUFFER. It panics if a binding of
// another vertex buffer is still alive.
func (b *VertexBuffer[T]) Bind() *VertexBufferBinding[T] {
	checkAlive("vertex buffer", b.buf.Valid())
	vb := &VertexBufferBinding[T]{b: b}
	vb.open(&b.ctx.arrayBuffer, b.buf.V)
	return vb
}

// Alloc reallocates storage for n vertices with undefined contents.
func (vb *VertexBufferBinding[T]) Alloc(n int) {
	vb.check()
	b := vb.b
	b.ctx.f.BufferData(gl.ARRAY_BUFFER, n*b.stride, b.usage.glEnum(), nil)
	b.len = n
}

// AllocAndSet reallocates storage to hold exactly data.
func (vb *VertexBufferBinding[T]) AllocAndSet(data []T) {
	vb.check()
	b := vb.b
	b.ctx.f.BufferData(gl.ARRAY_BUFFER, len(data)*b.stride, b.usage.glEnum(), byteslice.Slice(data))
	b.len = len(data)
}

// Set overwrites every vertex. It panics if data does not have exactly
// Len elements.
func (vb *VertexBufferBinding[T]) Set(data []T) {
	vb.check()
	if n := vb.b.len; len(data) != n {
		panic(fmt.Errorf("vertex buffer holds %d vertices, got %d", n, len(data)))
	}
	vb.b.ctx.f.BufferSubData(gl.ARRAY_BUFFER, 0, byteslice.Slice(data))
}

// SetSlice overwrites the vertices [start, end). It panics if the range
// is out of bounds or data does not have exactly end-start elements.
func (vb *VertexBufferBinding[T]) SetSlice(start, end int, data []T) {
	vb.check()
	b := vb.b
	checkSlice(start, end, b.len, len(data))
	b.ctx.f.BufferSubData(gl.ARRAY_BUFFER, start*b.stride, byteslice.Slice(data))
}

// OrphanData reallocates the current storage with undefined contents,
// letting the driver discard the old contents without stalling.
func (vb *VertexBufferBinding[T]) OrphanData() {
	vb.Alloc(vb.b.len)
}

// ConfigureAttribs points the active attributes at the buffer.
func (vb *VertexBufferBinding[T]) ConfigureAttribs() {
	vb.check()
	b := vb.b
	offset := 0
	for _, a := range b.attribs {
		if a.Active() {
			b.ctx.f.VertexAttribPointer(gl.Attrib(a.Location), a.Type.Len, a.Type.Scalar.glEnum(), a.Type.Normalize, b.stride, offset)
		}
		offset += a.Size()
	}
}

// EnableAttribs enables the active attributes.
func (vb *VertexBufferBinding[T]) EnableAttribs() {
	vb.check()
	for _, a := range vb.b.attribs {
		if a.Active() {
			vb.b.ctx.f.EnableVertexAttribArray(gl.Attrib(a.Location))
		}
	}
}

// DisableAttribs disables the active attributes.
func (vb *VertexBufferBinding[T]) DisableAttribs() {
	vb.check()
	for _, a := range vb.b.attribs {
		if a.Active() {
			vb.b.ctx.f.DisableVertexAttribArray(gl.Attrib(a.Location))
		}
	}
}

// Draw draws every vertex with the program of p.
func (vb *VertexBufferBinding[T]) Draw(p *ProgramBinding, mode DrawPrimitive) {
	vb.DrawSlice(p, mode, 0, vb.b.len)
}

// DrawSlice draws count vertices starting at start with the program of
// p. It panics if the range is out of bounds.
func (vb *VertexBufferBinding[T]) DrawSlice(p *ProgramBinding, mode DrawPrimitive, start, count int) {
	vb.check()
	p.check()
	checkRange(start, count, vb.b.len)
	vb.b.ctx.f.DrawArrays(mode.glEnum(), start, count)
}

// checkSlice panics unless [start, end) lies within [0, n) and holds
// exactly got elements.
func checkSlice(start, end, n, got int) {
	if start < 0 || end < start || end > n {
		panic(fmt.Errorf("slice [%d, %d) out of bounds of %d elements", start, end, n))
	}
	if got != end-start {
		panic(fmt.Errorf("slice [%d, %d) holds %d elements, got %d", start, end, end-start, got))
	}
}

// checkRange panics unless count elements starting at start lie within
// [0, n).
func checkRange(start, count, n int) {
	if start < 0 || count < 0 || start+count > n {
		panic(fmt.Errorf("range of %d elements at %d out of bounds of %d elements", count, start, n))
	}
}
