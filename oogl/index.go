// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"unsafe"

	"cardboard.dev/internal/byteslice"
	"cardboard.dev/internal/gl"
)

// Index is the set of element types of index buffers.
type Index interface {
	~uint8 | ~uint16
}

// IndexBuffer is a buffer object of vertex indices.
type IndexBuffer[T Index] struct {
	ctx   *Context
	buf   gl.Buffer
	usage BufferUsageHint
	len   int
}

// IndexBufferBinding is a scoped binding of an IndexBuffer to the
// ELEMENT_ARRAY_BUFFER binding point.
type IndexBufferBinding[T Index] struct {
	scope
	b *IndexBuffer[T]
}

func NewIndexBuffer[T Index](ctx *Context, usage BufferUsageHint) *IndexBuffer[T] {
	return &IndexBuffer[T]{
		ctx:   ctx,
		buf:   ctx.f.CreateBuffer(),
		usage: usage,
	}
}

// Len returns the number of indices allocated.
func (b *IndexBuffer[T]) Len() int {
	return b.len
}

func (b *IndexBuffer[T]) SetDebugLabel(label []byte) {
	b.ctx.setDebugLabel(gl.BUFFER_KHR, b.buf.V, label)
}

func (b *IndexBuffer[T]) DebugLabel() []byte {
	return b.ctx.debugLabel(gl.BUFFER_KHR, b.buf.V)
}

// Release deletes the buffer object. Release is idempotent.
func (b *IndexBuffer[T]) Release() {
	if !b.buf.Valid() {
		return
	}
	b.ctx.indexBuffer.forget(b.buf.V)
	b.ctx.f.DeleteBuffer(b.buf)
	b.buf = gl.Buffer{}
	b.len = 0
}

// Bind binds the buffer to ELEMENT_ARRAY_BUFFER. It panics if a binding
// of another index buffer is still alive.
func (b *IndexBuffer[T]) Bind() *IndexBufferBinding[T] {
	checkAlive("index buffer", b.buf.Valid())
	ib := &IndexBufferBinding[T]{b: b}
	ib.open(&b.ctx.indexBuffer, b.buf.V)
	return ib
}

func (ib *IndexBufferBinding[T]) Alloc(n int) {
	ib.check()
	b := ib.b
	b.ctx.f.BufferData(gl.ELEMENT_ARRAY_BUFFER, n*indexSize[T](), b.usage.glEnum(), nil)
	b.len = n
}

func (ib *IndexBufferBinding[T]) AllocAndSet(data []T) {
	ib.check()
	b := ib.b
	b.ctx.f.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*indexSize[T](), b.usage.glEnum(), byteslice.Slice(data))
	b.len = len(data)
}

// Set overwrites every index. It panics if data does not have exactly
// Len elements.
func (ib *IndexBufferBinding[T]) Set(data []T) {
	ib.check()
	if n := ib.b.len; len(data) != n {
		panic(fmt.Errorf("index buffer holds %d indices, got %d", n, len(data)))
	}
	ib.b.ctx.f.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, byteslice.Slice(data))
}

// SetSlice overwrites the indices [start, end).
func (ib *IndexBufferBinding[T]) SetSlice(start, end int, data []T) {
	ib.check()
	checkSlice(start, end, ib.b.len, len(data))
	ib.b.ctx.f.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, start*indexSize[T](), byteslice.Slice(data))
}

func (ib *IndexBufferBinding[T]) OrphanData() {
	ib.Alloc(ib.b.len)
}

// Draw draws the vertices referenced by every index with the program of
// p. The vertex attributes must be configured.
func (ib *IndexBufferBinding[T]) Draw(p *ProgramBinding, mode DrawPrimitive) {
	ib.DrawSlice(p, mode, 0, ib.b.len)
}

// DrawSlice draws the vertices referenced by count indices starting at
// start.
func (ib *IndexBufferBinding[T]) DrawSlice(p *ProgramBinding, mode DrawPrimitive, start, count int) {
	ib.check()
	p.check()
	checkRange(start, count, ib.b.len)
	ib.b.ctx.f.DrawElements(mode.glEnum(), count, indexType[T](), start*indexSize[T]())
}

func indexSize[T Index]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func indexType[T Index]() gl.Enum {
	if indexSize[T]() == 1 {
		return gl.UNSIGNED_BYTE
	}
	return gl.UNSIGNED_SHORT
}
