// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"image"

	"cardboard.dev/internal/gl"
)

// FramebufferStatus is the completeness of a framebuffer.
type FramebufferStatus uint8

const (
	FramebufferComplete FramebufferStatus = iota
	FramebufferIncompleteAttachment
	FramebufferIncompleteDimensions
	FramebufferIncompleteMissingAttachment
	FramebufferUnsupported
	FramebufferUnknownStatus
)

func (s FramebufferStatus) String() string {
	switch s {
	case FramebufferComplete:
		return "complete"
	case FramebufferIncompleteAttachment:
		return "incomplete attachment"
	case FramebufferIncompleteDimensions:
		return "incomplete dimensions"
	case FramebufferIncompleteMissingAttachment:
		return "missing attachment"
	case FramebufferUnsupported:
		return "unsupported"
	default:
		return "unknown status"
	}
}

// Framebuffer is a framebuffer object.
type Framebuffer struct {
	ctx *Context
	fbo gl.Framebuffer
}

// FramebufferBinding is a scoped binding of a Framebuffer as the render
// target.
type FramebufferBinding struct {
	scope
	fb *Framebuffer
}

func NewFramebuffer(ctx *Context) *Framebuffer {
	return &Framebuffer{
		ctx: ctx,
		fbo: ctx.f.CreateFramebuffer(),
	}
}

func (fb *Framebuffer) SetDebugLabel(label []byte) {
	fb.ctx.setDebugLabel(gl.FRAMEBUFFER, fb.fbo.V, label)
}

func (fb *Framebuffer) DebugLabel() []byte {
	return fb.ctx.debugLabel(gl.FRAMEBUFFER, fb.fbo.V)
}

// Release deletes the framebuffer object. Release is idempotent.
func (fb *Framebuffer) Release() {
	if !fb.fbo.Valid() {
		return
	}
	fb.ctx.framebuffer.forget(fb.fbo.V)
	fb.ctx.f.DeleteFramebuffer(fb.fbo)
	fb.fbo = gl.Framebuffer{}
}

// Bind makes the framebuffer the render target. It panics if a binding
// of another framebuffer is still alive. UnbindCompletely restores the
// default framebuffer.
func (fb *Framebuffer) Bind() *FramebufferBinding {
	checkAlive("framebuffer", fb.fbo.Valid())
	b := &FramebufferBinding{fb: fb}
	b.open(&fb.ctx.framebuffer, fb.fbo.V)
	return b
}

// Status reports the completeness of the framebuffer.
func (b *FramebufferBinding) Status() FramebufferStatus {
	b.check()
	switch b.fb.ctx.f.CheckFramebufferStatus(gl.FRAMEBUFFER) {
	case gl.FRAMEBUFFER_COMPLETE:
		return FramebufferComplete
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return FramebufferIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS:
		return FramebufferIncompleteDimensions
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return FramebufferIncompleteMissingAttachment
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return FramebufferUnsupported
	default:
		return FramebufferUnknownStatus
	}
}

// AttachTexture2D attaches level lod of t as the color buffer.
func (b *FramebufferBinding) AttachTexture2D(t *Texture2D, lod int) {
	b.check()
	checkAlive("texture", t.tex.Valid())
	t.checkLevel(lod)
	b.fb.ctx.f.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.tex, lod)
}

// ReadPixels reads the RGBA pixels of r from the color buffer into
// data, in rows from the bottom. It panics if data does not hold
// exactly the pixels of r.
func (b *FramebufferBinding) ReadPixels(r image.Rectangle, data []byte) {
	b.check()
	if n := r.Dx() * r.Dy() * 4; len(data) != n {
		panic(fmt.Errorf("rectangle %v holds %d bytes of RGBA pixels, got %d", r, n, len(data)))
	}
	b.fb.ctx.f.ReadPixels(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), gl.RGBA, gl.UNSIGNED_BYTE, data)
}
