// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"image"
	"math/bits"

	"golang.org/x/image/draw"

	"cardboard.dev/internal/gl"
)

// TextureInputFormat is the layout of pixel data uploaded to a texture.
// Every component is an unsigned byte.
type TextureInputFormat uint8

const (
	Alpha TextureInputFormat = iota
	Luminance
	LuminanceAlpha
	RGB
	RGBA
)

// TextureInternalFormat is the storage format of a texture.
type TextureInternalFormat uint8

const (
	InternalAlpha TextureInternalFormat = iota
	InternalLuminance
	InternalLuminanceAlpha
	InternalRGB
	InternalRGBA
)

// TextureWrap selects how texture coordinates outside [0, 1] are
// resolved.
type TextureWrap uint8

const (
	ClampToEdge TextureWrap = iota
	Repeat
	MirroredRepeat
)

// TextureFilter selects how texels are sampled.
type TextureFilter uint8

const (
	Nearest TextureFilter = iota
	Linear
)

// Components returns the number of bytes per pixel.
func (f TextureInputFormat) Components() int {
	switch f {
	case Alpha, Luminance:
		return 1
	case LuminanceAlpha:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		panic(fmt.Errorf("invalid texture input format %d", f))
	}
}

// InternalFormat returns the storage format matching f.
func (f TextureInputFormat) InternalFormat() TextureInternalFormat {
	switch f {
	case Alpha:
		return InternalAlpha
	case Luminance:
		return InternalLuminance
	case LuminanceAlpha:
		return InternalLuminanceAlpha
	case RGB:
		return InternalRGB
	case RGBA:
		return InternalRGBA
	default:
		panic(fmt.Errorf("invalid texture input format %d", f))
	}
}

func (f TextureInputFormat) String() string {
	switch f {
	case Alpha:
		return "alpha"
	case Luminance:
		return "luminance"
	case LuminanceAlpha:
		return "luminance alpha"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return fmt.Sprintf("TextureInputFormat(%d)", uint8(f))
	}
}

func (f TextureInputFormat) glEnum() gl.Enum {
	switch f {
	case Alpha:
		return gl.ALPHA
	case Luminance:
		return gl.LUMINANCE
	case LuminanceAlpha:
		return gl.LUMINANCE_ALPHA
	case RGB:
		return gl.RGB
	case RGBA:
		return gl.RGBA
	default:
		panic(fmt.Errorf("invalid texture input format %d", f))
	}
}

func (f TextureInternalFormat) glEnum() gl.Enum {
	switch f {
	case InternalAlpha:
		return gl.ALPHA
	case InternalLuminance:
		return gl.LUMINANCE
	case InternalLuminanceAlpha:
		return gl.LUMINANCE_ALPHA
	case InternalRGB:
		return gl.RGB
	case InternalRGBA:
		return gl.RGBA
	default:
		panic(fmt.Errorf("invalid texture internal format %d", f))
	}
}

func (w TextureWrap) glEnum() gl.Enum {
	switch w {
	case ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case Repeat:
		return gl.REPEAT
	case MirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		panic(fmt.Errorf("invalid texture wrap %d", w))
	}
}

func (f TextureFilter) glEnum() gl.Enum {
	switch f {
	case Nearest:
		return gl.NEAREST
	case Linear:
		return gl.LINEAR
	default:
		panic(fmt.Errorf("invalid texture filter %d", f))
	}
}

// minFilter maps a minifying filter and an optional filter between
// levels of detail to the GL filter.
func minFilter(f TextureFilter, mip *TextureFilter) gl.Enum {
	if mip == nil {
		return f.glEnum()
	}
	switch {
	case f == Nearest && *mip == Nearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case f == Linear && *mip == Nearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case f == Nearest && *mip == Linear:
		return gl.NEAREST_MIPMAP_LINEAR
	case f == Linear && *mip == Linear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		panic(fmt.Errorf("invalid texture filters %d, %d", f, *mip))
	}
}

// Texture2D is a two-dimensional texture object. Its size is set once
// with SetSize before any storage is allocated.
type Texture2D struct {
	ctx      *Context
	tex      gl.Texture
	input    TextureInputFormat
	internal TextureInternalFormat
	size     image.Point
}

// Texture2DBinding is a scoped binding of a Texture2D to the TEXTURE_2D
// binding point of one texture unit. Every operation makes that unit
// active first.
type Texture2DBinding struct {
	scope
	t    *Texture2D
	unit int
}

// NewTexture2D creates a texture taking pixel data in the input format.
// The storage format is derived from input when internal is nil. The
// texture is bound once to unit, or to the active unit when unit is nil.
func NewTexture2D(ctx *Context, unit *TextureUnit, input TextureInputFormat, internal *TextureInternalFormat) *Texture2D {
	t := &Texture2D{
		ctx:   ctx,
		input: input,
	}
	if internal != nil {
		t.internal = *internal
	} else {
		t.internal = input.InternalFormat()
	}
	t.tex = ctx.f.CreateTexture()
	t.Bind(unit).Release()
	return t
}

// InputFormat returns the layout of uploaded pixel data.
func (t *Texture2D) InputFormat() TextureInputFormat {
	return t.input
}

// InternalFormat returns the storage format.
func (t *Texture2D) InternalFormat() TextureInternalFormat {
	return t.internal
}

// SetSize sets the size of the base level of detail. It panics if a
// dimension is not positive or exceeds Caps.MaxTextureSize.
func (t *Texture2D) SetSize(sz image.Point) {
	limit := t.ctx.caps.MaxTextureSize
	if sz.X <= 0 || sz.Y <= 0 || sz.X > limit || sz.Y > limit {
		panic(fmt.Errorf("texture size %v out of range (max %d)", sz, limit))
	}
	t.size = sz
}

// Size returns the size of the base level of detail, zero until set.
func (t *Texture2D) Size() image.Point {
	return t.size
}

// LevelsOfDetailCount returns the number of levels of detail of a full
// mipmap chain, floor(log2(max(w, h))) + 1, or zero when the size is
// not set.
func (t *Texture2D) LevelsOfDetailCount() int {
	return bits.Len(uint(max(t.size.X, t.size.Y)))
}

// SizeAtLevelOfDetail returns the size of level lod, halved lod times
// and clamped to 1x1. Levels past the last level of detail are 1x1. It
// panics if lod is negative.
func (t *Texture2D) SizeAtLevelOfDetail(lod int) image.Point {
	if lod < 0 {
		panic(fmt.Errorf("negative level of detail %d", lod))
	}
	return image.Pt(max(t.size.X>>lod, 1), max(t.size.Y>>lod, 1))
}

// checkLevel panics if lod is not a level of detail of the texture.
func (t *Texture2D) checkLevel(lod int) {
	if n := t.LevelsOfDetailCount(); lod < 0 || lod >= n {
		panic(fmt.Errorf("level of detail %d out of range of %d levels of %v texture", lod, n, t.size))
	}
}

func (t *Texture2D) SetDebugLabel(label []byte) {
	t.ctx.setDebugLabel(gl.TEXTURE, t.tex.V, label)
}

func (t *Texture2D) DebugLabel() []byte {
	return t.ctx.debugLabel(gl.TEXTURE, t.tex.V)
}

// Release deletes the texture object. Release is idempotent.
func (t *Texture2D) Release() {
	if !t.tex.Valid() {
		return
	}
	for i := range t.ctx.textures {
		t.ctx.textures[i].forget(t.tex.V)
	}
	t.ctx.f.DeleteTexture(t.tex)
	t.tex = gl.Texture{}
}

// Bind binds the texture to unit, or to the active unit when unit is
// nil.
func (t *Texture2D) Bind(unit *TextureUnit) *Texture2DBinding {
	if unit == nil {
		return t.BindUnit(t.ctx.activeUnit)
	}
	unit.check()
	return t.BindUnit(unit.index)
}

// BindUnit binds the texture to texture unit i. It panics if i is not a
// texture unit of the driver, or if a binding of another texture to the
// unit is still alive.
func (t *Texture2D) BindUnit(i int) *Texture2DBinding {
	checkAlive("texture", t.tex.Valid())
	c := t.ctx
	c.checkUnit(i)
	target := &c.textures[i]
	target.onBindingCreated(t.tex.V)
	c.activateUnit(i)
	target.bindIfNeeded(t.tex.V)
	return &Texture2DBinding{
		scope: scope{target: target, name: t.tex.V},
		t:     t,
		unit:  i,
	}
}

// Unit returns the index of the texture unit the texture is bound to.
func (tb *Texture2DBinding) Unit() int {
	return tb.unit
}

// Texture returns the bound texture.
func (tb *Texture2DBinding) Texture() *Texture2D {
	return tb.t
}

// UnbindCompletely binds texture 0 to the unit and ends the binding.
func (tb *Texture2DBinding) UnbindCompletely() {
	tb.use()
	tb.scope.UnbindCompletely()
}

func (tb *Texture2DBinding) use() {
	tb.check()
	tb.t.ctx.activateUnit(tb.unit)
}

// levelSize returns the size of level lod and its size in bytes.
func (tb *Texture2DBinding) levelSize(lod int) (image.Point, int) {
	tb.t.checkLevel(lod)
	sz := tb.t.SizeAtLevelOfDetail(lod)
	return sz, sz.X * sz.Y * tb.t.input.Components()
}

// Alloc allocates storage with undefined contents for level lod.
func (tb *Texture2DBinding) Alloc(lod int) {
	tb.use()
	t := tb.t
	sz, _ := tb.levelSize(lod)
	t.ctx.f.TexImage2D(gl.TEXTURE_2D, lod, t.internal.glEnum(), sz.X, sz.Y, t.input.glEnum(), gl.UNSIGNED_BYTE, nil)
}

// AllocAndSet allocates storage for level lod and fills it with data.
// It panics if data is not exactly the size of the level.
func (tb *Texture2DBinding) AllocAndSet(lod int, data []byte) {
	tb.use()
	t := tb.t
	sz, n := tb.levelSize(lod)
	if len(data) != n {
		panic(fmt.Errorf("level %d of %v %s texture holds %d bytes, got %d", lod, sz, t.input, n, len(data)))
	}
	t.ctx.f.TexImage2D(gl.TEXTURE_2D, lod, t.internal.glEnum(), sz.X, sz.Y, t.input.glEnum(), gl.UNSIGNED_BYTE, data)
}

// Set overwrites level lod. It panics if data is not exactly the size of
// the level.
func (tb *Texture2DBinding) Set(lod int, data []byte) {
	tb.use()
	t := tb.t
	sz, n := tb.levelSize(lod)
	if len(data) != n {
		panic(fmt.Errorf("level %d of %v %s texture holds %d bytes, got %d", lod, sz, t.input, n, len(data)))
	}
	t.ctx.f.TexSubImage2D(gl.TEXTURE_2D, lod, 0, 0, sz.X, sz.Y, t.input.glEnum(), gl.UNSIGNED_BYTE, data)
}

// SetSlice overwrites the rectangle r of level lod. It panics if r is
// not within the level or data is not exactly the size of r.
func (tb *Texture2DBinding) SetSlice(lod int, r image.Rectangle, data []byte) {
	tb.use()
	t := tb.t
	sz, _ := tb.levelSize(lod)
	if r.Empty() || !r.In(image.Rectangle{Max: sz}) {
		panic(fmt.Errorf("rectangle %v out of bounds of level %d of size %v", r, lod, sz))
	}
	if n := r.Dx() * r.Dy() * t.input.Components(); len(data) != n {
		panic(fmt.Errorf("rectangle %v of %s texture holds %d bytes, got %d", r, t.input, n, len(data)))
	}
	t.ctx.f.TexSubImage2D(gl.TEXTURE_2D, lod, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), t.input.glEnum(), gl.UNSIGNED_BYTE, data)
}

// AllocAndSetImage converts img to the input format and uploads it as
// level lod. Uploading level 0 sets the texture size to the image size;
// other levels must match the size of the level.
func (tb *Texture2DBinding) AllocAndSetImage(lod int, img image.Image) {
	tb.check()
	if lod == 0 {
		tb.t.SetSize(img.Bounds().Size())
	}
	tb.AllocAndSet(lod, pixels(img, tb.t.input))
}

// GenerateMipmapsCPU sets the texture size to the size of base and
// uploads base together with every smaller level of detail, each scaled
// down from the level above with bilinear filtering.
func (tb *Texture2DBinding) GenerateMipmapsCPU(base image.Image) {
	tb.AllocAndSetImage(0, base)
	prev := base
	for lod := 1; lod < tb.t.LevelsOfDetailCount(); lod++ {
		sz := tb.t.SizeAtLevelOfDetail(lod)
		dst := image.NewNRGBA(image.Rectangle{Max: sz})
		draw.BiLinear.Scale(dst, dst.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		tb.AllocAndSet(lod, pixels(dst, tb.t.input))
		prev = dst
	}
}

// GenerateMipmap has the driver derive every level of detail from level
// 0. Without OES_texture_npot both dimensions must be powers of two.
func (tb *Texture2DBinding) GenerateMipmap() {
	tb.use()
	t := tb.t
	if sz := t.size; !t.ctx.caps.NPOTTextures && (!isPow2(sz.X) || !isPow2(sz.Y)) {
		panic(fmt.Errorf("mipmaps of %v texture require power of two sizes", sz))
	}
	t.ctx.f.GenerateMipmap(gl.TEXTURE_2D)
}

// SetWrappingMode sets the wrapping along the s and t coordinates.
func (tb *Texture2DBinding) SetWrappingMode(s, t TextureWrap) {
	tb.use()
	f := tb.t.ctx.f
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int(s.glEnum()))
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int(t.glEnum()))
}

// SetWrappingModes sets the same wrapping along both coordinates.
func (tb *Texture2DBinding) SetWrappingModes(m TextureWrap) {
	tb.SetWrappingMode(m, m)
}

// SetMinifyingFilter sets the filter used when the texture is minified.
// A non-nil mip also selects the filter between levels of detail.
func (tb *Texture2DBinding) SetMinifyingFilter(f TextureFilter, mip *TextureFilter) {
	tb.use()
	tb.t.ctx.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int(minFilter(f, mip)))
}

func (tb *Texture2DBinding) SetMagnifyingFilter(f TextureFilter) {
	tb.use()
	tb.t.ctx.f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int(f.glEnum()))
}

// SetFilters sets both the minifying and the magnifying filter.
func (tb *Texture2DBinding) SetFilters(f TextureFilter, mip *TextureFilter) {
	tb.SetMinifyingFilter(f, mip)
	tb.SetMagnifyingFilter(f)
}

func isPow2(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// pixels converts img to tightly packed rows in format.
func pixels(img image.Image, format TextureInputFormat) []byte {
	b := img.Bounds()
	r := image.Rectangle{Max: b.Size()}
	switch format {
	case Alpha:
		dst := image.NewAlpha(r)
		draw.Draw(dst, r, img, b.Min, draw.Src)
		return dst.Pix
	case Luminance:
		dst := image.NewGray(r)
		draw.Draw(dst, r, img, b.Min, draw.Src)
		return dst.Pix
	case RGBA:
		dst := image.NewNRGBA(r)
		draw.Draw(dst, r, img, b.Min, draw.Src)
		return dst.Pix
	}
	gray := image.NewGray(r)
	draw.Draw(gray, r, img, b.Min, draw.Src)
	nrgba := image.NewNRGBA(r)
	draw.Draw(nrgba, r, img, b.Min, draw.Src)
	n := r.Dx() * r.Dy()
	out := make([]byte, 0, n*format.Components())
	for i := 0; i < n; i++ {
		px := nrgba.Pix[i*4 : i*4+4]
		switch format {
		case LuminanceAlpha:
			out = append(out, gray.Pix[i], px[3])
		case RGB:
			out = append(out, px[0], px[1], px[2])
		default:
			panic(fmt.Errorf("invalid texture input format %d", format))
		}
	}
	return out
}
