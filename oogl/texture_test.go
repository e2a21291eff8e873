// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardboard.dev/internal/gl"
	"cardboard.dev/internal/gl/gltest"
)

func TestLevelsOfDetail(t *testing.T) {
	ctx, _ := newTestContext(t)
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	assert.Zero(t, tex.LevelsOfDetailCount())
	assert.Equal(t, image.Pt(1, 1), tex.SizeAtLevelOfDetail(0))
	assert.Equal(t, image.Pt(1, 1), tex.SizeAtLevelOfDetail(3))

	tests := []struct {
		size image.Point
		lods int
	}{
		{image.Pt(1, 1), 1},
		{image.Pt(2, 1), 2},
		{image.Pt(3, 3), 2},
		{image.Pt(256, 256), 9},
		{image.Pt(300, 5), 9},
		{image.Pt(1, 1024), 11},
		{image.Pt(4096, 17), 13},
	}
	for _, test := range tests {
		tex.SetSize(test.size)
		n := tex.LevelsOfDetailCount()
		assert.Equal(t, test.lods, n, "size %v", test.size)
		assert.Equal(t, test.size, tex.SizeAtLevelOfDetail(0))
		assert.Equal(t, image.Pt(1, 1), tex.SizeAtLevelOfDetail(n-1), "size %v", test.size)
		for lod := 1; lod < n; lod++ {
			prev, sz := tex.SizeAtLevelOfDetail(lod-1), tex.SizeAtLevelOfDetail(lod)
			assert.Equal(t, max(prev.X/2, 1), sz.X)
			assert.Equal(t, max(prev.Y/2, 1), sz.Y)
		}
		assert.Equal(t, image.Pt(1, 1), tex.SizeAtLevelOfDetail(n), "size %v", test.size)
		assert.Equal(t, image.Pt(1, 1), tex.SizeAtLevelOfDetail(n+5), "size %v", test.size)
	}
	require.PanicsWithError(t, "negative level of detail -1", func() {
		tex.SizeAtLevelOfDetail(-1)
	})
}

func TestLevelOfDetailPastLastLevel(t *testing.T) {
	ctx, f := newTestContext(t)
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	tb := tex.Bind(nil)
	defer tb.Release()

	// Without a size the texture has no levels.
	require.PanicsWithError(t, "level of detail 0 out of range of 0 levels of (0,0) texture", func() {
		tb.Alloc(0)
	})

	tex.SetSize(image.Pt(8, 4))
	n := tex.LevelsOfDetailCount()
	require.Equal(t, 4, n)
	assert.Equal(t, image.Pt(1, 1), tex.SizeAtLevelOfDetail(n+2))
	require.PanicsWithError(t, "level of detail 4 out of range of 4 levels of (8,4) texture", func() {
		tb.Alloc(n)
	})
	require.Panics(t, func() {
		tb.AllocAndSet(n, make([]byte, 4))
	})
	require.Panics(t, func() {
		tb.Set(n+2, make([]byte, 4))
	})
	require.Panics(t, func() {
		tb.SetSlice(-1, image.Rect(0, 0, 1, 1), make([]byte, 4))
	})
	assert.Zero(t, f.Count("TexImage2D"))
	assert.Zero(t, f.Count("TexSubImage2D"))

	tb.Alloc(n - 1)
	assert.Equal(t, 1, f.Count("TexImage2D"))

	fb := NewFramebuffer(ctx)
	defer fb.Release()
	fbb := fb.Bind()
	defer fbb.Release()
	require.PanicsWithError(t, "level of detail 4 out of range of 4 levels of (8,4) texture", func() {
		fbb.AttachTexture2D(tex, n)
	})
	assert.Zero(t, f.Count("FramebufferTexture2D"))
	fbb.AttachTexture2D(tex, n-1)
	assert.Equal(t, 1, f.Count("FramebufferTexture2D"))
}

func TestTextureSizeLimits(t *testing.T) {
	ctx, _ := newTestContext(t)
	tex := NewTexture2D(ctx, nil, Luminance, nil)
	defer tex.Release()
	require.PanicsWithError(t, "texture size (0,4) out of range (max 4096)", func() {
		tex.SetSize(image.Pt(0, 4))
	})
	require.Panics(t, func() {
		tex.SetSize(image.Pt(4097, 1))
	})
	assert.Equal(t, image.Point{}, tex.Size())
}

func TestTextureUnitOutOfRange(t *testing.T) {
	ctx, f := newTestContext(t)
	require.Equal(t, 16, ctx.Caps().MaxTextureUnits)
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	f.Reset()

	require.PanicsWithError(t, "texture unit 16 out of range (max 16)", func() {
		tex.BindUnit(16)
	})
	assert.Zero(t, f.Count("ActiveTexture"))
	assert.Zero(t, f.Count("BindTexture"))

	// The last unit is fine.
	tex.BindUnit(15).Release()
	assert.Equal(t, 15, ctx.ActiveTextureUnit())
}

func TestNewTextureBindsOnce(t *testing.T) {
	ctx, f := newTestContext(t)
	tex := NewTexture2D(ctx, nil, RGB, nil)
	defer tex.Release()
	assert.Equal(t, InternalRGB, tex.InternalFormat())
	assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), gl.Texture{V: 1}}, f.CallsTo("BindTexture")[0].Args)

	tex.Bind(nil).Release()
	assert.Equal(t, 1, f.Count("BindTexture"))
	assert.Zero(t, f.Count("ActiveTexture"))

	internal := InternalLuminance
	lum := NewTexture2D(ctx, nil, Luminance, &internal)
	defer lum.Release()
	assert.Equal(t, InternalLuminance, lum.InternalFormat())
}

func TestTextureUnitsAreIndependent(t *testing.T) {
	ctx, f := newTestContext(t)
	u0, u1 := ctx.NewTextureUnit(), ctx.NewTextureUnit()
	defer u0.Release()
	defer u1.Release()
	a := NewTexture2D(ctx, u0, Alpha, nil)
	defer a.Release()
	b := NewTexture2D(ctx, u1, Alpha, nil)
	defer b.Release()
	a.SetSize(image.Pt(2, 2))
	b.SetSize(image.Pt(2, 2))

	ab := a.Bind(u0)
	defer ab.Release()
	bb := b.Bind(u1)
	defer bb.Release()
	f.Reset()

	// Operations on the first binding make its unit active again.
	ab.AllocAndSet(0, []byte{1, 2, 3, 4})
	bb.AllocAndSet(0, []byte{5, 6, 7, 8})
	assert.Equal(t, []byte{1, 2, 3, 4}, f.TextureContents(a.tex, 0))
	assert.Equal(t, []byte{5, 6, 7, 8}, f.TextureContents(b.tex, 0))
	assert.Equal(t, 2, f.Count("ActiveTexture"))
	assert.Zero(t, f.Count("BindTexture"))
	assert.Equal(t, 0, ab.Unit())
	assert.Equal(t, 1, bb.Unit())

	// A second texture cannot be bound to a unit with a live binding.
	require.Panics(t, func() {
		b.Bind(u0)
	})
}

func TestTextureSetSlice(t *testing.T) {
	ctx, f := newTestContext(t)
	tex := NewTexture2D(ctx, nil, LuminanceAlpha, nil)
	defer tex.Release()
	tex.SetSize(image.Pt(4, 2))
	tb := tex.Bind(nil)
	defer tb.Release()
	tb.Alloc(0)
	tb.Alloc(1)

	require.PanicsWithError(t, "rectangle (1,0)-(3,1) of luminance alpha texture holds 4 bytes, got 3", func() {
		tb.SetSlice(0, image.Rect(1, 0, 3, 1), []byte{1, 2, 3})
	})
	require.Panics(t, func() {
		tb.SetSlice(1, image.Rect(0, 0, 3, 1), make([]byte, 6))
	})
	require.Panics(t, func() {
		tb.Set(0, make([]byte, 15))
	})
	assert.Zero(t, f.Count("TexSubImage2D"))

	tb.SetSlice(0, image.Rect(1, 1, 3, 2), []byte{1, 2, 3, 4})
	assert.Equal(t, []byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 2, 3, 4, 0, 0,
	}, f.TextureContents(tex.tex, 0))
	tb.Set(1, []byte{9, 9, 8, 8})
	assert.Equal(t, []byte{9, 9, 8, 8}, f.TextureContents(tex.tex, 1))
}

func TestTextureRoundTrip(t *testing.T) {
	ctx, f := newTestContext(t)
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	tex.SetSize(image.Pt(2, 2))
	pixels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 10, 20, 30, 40,
	}
	tb := tex.Bind(nil)
	tb.AllocAndSet(0, pixels)
	tb.Release()

	fb := NewFramebuffer(ctx)
	defer fb.Release()
	fbb := fb.Bind()
	defer fbb.UnbindCompletely()
	assert.Equal(t, FramebufferIncompleteMissingAttachment, fbb.Status())
	fbb.AttachTexture2D(tex, 0)
	require.Equal(t, FramebufferComplete, fbb.Status())

	got := make([]byte, len(pixels))
	fbb.ReadPixels(image.Rect(0, 0, 2, 2), got)
	assert.Equal(t, pixels, got)

	row := make([]byte, 4)
	fbb.ReadPixels(image.Rect(1, 1, 2, 2), row)
	assert.Equal(t, []byte{10, 20, 30, 40}, row)

	require.Panics(t, func() {
		fbb.ReadPixels(image.Rect(0, 0, 2, 2), row)
	})
	assert.Equal(t, 2, f.Count("ReadPixels"))
}

func TestAllocAndSetImage(t *testing.T) {
	ctx, f := newTestContext(t)
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	img := image.NewNRGBA(image.Rect(10, 10, 14, 12))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	tb := tex.Bind(nil)
	defer tb.Release()
	tb.AllocAndSetImage(0, img)
	assert.Equal(t, image.Pt(4, 2), tex.Size())
	assert.Equal(t, img.Pix, f.TextureContents(tex.tex, 0))

	tb.Release()

	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix = []byte{7, 200}
	lum := NewTexture2D(ctx, nil, LuminanceAlpha, nil)
	defer lum.Release()
	lb := lum.Bind(nil)
	defer lb.Release()
	lb.AllocAndSetImage(0, gray)
	assert.Equal(t, []byte{7, 255, 200, 255}, f.TextureContents(lum.tex, 0))
}

func TestGenerateMipmapsCPU(t *testing.T) {
	ctx, f := newTestContext(t)
	tex := NewTexture2D(ctx, nil, RGB, nil)
	defer tex.Release()
	base := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	c := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			base.SetNRGBA(x, y, c)
		}
	}
	tb := tex.Bind(nil)
	defer tb.Release()
	tb.GenerateMipmapsCPU(base)

	require.Equal(t, 4, tex.LevelsOfDetailCount())
	assert.Equal(t, 4, f.Count("TexImage2D"))
	for lod := 0; lod < 4; lod++ {
		sz := tex.SizeAtLevelOfDetail(lod)
		data := f.TextureContents(tex.tex, lod)
		require.Len(t, data, sz.X*sz.Y*3, "level %d", lod)
		for i := 0; i < len(data); i += 3 {
			assert.InDelta(t, c.R, data[i], 1)
			assert.InDelta(t, c.G, data[i+1], 1)
			assert.InDelta(t, c.B, data[i+2], 1)
		}
	}
}

func TestGenerateMipmapNPOT(t *testing.T) {
	f := gltest.New()
	f.Strings[gl.EXTENSIONS] = "GL_KHR_debug"
	ctx, _ := newStubContext(t, f)
	require.False(t, ctx.Caps().NPOTTextures)

	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	tb := tex.Bind(nil)
	defer tb.Release()
	tex.SetSize(image.Pt(6, 4))
	require.PanicsWithError(t, "mipmaps of (6,4) texture require power of two sizes", tb.GenerateMipmap)
	tex.SetSize(image.Pt(8, 4))
	tb.GenerateMipmap()
	assert.Equal(t, 1, f.Count("GenerateMipmap"))
}

func TestTextureFilters(t *testing.T) {
	nearest, linear := Nearest, Linear
	tests := []struct {
		f    TextureFilter
		mip  *TextureFilter
		want int
	}{
		{Nearest, nil, gl.NEAREST},
		{Linear, nil, gl.LINEAR},
		{Nearest, &nearest, gl.NEAREST_MIPMAP_NEAREST},
		{Linear, &nearest, gl.LINEAR_MIPMAP_NEAREST},
		{Nearest, &linear, gl.NEAREST_MIPMAP_LINEAR},
		{Linear, &linear, gl.LINEAR_MIPMAP_LINEAR},
	}
	ctx, f := newTestContext(t)
	tex := NewTexture2D(ctx, nil, RGBA, nil)
	defer tex.Release()
	tb := tex.Bind(nil)
	defer tb.Release()
	for _, test := range tests {
		f.Reset()
		tb.SetFilters(test.f, test.mip)
		calls := f.CallsTo("TexParameteri")
		require.Len(t, calls, 2)
		assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), gl.Enum(gl.TEXTURE_MIN_FILTER), test.want}, calls[0].Args)
		assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), gl.Enum(gl.TEXTURE_MAG_FILTER), int(test.f.glEnum())}, calls[1].Args)
	}

	f.Reset()
	tb.SetWrappingMode(Repeat, MirroredRepeat)
	calls := f.CallsTo("TexParameteri")
	require.Len(t, calls, 2)
	assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), gl.Enum(gl.TEXTURE_WRAP_S), gl.REPEAT}, calls[0].Args)
	assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), gl.Enum(gl.TEXTURE_WRAP_T), gl.MIRRORED_REPEAT}, calls[1].Args)
}

func TestTextureReleaseForgetsUnits(t *testing.T) {
	ctx, f := newTestContext(t)
	a := NewTexture2D(ctx, nil, RGBA, nil)
	a.BindUnit(3).Release()
	a.BindUnit(5).Release()
	a.Release()
	assert.Equal(t, uint(0), ctx.textures[0].bound)
	assert.Equal(t, uint(0), ctx.textures[3].bound)
	assert.Equal(t, uint(0), ctx.textures[5].bound)
	assert.Equal(t, 1, f.Count("DeleteTexture"))
}
