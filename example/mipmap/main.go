// SPDX-License-Identifier: Unlicense OR MIT

// package glfw doesn't build on OpenBSD and FreeBSD.
//go:build !openbsd && !freebsd && !android && !ios && !js

// Command mipmap zooms a textured quad in and out to show filtering
// between levels of detail.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"gioui.org/shader"
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cardboard.dev/f32"
	"cardboard.dev/f32color"
	"cardboard.dev/oogl"
)

var (
	size    = flag.Int("size", 512, "checkerboard texture size in pixels")
	squares = flag.Int("squares", 32, "checkerboard squares per side")
	gpu     = flag.Bool("gpu", false, "let the driver generate mipmaps")
	nearest = flag.Bool("nearest", false, "disable filtering between levels of detail")
)

var vertSrc = shader.Sources{
	Name: "quad.vert",
	GLSL100ES: `#version 100
uniform float u_zoom;
attribute vec2 a_pos;
attribute vec2 a_uv;
varying vec2 v_uv;

void main() {
	gl_Position = vec4(a_pos, 0.0, 1.0);
	v_uv = a_uv*u_zoom;
}
`,
	Inputs: []shader.InputLocation{
		{Name: "a_pos", Location: 0, Type: shader.DataTypeFloat, Size: 2},
		{Name: "a_uv", Location: 1, Type: shader.DataTypeFloat, Size: 2},
	},
}

var fragSrc = shader.Sources{
	Name: "quad.frag",
	GLSL100ES: `#version 100
precision mediump float;
uniform sampler2D u_tex;
varying vec2 v_uv;

void main() {
	gl_FragColor = texture2D(u_tex, v_uv);
}
`,
}

type vertex struct {
	Pos f32.Point
	UV  f32.Point
}

type quadProgram struct {
	Zoom oogl.Uniform[float32]                `glsl:"u_zoom"`
	Tex  oogl.Uniform[*oogl.Texture2DBinding] `glsl:"u_tex"`
	Pos  oogl.Attrib[f32.Point]               `glsl:"a_pos"`
	UV   oogl.Attrib[f32.Point]               `glsl:"a_uv"`
}

func main() {
	flag.Parse()
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)

	window, err := glfw.CreateWindow(800, 800, "oogl mipmap", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	oogl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	ctx := oogl.MustLoad(glfw.GetProcAddress)
	defer ctx.Release()

	prog, err := oogl.NewProgramFromSources(ctx, vertSrc, fragSrc)
	if err != nil {
		log.Fatal(err)
	}
	defer prog.Release()
	var block quadProgram
	oogl.Reflect(prog, &block)

	unit := ctx.NewTextureUnit()
	defer unit.Release()
	tex := oogl.NewTexture2D(ctx, unit, oogl.RGBA, nil)
	defer tex.Release()
	tex.SetDebugLabel([]byte("checkerboard"))
	tb := tex.Bind(unit)
	board := checkerboard(*size, *squares)
	if *gpu {
		tb.AllocAndSetImage(0, board)
		tb.GenerateMipmap()
	} else {
		tb.GenerateMipmapsCPU(board)
	}
	mip := oogl.Linear
	if *nearest {
		mip = oogl.Nearest
	}
	tb.SetFilters(oogl.Linear, &mip)
	tb.SetWrappingModes(oogl.Repeat)
	tb.Release()
	log.Printf("uploaded %d levels of detail of %v texture", tex.LevelsOfDetailCount(), tex.Size())

	vb := oogl.NewVertexBuffer[vertex](ctx, oogl.StaticDraw, []oogl.AttribPtr{
		block.Pos.ToPointerSimple(),
		block.UV.ToPointerSimple(),
	})
	defer vb.Release()
	vbb := vb.Bind()
	vbb.AllocAndSet([]vertex{
		{Pos: f32.Pt(-1, -1), UV: f32.Pt(0, 1)},
		{Pos: f32.Pt(1, -1), UV: f32.Pt(1, 1)},
		{Pos: f32.Pt(1, 1), UV: f32.Pt(1, 0)},
		{Pos: f32.Pt(-1, 1), UV: f32.Pt(0, 0)},
	})
	vbb.ConfigureAttribs()
	vbb.EnableAttribs()
	vbb.Release()

	ib := oogl.NewIndexBuffer[uint16](ctx, oogl.StaticDraw)
	defer ib.Release()
	ibb := ib.Bind()
	ibb.AllocAndSet([]uint16{0, 1, 2, 0, 2, 3})
	ibb.Release()

	ctx.ClearColor(f32color.RGBA{A: 1})
	start := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		w, h := window.GetFramebufferSize()
		ctx.SetViewport(image.Rect(0, 0, w, h))
		ctx.Clear(oogl.ClearColorBuffer)

		// Zoom between 1 and 16 repetitions of the texture.
		t := float32(time.Since(start).Seconds())
		zoom := math32.Pow(2, 2+2*math32.Sin(t/2))

		pb := prog.Bind()
		tb := tex.Bind(unit)
		block.Zoom.Set(pb, zoom)
		block.Tex.Set(pb, tb)
		ibb := ib.Bind()
		ibb.Draw(pb, oogl.Triangles)
		ibb.Release()
		tb.Release()
		pb.Release()

		window.SwapBuffers()
	}
}

func checkerboard(size, squares int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	dark := color.NRGBA{R: 0x22, G: 0x44, B: 0x88, A: 0xff}
	cell := max(size/squares, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			if (x/cell+y/cell)%2 == 0 {
				c = light
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
