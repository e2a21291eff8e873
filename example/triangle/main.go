// SPDX-License-Identifier: Unlicense OR MIT

// package glfw doesn't build on OpenBSD and FreeBSD.
//go:build !openbsd && !freebsd && !android && !ios && !js

// Command triangle draws a spinning triangle through an OpenGL ES 2.0
// context created by GLFW.
package main

import (
	"flag"
	"image"
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
	width  = flag.Int("width", 800, "window width")
	height = flag.Int("height", 600, "window height")
	speed  = flag.Float64("speed", 1, "rotation speed in turns per second")
	debug  = flag.Bool("debug", false, "log driver debug messages")
)

var vertSrc = shader.Sources{
	Name: "triangle.vert",
	GLSL100ES: `#version 100
uniform vec2 u_rot;
attribute vec2 a_pos;
attribute vec4 a_color;
varying vec4 v_color;

void main() {
	vec2 p = vec2(a_pos.x*u_rot.x - a_pos.y*u_rot.y, a_pos.x*u_rot.y + a_pos.y*u_rot.x);
	gl_Position = vec4(p, 0.0, 1.0);
	v_color     = a_color;
}
`,
	Inputs: []shader.InputLocation{
		{Name: "a_pos", Location: 0, Type: shader.DataTypeFloat, Size: 2},
		{Name: "a_color", Location: 1, Type: shader.DataTypeFloat, Size: 4},
	},
}

var fragSrc = shader.Sources{
	Name: "triangle.frag",
	GLSL100ES: `#version 100
precision mediump float;
varying vec4 v_color;
uniform float u_fade;

void main() {
	gl_FragColor = vec4(v_color.rgb*u_fade, v_color.a);
}
`,
}

type vertex struct {
	Pos   f32.Point
	Color f32color.RGBA
}

type triangleProgram struct {
	Rot   oogl.Uniform[f32.Point]    `glsl:"u_rot"`
	Fade  oogl.Uniform[float32]      `glsl:"u_fade"`
	Pos   oogl.Attrib[f32.Point]     `glsl:"a_pos"`
	Color oogl.Attrib[f32color.RGBA] `glsl:"a_color"`
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

	window, err := glfw.CreateWindow(*width, *height, "oogl triangle", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	oogl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ctx := oogl.MustLoad(glfw.GetProcAddress, oogl.WithDebugOutput(*debug))
	defer ctx.Release()

	prog, err := oogl.NewProgramFromSources(ctx, vertSrc, fragSrc)
	if err != nil {
		log.Fatal(err)
	}
	defer prog.Release()
	var block triangleProgram
	oogl.Reflect(prog, &block)

	vb := oogl.NewVertexBuffer[vertex](ctx, oogl.StaticDraw, []oogl.AttribPtr{
		block.Pos.ToPointerSimple(),
		block.Color.ToPointerSimple(),
	})
	defer vb.Release()
	vb.SetDebugLabel([]byte("triangle"))
	vbb := vb.Bind()
	vbb.AllocAndSet([]vertex{
		{Pos: f32.Pt(0, .8), Color: f32color.RGBA{R: 1, A: 1}},
		{Pos: f32.Pt(-.7, -.4), Color: f32color.RGBA{G: 1, A: 1}},
		{Pos: f32.Pt(.7, -.4), Color: f32color.RGBA{B: 1, A: 1}},
	})
	vbb.ConfigureAttribs()
	vbb.EnableAttribs()
	vbb.Release()

	ctx.ClearColor(f32color.RGBA{R: .1, G: .1, B: .1, A: 1})
	start := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		w, h := window.GetFramebufferSize()
		ctx.SetViewport(image.Rect(0, 0, w, h))
		ctx.Clear(oogl.ClearColorBuffer)

		t := float32(time.Since(start).Seconds())
		angle := t * float32(*speed) * 2 * math32.Pi
		sin, cos := math32.Sincos(angle)

		pb := prog.Bind()
		block.Rot.Set(pb, f32.Pt(cos, sin))
		block.Fade.Set(pb, .75+.25*math32.Cos(t))
		vbb := vb.Bind()
		vbb.Draw(pb, oogl.Triangles)
		vbb.Release()
		pb.Release()

		window.SwapBuffers()
	}
}
