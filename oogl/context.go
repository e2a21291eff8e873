// SPDX-License-Identifier: Unlicense OR MIT

/*
Package oogl is a binding-safe layer over OpenGL ES 2.0.

OpenGL operates on whatever object is bound to an implicit binding
point. oogl makes that state explicit: a Context tracks the object
bound to every binding point and each object's Bind method returns a
scoped binding that exposes the operations acting on the bound object.
Rebinding an already bound object issues no GL call, and binding a
second object to a point while a binding of the first is still alive
panics.

	vbo := oogl.NewVertexBuffer[Vertex](ctx, oogl.StaticDraw, attribs)
	defer vbo.Release()
	b := vbo.Bind()
	defer b.Release()
	b.AllocAndSet(vertices)

A Context and every object created from it must only be used from the
goroutine owning the native GL context, which should be locked to its
OS thread with runtime.LockOSThread.
*/
package oogl

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cardboard.dev/internal/gl"
)

// maxTextureUnits bounds the texture unit pool regardless of what the
// driver reports.
const maxTextureUnits = 32

// Loader resolves the address of a named GL entry point, such as
// glfw.GetProcAddress. It returns nil for unknown names.
type Loader = func(name string) unsafe.Pointer

// Context owns the GL function table, the capabilities of the driver,
// the binding state of every binding point and the texture unit pool.
type Context struct {
	f    gl.Functions
	caps Caps
	log  *slog.Logger

	program     bindingTarget
	arrayBuffer bindingTarget
	indexBuffer bindingTarget
	framebuffer bindingTarget
	// textures holds one TEXTURE_2D binding point per texture unit.
	textures   []bindingTarget
	activeUnit int

	units     []int
	unitCount int

	state fixedState
	debug bool
}

// Option configures a Context.
type Option func(*config)

type config struct {
	maxUnits    int
	debugOutput bool
	logger      *slog.Logger
}

// WithMaxTextureUnits limits the texture unit pool to n units.
func WithMaxTextureUnits(n int) Option {
	return func(c *config) {
		c.maxUnits = n
	}
}

// WithDebugOutput routes KHR_debug driver messages to the logger when
// the driver supports it.
func WithDebugOutput(enable bool) Option {
	return func(c *config) {
		c.debugOutput = enable
	}
}

// WithLogger sets the logger of the context. The package logger is
// used by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Load resolves the GL function table through loader and creates a
// Context for the GL context current on the calling thread. Missing
// optional entry points disable the related features; a missing
// required entry point is an error.
func Load(loader Loader, opts ...Option) (*Context, error) {
	f, err := gl.Load(loader)
	if err != nil {
		return nil, fmt.Errorf("oogl: %w", err)
	}
	return newContext(f, opts...), nil
}

// MustLoad is like Load but panics if the function table cannot be
// loaded.
func MustLoad(loader Loader, opts ...Option) *Context {
	ctx, err := Load(loader, opts...)
	if err != nil {
		panic(err)
	}
	return ctx
}

func newContext(f gl.Functions, opts ...Option) *Context {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	c := &Context{
		f:    f,
		caps: probe(f),
		log:  cfg.logger,
	}
	c.program.bind = func(name uint) {
		f.UseProgram(gl.Program{V: name})
	}
	c.arrayBuffer.bind = func(name uint) {
		f.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{V: name})
	}
	c.indexBuffer.bind = func(name uint) {
		f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{V: name})
	}
	c.framebuffer.bind = func(name uint) {
		f.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{V: name})
	}
	c.textures = make([]bindingTarget, c.caps.MaxTextureUnits)
	for i := range c.textures {
		c.textures[i].bind = func(name uint) {
			f.BindTexture(gl.TEXTURE_2D, gl.Texture{V: name})
		}
	}
	n := min(c.caps.MaxTextureUnits, maxTextureUnits)
	if cfg.maxUnits > 0 {
		n = min(n, cfg.maxUnits)
	}
	c.unitCount = n
	// The pool is a stack; push in reverse so unit 0 is handed out first.
	for i := n - 1; i >= 0; i-- {
		c.units = append(c.units, i)
	}
	// Rows of uploaded and read back pixels are tightly packed.
	f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	f.PixelStorei(gl.PACK_ALIGNMENT, 1)
	if cfg.debugOutput && c.caps.DebugOutput {
		c.enableDebugOutput()
	}
	c.logger().Info("oogl: context created",
		"vendor", c.caps.Vendor,
		"renderer", c.caps.Renderer,
		"version", c.caps.Version,
		"glsl", c.caps.ShadingLanguageVersion,
		"texture_units", c.caps.MaxTextureUnits,
		"max_texture_size", c.caps.MaxTextureSize,
		"max_vertex_attribs", c.caps.MaxVertexAttribs,
		"debug_labels", c.caps.DebugLabels,
		"npot_textures", c.caps.NPOTTextures,
	)
	return c
}

func (c *Context) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}

// Caps returns the capabilities probed when the context was created.
func (c *Context) Caps() Caps {
	return c.caps
}

// ActiveTextureUnit returns the index of the active texture unit.
func (c *Context) ActiveTextureUnit() int {
	return c.activeUnit
}

// Release stops the routing of driver messages. Objects created from
// the context must be released separately.
func (c *Context) Release() {
	if c.debug {
		c.f.DebugMessageCallback(nil)
		c.f.Disable(gl.DEBUG_OUTPUT_KHR)
		c.debug = false
	}
}

// checkUnit panics if unit is not a texture unit of the driver.
func (c *Context) checkUnit(unit int) {
	if unit < 0 || unit >= c.caps.MaxTextureUnits {
		panic(fmt.Errorf("texture unit %d out of range (max %d)", unit, c.caps.MaxTextureUnits))
	}
}

// activateUnit makes unit the active texture unit.
func (c *Context) activateUnit(unit int) {
	if c.activeUnit != unit {
		c.f.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
		c.activeUnit = unit
	}
}
