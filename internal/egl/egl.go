// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && cgo) || windows

// Package egl creates offscreen OpenGL ES 2.0 contexts for running GL
// code without a window. Entry points of a context are resolved with
// gl.LibGLESv2.
package egl

import (
	"errors"
	"fmt"
)

// Context is an OpenGL ES 2.0 context rendering to a pbuffer surface.
type Context struct {
	disp _EGLDisplay
	ctx  _EGLContext
	surf _EGLSurface
}

const (
	_EGL_ALPHA_SIZE             = 0x3021
	_EGL_BLUE_SIZE              = 0x3022
	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_GREEN_SIZE             = 0x3023
	_EGL_HEIGHT                 = 0x3056
	_EGL_NONE                   = 0x3038
	_EGL_OPENGL_ES2_BIT         = 0x4
	_EGL_PBUFFER_BIT            = 0x1
	_EGL_RED_SIZE               = 0x3024
	_EGL_RENDERABLE_TYPE        = 0x3040
	_EGL_SURFACE_TYPE           = 0x3033
	_EGL_WIDTH                  = 0x3057
)

var (
	nilEGLDisplay _EGLDisplay
	nilEGLSurface _EGLSurface
	nilEGLContext _EGLContext
	nilEGLConfig  _EGLConfig
)

// NewContext creates a context with a pbuffer surface of width×height
// pixels. The context is not current.
func NewContext(width, height int) (*Context, error) {
	if err := loadEGL(); err != nil {
		return nil, err
	}
	disp := eglGetDisplay()
	if disp == nilEGLDisplay {
		return nil, fmt.Errorf("egl: eglGetDisplay failed: 0x%x", eglGetError())
	}
	if !eglInitialize(disp) {
		return nil, fmt.Errorf("egl: eglInitialize failed: 0x%x", eglGetError())
	}
	c := &Context{disp: disp}
	if err := c.create(width, height); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

func (c *Context) create(width, height int) error {
	attribs := []_EGLint{
		_EGL_RENDERABLE_TYPE, _EGL_OPENGL_ES2_BIT,
		_EGL_SURFACE_TYPE, _EGL_PBUFFER_BIT,
		_EGL_RED_SIZE, 8,
		_EGL_GREEN_SIZE, 8,
		_EGL_BLUE_SIZE, 8,
		_EGL_ALPHA_SIZE, 8,
		_EGL_NONE,
	}
	cfg, ok := eglChooseConfig(c.disp, attribs)
	if !ok {
		return fmt.Errorf("egl: eglChooseConfig failed: 0x%x", eglGetError())
	}
	if cfg == nilEGLConfig {
		return errors.New("egl: eglChooseConfig returned 0 configs")
	}
	c.ctx = eglCreateContext(c.disp, cfg, []_EGLint{
		_EGL_CONTEXT_CLIENT_VERSION, 2,
		_EGL_NONE,
	})
	if c.ctx == nilEGLContext {
		return fmt.Errorf("egl: eglCreateContext failed: 0x%x", eglGetError())
	}
	c.surf = eglCreatePbufferSurface(c.disp, cfg, []_EGLint{
		_EGL_WIDTH, _EGLint(width),
		_EGL_HEIGHT, _EGLint(height),
		_EGL_NONE,
	})
	if c.surf == nilEGLSurface {
		return fmt.Errorf("egl: eglCreatePbufferSurface failed: 0x%x", eglGetError())
	}
	return nil
}

// MakeCurrent makes the context current on the calling thread, which
// should be locked with runtime.LockOSThread.
func (c *Context) MakeCurrent() error {
	if !eglMakeCurrent(c.disp, c.surf, c.surf, c.ctx) {
		return fmt.Errorf("egl: eglMakeCurrent failed: 0x%x", eglGetError())
	}
	return nil
}

func (c *Context) ReleaseCurrent() {
	eglMakeCurrent(c.disp, nilEGLSurface, nilEGLSurface, nilEGLContext)
}

// Release destroys the context and its surface.
func (c *Context) Release() {
	if c.disp == nilEGLDisplay {
		return
	}
	if c.surf != nilEGLSurface {
		eglDestroySurface(c.disp, c.surf)
		c.surf = nilEGLSurface
	}
	if c.ctx != nilEGLContext {
		eglDestroyContext(c.disp, c.ctx)
		c.ctx = nilEGLContext
	}
	eglTerminate(c.disp)
	eglReleaseThread()
	c.disp = nilEGLDisplay
}
