// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && cgo

package egl

import (
	"errors"
	"sync"
)

/*
#cgo LDFLAGS: -ldl

#include <stdint.h>
#include <stddef.h>
#include <dlfcn.h>

typedef int32_t EGLint;
typedef unsigned int EGLBoolean;
typedef void *EGLDisplay;
typedef void *EGLConfig;
typedef void *EGLContext;
typedef void *EGLSurface;

struct oogl_egl {
	EGLDisplay (*eglGetDisplay)(void *display);
	EGLBoolean (*eglInitialize)(EGLDisplay dpy, EGLint *major, EGLint *minor);
	EGLBoolean (*eglChooseConfig)(EGLDisplay dpy, const EGLint *attribs, EGLConfig *configs, EGLint size, EGLint *n);
	EGLContext (*eglCreateContext)(EGLDisplay dpy, EGLConfig config, EGLContext share, const EGLint *attribs);
	EGLSurface (*eglCreatePbufferSurface)(EGLDisplay dpy, EGLConfig config, const EGLint *attribs);
	EGLBoolean (*eglMakeCurrent)(EGLDisplay dpy, EGLSurface draw, EGLSurface read, EGLContext ctx);
	EGLBoolean (*eglDestroySurface)(EGLDisplay dpy, EGLSurface surface);
	EGLBoolean (*eglDestroyContext)(EGLDisplay dpy, EGLContext ctx);
	EGLBoolean (*eglTerminate)(EGLDisplay dpy);
	EGLBoolean (*eglReleaseThread)(void);
	EGLint (*eglGetError)(void);
};

static int oogl_loadEGL(struct oogl_egl *f) {
	void *lib = dlopen("libEGL.so.1", RTLD_NOW | RTLD_GLOBAL);
	if (lib == NULL) {
		lib = dlopen("libEGL.so", RTLD_NOW | RTLD_GLOBAL);
	}
	if (lib == NULL) {
		return 0;
	}
	f->eglGetDisplay = dlsym(lib, "eglGetDisplay");
	f->eglInitialize = dlsym(lib, "eglInitialize");
	f->eglChooseConfig = dlsym(lib, "eglChooseConfig");
	f->eglCreateContext = dlsym(lib, "eglCreateContext");
	f->eglCreatePbufferSurface = dlsym(lib, "eglCreatePbufferSurface");
	f->eglMakeCurrent = dlsym(lib, "eglMakeCurrent");
	f->eglDestroySurface = dlsym(lib, "eglDestroySurface");
	f->eglDestroyContext = dlsym(lib, "eglDestroyContext");
	f->eglTerminate = dlsym(lib, "eglTerminate");
	f->eglReleaseThread = dlsym(lib, "eglReleaseThread");
	f->eglGetError = dlsym(lib, "eglGetError");
	return f->eglGetDisplay && f->eglInitialize && f->eglChooseConfig &&
		f->eglCreateContext && f->eglCreatePbufferSurface && f->eglMakeCurrent &&
		f->eglDestroySurface && f->eglDestroyContext && f->eglTerminate &&
		f->eglReleaseThread && f->eglGetError;
}

static EGLDisplay oogl_eglGetDisplay(struct oogl_egl *f) {
	return f->eglGetDisplay(NULL);
}

static EGLBoolean oogl_eglInitialize(struct oogl_egl *f, EGLDisplay dpy) {
	EGLint major, minor;
	return f->eglInitialize(dpy, &major, &minor);
}

static EGLConfig oogl_eglChooseConfig(struct oogl_egl *f, EGLDisplay dpy, const EGLint *attribs, EGLBoolean *ok) {
	EGLConfig cfg = NULL;
	EGLint n = 0;
	*ok = f->eglChooseConfig(dpy, attribs, &cfg, 1, &n);
	if (n == 0) {
		return NULL;
	}
	return cfg;
}

static EGLContext oogl_eglCreateContext(struct oogl_egl *f, EGLDisplay dpy, EGLConfig config, const EGLint *attribs) {
	return f->eglCreateContext(dpy, config, NULL, attribs);
}

static EGLSurface oogl_eglCreatePbufferSurface(struct oogl_egl *f, EGLDisplay dpy, EGLConfig config, const EGLint *attribs) {
	return f->eglCreatePbufferSurface(dpy, config, attribs);
}

static EGLBoolean oogl_eglMakeCurrent(struct oogl_egl *f, EGLDisplay dpy, EGLSurface draw, EGLSurface read, EGLContext ctx) {
	return f->eglMakeCurrent(dpy, draw, read, ctx);
}

static EGLBoolean oogl_eglDestroySurface(struct oogl_egl *f, EGLDisplay dpy, EGLSurface surface) {
	return f->eglDestroySurface(dpy, surface);
}

static EGLBoolean oogl_eglDestroyContext(struct oogl_egl *f, EGLDisplay dpy, EGLContext ctx) {
	return f->eglDestroyContext(dpy, ctx);
}

static EGLBoolean oogl_eglTerminate(struct oogl_egl *f, EGLDisplay dpy) {
	return f->eglTerminate(dpy);
}

static EGLBoolean oogl_eglReleaseThread(struct oogl_egl *f) {
	return f->eglReleaseThread();
}

static EGLint oogl_eglGetError(struct oogl_egl *f) {
	return f->eglGetError();
}
*/
import "C"

type (
	_EGLint     = C.EGLint
	_EGLDisplay = C.EGLDisplay
	_EGLConfig  = C.EGLConfig
	_EGLContext = C.EGLContext
	_EGLSurface = C.EGLSurface
)

var (
	funcs    C.struct_oogl_egl
	loadOnce sync.Once
	loadErr  error
)

func loadEGL() error {
	loadOnce.Do(func() {
		if C.oogl_loadEGL(&funcs) == 0 {
			loadErr = errors.New("egl: libEGL.so.1 not found or incomplete")
		}
	})
	return loadErr
}

func eglGetDisplay() _EGLDisplay {
	return C.oogl_eglGetDisplay(&funcs)
}

func eglInitialize(disp _EGLDisplay) bool {
	return C.oogl_eglInitialize(&funcs, disp) != 0
}

func eglChooseConfig(disp _EGLDisplay, attribs []_EGLint) (_EGLConfig, bool) {
	var ok C.EGLBoolean
	cfg := C.oogl_eglChooseConfig(&funcs, disp, &attribs[0], &ok)
	return cfg, ok != 0
}

func eglCreateContext(disp _EGLDisplay, cfg _EGLConfig, attribs []_EGLint) _EGLContext {
	return C.oogl_eglCreateContext(&funcs, disp, cfg, &attribs[0])
}

func eglCreatePbufferSurface(disp _EGLDisplay, cfg _EGLConfig, attribs []_EGLint) _EGLSurface {
	return C.oogl_eglCreatePbufferSurface(&funcs, disp, cfg, &attribs[0])
}

func eglMakeCurrent(disp _EGLDisplay, draw, read _EGLSurface, ctx _EGLContext) bool {
	return C.oogl_eglMakeCurrent(&funcs, disp, draw, read, ctx) != 0
}

func eglDestroySurface(disp _EGLDisplay, surf _EGLSurface) bool {
	return C.oogl_eglDestroySurface(&funcs, disp, surf) != 0
}

func eglDestroyContext(disp _EGLDisplay, ctx _EGLContext) bool {
	return C.oogl_eglDestroyContext(&funcs, disp, ctx) != 0
}

func eglTerminate(disp _EGLDisplay) bool {
	return C.oogl_eglTerminate(&funcs, disp) != 0
}

func eglReleaseThread() bool {
	return C.oogl_eglReleaseThread(&funcs) != 0
}

func eglGetError() _EGLint {
	return C.oogl_eglGetError(&funcs)
}
