// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

package gl

import (
	"fmt"
	"runtime/cgo"
	"strings"
	"unsafe"
)

/*
#cgo CFLAGS: -Werror

#include <stdlib.h>
#include "gles2.h"

extern void ooglDebugMessage(GLenum source, GLenum typ, GLuint id, GLenum severity, GLsizei length, GLchar *message, void *userParam);

static void oogl_glActiveTexture(struct oogl_functions *f, GLenum texture) {
	f->glActiveTexture(texture);
}

static void oogl_glAttachShader(struct oogl_functions *f, GLuint program, GLuint shader) {
	f->glAttachShader(program, shader);
}

static void oogl_glBindAttribLocation(struct oogl_functions *f, GLuint program, GLuint index, const GLchar *name) {
	f->glBindAttribLocation(program, index, name);
}

static void oogl_glBindBuffer(struct oogl_functions *f, GLenum target, GLuint buffer) {
	f->glBindBuffer(target, buffer);
}

static void oogl_glBindFramebuffer(struct oogl_functions *f, GLenum target, GLuint framebuffer) {
	f->glBindFramebuffer(target, framebuffer);
}

static void oogl_glBindTexture(struct oogl_functions *f, GLenum target, GLuint texture) {
	f->glBindTexture(target, texture);
}

static void oogl_glBlendColor(struct oogl_functions *f, GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha) {
	f->glBlendColor(red, green, blue, alpha);
}

static void oogl_glBlendEquation(struct oogl_functions *f, GLenum mode) {
	f->glBlendEquation(mode);
}

static void oogl_glBlendFunc(struct oogl_functions *f, GLenum sfactor, GLenum dfactor) {
	f->glBlendFunc(sfactor, dfactor);
}

static void oogl_glBufferData(struct oogl_functions *f, GLenum target, GLsizeiptr size, const void *data, GLenum usage) {
	f->glBufferData(target, size, data, usage);
}

static void oogl_glBufferSubData(struct oogl_functions *f, GLenum target, GLintptr offset, GLsizeiptr size, const void *data) {
	f->glBufferSubData(target, offset, size, data);
}

static GLenum oogl_glCheckFramebufferStatus(struct oogl_functions *f, GLenum target) {
	return f->glCheckFramebufferStatus(target);
}

static void oogl_glClear(struct oogl_functions *f, GLbitfield mask) {
	f->glClear(mask);
}

static void oogl_glClearColor(struct oogl_functions *f, GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha) {
	f->glClearColor(red, green, blue, alpha);
}

static void oogl_glCompileShader(struct oogl_functions *f, GLuint shader) {
	f->glCompileShader(shader);
}

static GLuint oogl_glCreateProgram(struct oogl_functions *f) {
	return f->glCreateProgram();
}

static GLuint oogl_glCreateShader(struct oogl_functions *f, GLenum type) {
	return f->glCreateShader(type);
}

static void oogl_glDeleteBuffers(struct oogl_functions *f, GLsizei n, const GLuint *buffers) {
	f->glDeleteBuffers(n, buffers);
}

static void oogl_glDeleteFramebuffers(struct oogl_functions *f, GLsizei n, const GLuint *framebuffers) {
	f->glDeleteFramebuffers(n, framebuffers);
}

static void oogl_glDeleteProgram(struct oogl_functions *f, GLuint program) {
	f->glDeleteProgram(program);
}

static void oogl_glDeleteShader(struct oogl_functions *f, GLuint shader) {
	f->glDeleteShader(shader);
}

static void oogl_glDeleteTextures(struct oogl_functions *f, GLsizei n, const GLuint *textures) {
	f->glDeleteTextures(n, textures);
}

static void oogl_glDetachShader(struct oogl_functions *f, GLuint program, GLuint shader) {
	f->glDetachShader(program, shader);
}

static void oogl_glDisable(struct oogl_functions *f, GLenum cap) {
	f->glDisable(cap);
}

static void oogl_glDisableVertexAttribArray(struct oogl_functions *f, GLuint index) {
	f->glDisableVertexAttribArray(index);
}

static void oogl_glDrawArrays(struct oogl_functions *f, GLenum mode, GLint first, GLsizei count) {
	f->glDrawArrays(mode, first, count);
}

// The pointer-free version of glDrawElements, to avoid the Cgo pointer checks.
static void oogl_glDrawElements(struct oogl_functions *f, GLenum mode, GLsizei count, GLenum type, uintptr_t offset) {
	f->glDrawElements(mode, count, type, (const void *)offset);
}

static void oogl_glEnable(struct oogl_functions *f, GLenum cap) {
	f->glEnable(cap);
}

static void oogl_glEnableVertexAttribArray(struct oogl_functions *f, GLuint index) {
	f->glEnableVertexAttribArray(index);
}

static void oogl_glFramebufferTexture2D(struct oogl_functions *f, GLenum target, GLenum attachment, GLenum textarget, GLuint texture, GLint level) {
	f->glFramebufferTexture2D(target, attachment, textarget, texture, level);
}

static void oogl_glGenBuffers(struct oogl_functions *f, GLsizei n, GLuint *buffers) {
	f->glGenBuffers(n, buffers);
}

static void oogl_glGenerateMipmap(struct oogl_functions *f, GLenum target) {
	f->glGenerateMipmap(target);
}

static void oogl_glGenFramebuffers(struct oogl_functions *f, GLsizei n, GLuint *framebuffers) {
	f->glGenFramebuffers(n, framebuffers);
}

static void oogl_glGenTextures(struct oogl_functions *f, GLsizei n, GLuint *textures) {
	f->glGenTextures(n, textures);
}

static void oogl_glGetActiveAttrib(struct oogl_functions *f, GLuint program, GLuint index, GLsizei bufSize, GLsizei *length, GLint *size, GLenum *type, GLchar *name) {
	f->glGetActiveAttrib(program, index, bufSize, length, size, type, name);
}

static void oogl_glGetActiveUniform(struct oogl_functions *f, GLuint program, GLuint index, GLsizei bufSize, GLsizei *length, GLint *size, GLenum *type, GLchar *name) {
	f->glGetActiveUniform(program, index, bufSize, length, size, type, name);
}

static GLint oogl_glGetAttribLocation(struct oogl_functions *f, GLuint program, const GLchar *name) {
	return f->glGetAttribLocation(program, name);
}

static GLenum oogl_glGetError(struct oogl_functions *f) {
	return f->glGetError();
}

static void oogl_glGetIntegerv(struct oogl_functions *f, GLenum pname, GLint *data) {
	f->glGetIntegerv(pname, data);
}

static void oogl_glGetProgramiv(struct oogl_functions *f, GLuint program, GLenum pname, GLint *params) {
	f->glGetProgramiv(program, pname, params);
}

static void oogl_glGetProgramInfoLog(struct oogl_functions *f, GLuint program, GLsizei bufSize, GLsizei *length, GLchar *infoLog) {
	f->glGetProgramInfoLog(program, bufSize, length, infoLog);
}

static void oogl_glGetShaderiv(struct oogl_functions *f, GLuint shader, GLenum pname, GLint *params) {
	f->glGetShaderiv(shader, pname, params);
}

static void oogl_glGetShaderInfoLog(struct oogl_functions *f, GLuint shader, GLsizei bufSize, GLsizei *length, GLchar *infoLog) {
	f->glGetShaderInfoLog(shader, bufSize, length, infoLog);
}

static const GLubyte *oogl_glGetString(struct oogl_functions *f, GLenum name) {
	return f->glGetString(name);
}

static GLint oogl_glGetUniformLocation(struct oogl_functions *f, GLuint program, const GLchar *name) {
	return f->glGetUniformLocation(program, name);
}

static void oogl_glLinkProgram(struct oogl_functions *f, GLuint program) {
	f->glLinkProgram(program);
}

static void oogl_glPixelStorei(struct oogl_functions *f, GLenum pname, GLint param) {
	f->glPixelStorei(pname, param);
}

static void oogl_glReadPixels(struct oogl_functions *f, GLint x, GLint y, GLsizei width, GLsizei height, GLenum format, GLenum type, void *pixels) {
	f->glReadPixels(x, y, width, height, format, type, pixels);
}

static void oogl_glShaderSource(struct oogl_functions *f, GLuint shader, GLsizei count, const GLchar *const *string, const GLint *length) {
	f->glShaderSource(shader, count, string, length);
}

static void oogl_glTexImage2D(struct oogl_functions *f, GLenum target, GLint level, GLint internalformat, GLsizei width, GLsizei height, GLenum format, GLenum type, const void *pixels) {
	f->glTexImage2D(target, level, internalformat, width, height, 0, format, type, pixels);
}

static void oogl_glTexParameteri(struct oogl_functions *f, GLenum target, GLenum pname, GLint param) {
	f->glTexParameteri(target, pname, param);
}

static void oogl_glTexSubImage2D(struct oogl_functions *f, GLenum target, GLint level, GLint xoffset, GLint yoffset, GLsizei width, GLsizei height, GLenum format, GLenum type, const void *pixels) {
	f->glTexSubImage2D(target, level, xoffset, yoffset, width, height, format, type, pixels);
}

static void oogl_glUniform1f(struct oogl_functions *f, GLint location, GLfloat v0) {
	f->glUniform1f(location, v0);
}

static void oogl_glUniform1i(struct oogl_functions *f, GLint location, GLint v0) {
	f->glUniform1i(location, v0);
}

static void oogl_glUniform2f(struct oogl_functions *f, GLint location, GLfloat v0, GLfloat v1) {
	f->glUniform2f(location, v0, v1);
}

static void oogl_glUniform2i(struct oogl_functions *f, GLint location, GLint v0, GLint v1) {
	f->glUniform2i(location, v0, v1);
}

static void oogl_glUniform4f(struct oogl_functions *f, GLint location, GLfloat v0, GLfloat v1, GLfloat v2, GLfloat v3) {
	f->glUniform4f(location, v0, v1, v2, v3);
}

static void oogl_glUseProgram(struct oogl_functions *f, GLuint program) {
	f->glUseProgram(program);
}

// The pointer-free version of glVertexAttribPointer, to avoid the Cgo pointer checks.
static void oogl_glVertexAttribPointer(struct oogl_functions *f, GLuint index, GLint size, GLenum type, GLboolean normalized, GLsizei stride, uintptr_t offset) {
	f->glVertexAttribPointer(index, size, type, normalized, stride, (const void *)offset);
}

static void oogl_glViewport(struct oogl_functions *f, GLint x, GLint y, GLsizei width, GLsizei height) {
	f->glViewport(x, y, width, height);
}

static void oogl_glObjectLabel(struct oogl_functions *f, GLenum identifier, GLuint name, GLsizei length, const GLchar *label) {
	f->glObjectLabel(identifier, name, length, label);
}

static void oogl_glGetObjectLabel(struct oogl_functions *f, GLenum identifier, GLuint name, GLsizei bufSize, GLsizei *length, GLchar *label) {
	f->glGetObjectLabel(identifier, name, bufSize, length, label);
}

static void oogl_glDebugMessageCallback(struct oogl_functions *f, uintptr_t handle) {
	if (handle == 0) {
		f->glDebugMessageCallback(NULL, NULL);
		return;
	}
	f->glDebugMessageCallback((GLDEBUGPROCKHR)ooglDebugMessage, (const void *)handle);
}
*/
import "C"

type functions struct {
	f C.struct_oogl_functions
	// Query caches.
	uints [100]C.GLuint
	ints  [100]C.GLint
	sizei C.GLsizei
	enum  C.GLenum
	// debug holds the Go callback handed to glDebugMessageCallback.
	debug cgo.Handle
}

// Load resolves every entry point through loader. It fails with a list
// of the missing names when a required entry point cannot be found;
// missing KHR_debug entry points only disable the related features.
func Load(loader Loader) (Functions, error) {
	f := new(functions)
	if err := f.load(loader); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *functions) load(loader Loader) error {
	var missing []string
	must := func(name string) *[0]byte {
		p := loader(name)
		if p == nil {
			missing = append(missing, name)
		}
		return (*[0]byte)(p)
	}
	// Extension entry points are published with and without the KHR
	// suffix depending on the driver.
	optional := func(names ...string) *[0]byte {
		for _, name := range names {
			if p := loader(name); p != nil {
				return (*[0]byte)(p)
			}
		}
		return nil
	}
	c := &f.f
	c.glActiveTexture = must("glActiveTexture")
	c.glAttachShader = must("glAttachShader")
	c.glBindAttribLocation = must("glBindAttribLocation")
	c.glBindBuffer = must("glBindBuffer")
	c.glBindFramebuffer = must("glBindFramebuffer")
	c.glBindTexture = must("glBindTexture")
	c.glBlendColor = must("glBlendColor")
	c.glBlendEquation = must("glBlendEquation")
	c.glBlendFunc = must("glBlendFunc")
	c.glBufferData = must("glBufferData")
	c.glBufferSubData = must("glBufferSubData")
	c.glCheckFramebufferStatus = must("glCheckFramebufferStatus")
	c.glClear = must("glClear")
	c.glClearColor = must("glClearColor")
	c.glCompileShader = must("glCompileShader")
	c.glCreateProgram = must("glCreateProgram")
	c.glCreateShader = must("glCreateShader")
	c.glDeleteBuffers = must("glDeleteBuffers")
	c.glDeleteFramebuffers = must("glDeleteFramebuffers")
	c.glDeleteProgram = must("glDeleteProgram")
	c.glDeleteShader = must("glDeleteShader")
	c.glDeleteTextures = must("glDeleteTextures")
	c.glDetachShader = must("glDetachShader")
	c.glDisable = must("glDisable")
	c.glDisableVertexAttribArray = must("glDisableVertexAttribArray")
	c.glDrawArrays = must("glDrawArrays")
	c.glDrawElements = must("glDrawElements")
	c.glEnable = must("glEnable")
	c.glEnableVertexAttribArray = must("glEnableVertexAttribArray")
	c.glFramebufferTexture2D = must("glFramebufferTexture2D")
	c.glGenBuffers = must("glGenBuffers")
	c.glGenerateMipmap = must("glGenerateMipmap")
	c.glGenFramebuffers = must("glGenFramebuffers")
	c.glGenTextures = must("glGenTextures")
	c.glGetActiveAttrib = must("glGetActiveAttrib")
	c.glGetActiveUniform = must("glGetActiveUniform")
	c.glGetAttribLocation = must("glGetAttribLocation")
	c.glGetError = must("glGetError")
	c.glGetIntegerv = must("glGetIntegerv")
	c.glGetProgramiv = must("glGetProgramiv")
	c.glGetProgramInfoLog = must("glGetProgramInfoLog")
	c.glGetShaderiv = must("glGetShaderiv")
	c.glGetShaderInfoLog = must("glGetShaderInfoLog")
	c.glGetString = must("glGetString")
	c.glGetUniformLocation = must("glGetUniformLocation")
	c.glLinkProgram = must("glLinkProgram")
	c.glPixelStorei = must("glPixelStorei")
	c.glReadPixels = must("glReadPixels")
	c.glShaderSource = must("glShaderSource")
	c.glTexImage2D = must("glTexImage2D")
	c.glTexParameteri = must("glTexParameteri")
	c.glTexSubImage2D = must("glTexSubImage2D")
	c.glUniform1f = must("glUniform1f")
	c.glUniform1i = must("glUniform1i")
	c.glUniform2f = must("glUniform2f")
	c.glUniform2i = must("glUniform2i")
	c.glUniform4f = must("glUniform4f")
	c.glUseProgram = must("glUseProgram")
	c.glVertexAttribPointer = must("glVertexAttribPointer")
	c.glViewport = must("glViewport")

	c.glObjectLabel = optional("glObjectLabelKHR", "glObjectLabel")
	c.glGetObjectLabel = optional("glGetObjectLabelKHR", "glGetObjectLabel")
	c.glDebugMessageCallback = optional("glDebugMessageCallbackKHR", "glDebugMessageCallback")
	if len(missing) > 0 {
		return fmt.Errorf("gl: missing entry points: %s", strings.Join(missing, ", "))
	}
	return nil
}

func glBool(v bool) C.GLboolean {
	if v {
		return C.GLboolean(TRUE)
	}
	return C.GLboolean(FALSE)
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (f *functions) ActiveTexture(texture Enum) {
	C.oogl_glActiveTexture(&f.f, C.GLenum(texture))
}

func (f *functions) AttachShader(p Program, s Shader) {
	C.oogl_glAttachShader(&f.f, C.GLuint(p.V), C.GLuint(s.V))
}

func (f *functions) BindAttribLocation(p Program, a Attrib, name string) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	C.oogl_glBindAttribLocation(&f.f, C.GLuint(p.V), C.GLuint(a), (*C.GLchar)(unsafe.Pointer(cname)))
}

func (f *functions) BindBuffer(target Enum, b Buffer) {
	C.oogl_glBindBuffer(&f.f, C.GLenum(target), C.GLuint(b.V))
}

func (f *functions) BindFramebuffer(target Enum, fb Framebuffer) {
	C.oogl_glBindFramebuffer(&f.f, C.GLenum(target), C.GLuint(fb.V))
}

func (f *functions) BindTexture(target Enum, t Texture) {
	C.oogl_glBindTexture(&f.f, C.GLenum(target), C.GLuint(t.V))
}

func (f *functions) BlendColor(red, green, blue, alpha float32) {
	C.oogl_glBlendColor(&f.f, C.GLfloat(red), C.GLfloat(green), C.GLfloat(blue), C.GLfloat(alpha))
}

func (f *functions) BlendEquation(mode Enum) {
	C.oogl_glBlendEquation(&f.f, C.GLenum(mode))
}

func (f *functions) BlendFunc(sfactor, dfactor Enum) {
	C.oogl_glBlendFunc(&f.f, C.GLenum(sfactor), C.GLenum(dfactor))
}

func (f *functions) BufferData(target Enum, size int, usage Enum, data []byte) {
	C.oogl_glBufferData(&f.f, C.GLenum(target), C.GLsizeiptr(size), bytesPtr(data), C.GLenum(usage))
}

func (f *functions) BufferSubData(target Enum, offset int, src []byte) {
	C.oogl_glBufferSubData(&f.f, C.GLenum(target), C.GLintptr(offset), C.GLsizeiptr(len(src)), bytesPtr(src))
}

func (f *functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(C.oogl_glCheckFramebufferStatus(&f.f, C.GLenum(target)))
}

func (f *functions) Clear(mask Enum) {
	C.oogl_glClear(&f.f, C.GLbitfield(mask))
}

func (f *functions) ClearColor(red, green, blue, alpha float32) {
	C.oogl_glClearColor(&f.f, C.GLfloat(red), C.GLfloat(green), C.GLfloat(blue), C.GLfloat(alpha))
}

func (f *functions) CompileShader(s Shader) {
	C.oogl_glCompileShader(&f.f, C.GLuint(s.V))
}

func (f *functions) CreateBuffer() Buffer {
	C.oogl_glGenBuffers(&f.f, 1, &f.uints[0])
	return Buffer{uint(f.uints[0])}
}

func (f *functions) CreateFramebuffer() Framebuffer {
	C.oogl_glGenFramebuffers(&f.f, 1, &f.uints[0])
	return Framebuffer{uint(f.uints[0])}
}

func (f *functions) CreateProgram() Program {
	return Program{uint(C.oogl_glCreateProgram(&f.f))}
}

func (f *functions) CreateShader(ty Enum) Shader {
	return Shader{uint(C.oogl_glCreateShader(&f.f, C.GLenum(ty)))}
}

func (f *functions) CreateTexture() Texture {
	C.oogl_glGenTextures(&f.f, 1, &f.uints[0])
	return Texture{uint(f.uints[0])}
}

func (f *functions) DeleteBuffer(v Buffer) {
	f.uints[0] = C.GLuint(v.V)
	C.oogl_glDeleteBuffers(&f.f, 1, &f.uints[0])
}

func (f *functions) DeleteFramebuffer(v Framebuffer) {
	f.uints[0] = C.GLuint(v.V)
	C.oogl_glDeleteFramebuffers(&f.f, 1, &f.uints[0])
}

func (f *functions) DeleteProgram(p Program) {
	C.oogl_glDeleteProgram(&f.f, C.GLuint(p.V))
}

func (f *functions) DeleteShader(s Shader) {
	C.oogl_glDeleteShader(&f.f, C.GLuint(s.V))
}

func (f *functions) DeleteTexture(v Texture) {
	f.uints[0] = C.GLuint(v.V)
	C.oogl_glDeleteTextures(&f.f, 1, &f.uints[0])
}

func (f *functions) DetachShader(p Program, s Shader) {
	C.oogl_glDetachShader(&f.f, C.GLuint(p.V), C.GLuint(s.V))
}

func (f *functions) Disable(cap Enum) {
	C.oogl_glDisable(&f.f, C.GLenum(cap))
}

func (f *functions) DisableVertexAttribArray(a Attrib) {
	C.oogl_glDisableVertexAttribArray(&f.f, C.GLuint(a))
}

func (f *functions) DrawArrays(mode Enum, first, count int) {
	C.oogl_glDrawArrays(&f.f, C.GLenum(mode), C.GLint(first), C.GLsizei(count))
}

func (f *functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	C.oogl_glDrawElements(&f.f, C.GLenum(mode), C.GLsizei(count), C.GLenum(ty), C.uintptr_t(offset))
}

func (f *functions) Enable(cap Enum) {
	C.oogl_glEnable(&f.f, C.GLenum(cap))
}

func (f *functions) EnableVertexAttribArray(a Attrib) {
	C.oogl_glEnableVertexAttribArray(&f.f, C.GLuint(a))
}

func (f *functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	C.oogl_glFramebufferTexture2D(&f.f, C.GLenum(target), C.GLenum(attachment), C.GLenum(texTarget), C.GLuint(t.V), C.GLint(level))
}

func (f *functions) GenerateMipmap(target Enum) {
	C.oogl_glGenerateMipmap(&f.f, C.GLenum(target))
}

func (f *functions) GetActiveAttrib(p Program, index int) ActiveInfo {
	buf := make([]byte, max(f.GetProgrami(p, ACTIVE_ATTRIBUTE_MAX_LENGTH), 1))
	C.oogl_glGetActiveAttrib(&f.f, C.GLuint(p.V), C.GLuint(index), C.GLsizei(len(buf)), &f.sizei, &f.ints[0], &f.enum, (*C.GLchar)(unsafe.Pointer(&buf[0])))
	return ActiveInfo{Name: string(buf[:f.sizei]), Size: int(f.ints[0]), Type: Enum(f.enum)}
}

func (f *functions) GetActiveUniform(p Program, index int) ActiveInfo {
	buf := make([]byte, max(f.GetProgrami(p, ACTIVE_UNIFORM_MAX_LENGTH), 1))
	C.oogl_glGetActiveUniform(&f.f, C.GLuint(p.V), C.GLuint(index), C.GLsizei(len(buf)), &f.sizei, &f.ints[0], &f.enum, (*C.GLchar)(unsafe.Pointer(&buf[0])))
	return ActiveInfo{Name: string(buf[:f.sizei]), Size: int(f.ints[0]), Type: Enum(f.enum)}
}

func (f *functions) GetAttribLocation(p Program, name string) int {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return int(C.oogl_glGetAttribLocation(&f.f, C.GLuint(p.V), (*C.GLchar)(unsafe.Pointer(cname))))
}

func (f *functions) GetError() Enum {
	return Enum(C.oogl_glGetError(&f.f))
}

func (f *functions) GetInteger(pname Enum) int {
	C.oogl_glGetIntegerv(&f.f, C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *functions) GetProgrami(p Program, pname Enum) int {
	C.oogl_glGetProgramiv(&f.f, C.GLuint(p.V), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *functions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	C.oogl_glGetProgramInfoLog(&f.f, C.GLuint(p.V), C.GLsizei(len(buf)), nil, (*C.GLchar)(unsafe.Pointer(&buf[0])))
	return GoString(buf)
}

func (f *functions) GetShaderi(s Shader, pname Enum) int {
	C.oogl_glGetShaderiv(&f.f, C.GLuint(s.V), C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *functions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	C.oogl_glGetShaderInfoLog(&f.f, C.GLuint(s.V), C.GLsizei(len(buf)), nil, (*C.GLchar)(unsafe.Pointer(&buf[0])))
	return GoString(buf)
}

func (f *functions) GetString(pname Enum) string {
	str := C.oogl_glGetString(&f.f, C.GLenum(pname))
	if str == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(str)))
}

func (f *functions) GetUniformLocation(p Program, name string) Uniform {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return Uniform{int(C.oogl_glGetUniformLocation(&f.f, C.GLuint(p.V), (*C.GLchar)(unsafe.Pointer(cname))))}
}

func (f *functions) LinkProgram(p Program) {
	C.oogl_glLinkProgram(&f.f, C.GLuint(p.V))
}

func (f *functions) PixelStorei(pname Enum, param int) {
	C.oogl_glPixelStorei(&f.f, C.GLenum(pname), C.GLint(param))
}

func (f *functions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	C.oogl_glReadPixels(&f.f, C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height), C.GLenum(format), C.GLenum(ty), bytesPtr(data))
}

func (f *functions) ShaderSource(s Shader, src string) {
	csrc := C.CString(src)
	defer C.free(unsafe.Pointer(csrc))
	strlen := C.GLint(len(src))
	C.oogl_glShaderSource(&f.f, C.GLuint(s.V), 1, (**C.GLchar)(unsafe.Pointer(&csrc)), &strlen)
}

func (f *functions) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	C.oogl_glTexImage2D(&f.f, C.GLenum(target), C.GLint(level), C.GLint(internalFormat), C.GLsizei(width), C.GLsizei(height), C.GLenum(format), C.GLenum(ty), bytesPtr(data))
}

func (f *functions) TexParameteri(target, pname Enum, param int) {
	C.oogl_glTexParameteri(&f.f, C.GLenum(target), C.GLenum(pname), C.GLint(param))
}

func (f *functions) TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte) {
	C.oogl_glTexSubImage2D(&f.f, C.GLenum(target), C.GLint(level), C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height), C.GLenum(format), C.GLenum(ty), bytesPtr(data))
}

func (f *functions) Uniform1f(dst Uniform, v float32) {
	C.oogl_glUniform1f(&f.f, C.GLint(dst.V), C.GLfloat(v))
}

func (f *functions) Uniform1i(dst Uniform, v int) {
	C.oogl_glUniform1i(&f.f, C.GLint(dst.V), C.GLint(v))
}

func (f *functions) Uniform2f(dst Uniform, v0, v1 float32) {
	C.oogl_glUniform2f(&f.f, C.GLint(dst.V), C.GLfloat(v0), C.GLfloat(v1))
}

func (f *functions) Uniform2i(dst Uniform, v0, v1 int) {
	C.oogl_glUniform2i(&f.f, C.GLint(dst.V), C.GLint(v0), C.GLint(v1))
}

func (f *functions) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	C.oogl_glUniform4f(&f.f, C.GLint(dst.V), C.GLfloat(v0), C.GLfloat(v1), C.GLfloat(v2), C.GLfloat(v3))
}

func (f *functions) UseProgram(p Program) {
	C.oogl_glUseProgram(&f.f, C.GLuint(p.V))
}

func (f *functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	C.oogl_glVertexAttribPointer(&f.f, C.GLuint(dst), C.GLint(size), C.GLenum(ty), glBool(normalized), C.GLsizei(stride), C.uintptr_t(offset))
}

func (f *functions) Viewport(x, y, width, height int) {
	C.oogl_glViewport(&f.f, C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
}

func (f *functions) HasDebugLabels() bool {
	return f.f.glObjectLabel != nil && f.f.glGetObjectLabel != nil
}

func (f *functions) ObjectLabel(identifier Enum, name uint, label []byte) {
	C.oogl_glObjectLabel(&f.f, C.GLenum(identifier), C.GLuint(name), C.GLsizei(len(label)), (*C.GLchar)(bytesPtr(label)))
}

func (f *functions) GetObjectLabel(identifier Enum, name uint, bufSize int) []byte {
	buf := make([]byte, max(bufSize, 1))
	C.oogl_glGetObjectLabel(&f.f, C.GLenum(identifier), C.GLuint(name), C.GLsizei(len(buf)), &f.sizei, (*C.GLchar)(unsafe.Pointer(&buf[0])))
	return buf[:f.sizei]
}

func (f *functions) HasDebugOutput() bool {
	return f.f.glDebugMessageCallback != nil
}

func (f *functions) DebugMessageCallback(fn func(DebugMessage)) {
	old := f.debug
	f.debug = 0
	if fn != nil {
		f.debug = cgo.NewHandle(fn)
	}
	C.oogl_glDebugMessageCallback(&f.f, C.uintptr_t(f.debug))
	if old != 0 {
		old.Delete()
	}
}
