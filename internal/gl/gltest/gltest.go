// SPDX-License-Identifier: Unlicense OR MIT

// Package gltest provides a software stand-in for gl.Functions that
// records every call and emulates enough GL state for tests: object
// names, buffer and texture storage, framebuffer read back and
// program reflection.
package gltest

import (
	"fmt"
	"strings"

	"cardboard.dev/internal/gl"
)

// Call is a recorded invocation of a gl.Functions method.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Reflection is the set of active variables a program reports after
// linking.
type Reflection struct {
	Uniforms []gl.ActiveInfo
	Attribs  []gl.ActiveInfo
}

// Functions implements gl.Functions without a GPU.
type Functions struct {
	// Calls lists every call in order.
	Calls []Call
	// Strings holds the values returned by GetString.
	Strings map[gl.Enum]string
	// Integers holds the values returned by GetInteger.
	Integers map[gl.Enum]int
	// Labels and DebugOutput control the optional KHR_debug entry
	// points.
	Labels      bool
	DebugOutput bool
	// Reflection is reported by every program linked while it is set.
	Reflection Reflection
	// CompileFails and LinkFails make compilation and linking fail,
	// reporting InfoLog.
	CompileFails bool
	LinkFails    bool
	InfoLog      string

	next      uint
	buffers   map[uint][]byte
	bound     map[gl.Enum]gl.Buffer
	unit      int
	units     map[int]gl.Texture
	textures  map[uint]map[int]*level
	fbo       gl.Framebuffer
	attached  map[uint]attachment
	shaders   map[uint]*shader
	programs  map[uint]*program
	labels    map[labelKey][]byte
	enabled   map[gl.Enum]bool
	debugFunc func(gl.DebugMessage)
}

type level struct {
	width, height int
	format        gl.Enum
	data          []byte
}

type attachment struct {
	tex   uint
	level int
}

type shader struct {
	ty       gl.Enum
	source   string
	compiled bool
	log      string
}

type program struct {
	shaders  []uint
	bindings map[string]int
	linked   bool
	log      string
	uniforms []gl.ActiveInfo
	attribs  []gl.ActiveInfo
	attribAt map[string]int
}

type labelKey struct {
	identifier gl.Enum
	name       uint
}

// New returns a stub reporting an OpenGL ES 2.0 implementation with 16
// texture units and the KHR_debug extension.
func New() *Functions {
	return &Functions{
		Strings: map[gl.Enum]string{
			gl.VENDOR:                   "gltest",
			gl.RENDERER:                 "gltest software",
			gl.VERSION:                  "OpenGL ES 2.0 gltest",
			gl.SHADING_LANGUAGE_VERSION: "OpenGL ES GLSL ES 1.00",
			gl.EXTENSIONS:               "GL_KHR_debug GL_OES_texture_npot",
		},
		Integers: map[gl.Enum]int{
			gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS: 16,
			gl.MAX_TEXTURE_SIZE:                 4096,
			gl.MAX_VERTEX_ATTRIBS:               16,
			gl.MAX_LABEL_LENGTH_KHR:             256,
		},
		Labels:      true,
		DebugOutput: true,
		buffers:     make(map[uint][]byte),
		bound:       make(map[gl.Enum]gl.Buffer),
		units:       make(map[int]gl.Texture),
		textures:    make(map[uint]map[int]*level),
		attached:    make(map[uint]attachment),
		shaders:     make(map[uint]*shader),
		programs:    make(map[uint]*program),
		labels:      make(map[labelKey][]byte),
		enabled:     make(map[gl.Enum]bool),
	}
}

var _ gl.Functions = (*Functions)(nil)

func (f *Functions) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

// Count returns the number of recorded calls to the named method.
func (f *Functions) Count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CallsTo returns the recorded calls to the named method.
func (f *Functions) CallsTo(name string) []Call {
	var calls []Call
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Reset forgets the recorded calls but keeps the emulated state.
func (f *Functions) Reset() {
	f.Calls = nil
}

// BufferContents returns the storage of a buffer object.
func (f *Functions) BufferContents(b gl.Buffer) []byte {
	return f.buffers[b.V]
}

// TextureContents returns the pixels of one level of a texture.
func (f *Functions) TextureContents(t gl.Texture, lod int) []byte {
	if l := f.textures[t.V][lod]; l != nil {
		return l.data
	}
	return nil
}

// Enabled reports whether a capability is enabled.
func (f *Functions) Enabled(cap gl.Enum) bool {
	return f.enabled[cap]
}

// Emit delivers msg to the installed debug callback, if any.
func (f *Functions) Emit(msg gl.DebugMessage) {
	if f.debugFunc != nil {
		f.debugFunc(msg)
	}
}

func (f *Functions) newName() uint {
	f.next++
	return f.next
}

func components(format gl.Enum) int {
	switch format {
	case gl.ALPHA, gl.LUMINANCE:
		return 1
	case gl.LUMINANCE_ALPHA:
		return 2
	case gl.RGB:
		return 3
	default:
		return 4
	}
}

func (f *Functions) ActiveTexture(texture gl.Enum) {
	f.record("ActiveTexture", texture)
	f.unit = int(texture - gl.TEXTURE0)
}

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	f.record("AttachShader", p, s)
	if prog := f.programs[p.V]; prog != nil {
		prog.shaders = append(prog.shaders, s.V)
	}
}

func (f *Functions) BindAttribLocation(p gl.Program, a gl.Attrib, name string) {
	f.record("BindAttribLocation", p, a, name)
	if prog := f.programs[p.V]; prog != nil {
		prog.bindings[name] = int(a)
	}
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.record("BindBuffer", target, b)
	f.bound[target] = b
}

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.record("BindFramebuffer", target, fb)
	f.fbo = fb
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	f.record("BindTexture", target, t)
	f.units[f.unit] = t
}

func (f *Functions) BlendColor(red, green, blue, alpha float32) {
	f.record("BlendColor", red, green, blue, alpha)
}

func (f *Functions) BlendEquation(mode gl.Enum) {
	f.record("BlendEquation", mode)
}

func (f *Functions) BlendFunc(sfactor, dfactor gl.Enum) {
	f.record("BlendFunc", sfactor, dfactor)
}

func (f *Functions) BufferData(target gl.Enum, size int, usage gl.Enum, data []byte) {
	f.record("BufferData", target, size, usage, len(data))
	storage := make([]byte, size)
	copy(storage, data)
	f.buffers[f.bound[target].V] = storage
}

func (f *Functions) BufferSubData(target gl.Enum, offset int, src []byte) {
	f.record("BufferSubData", target, offset, len(src))
	storage := f.buffers[f.bound[target].V]
	if offset+len(src) > len(storage) {
		panic(fmt.Errorf("gltest: BufferSubData range [%d, %d) exceeds storage of %d bytes", offset, offset+len(src), len(storage)))
	}
	copy(storage[offset:], src)
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.record("CheckFramebufferStatus", target)
	if _, ok := f.attached[f.fbo.V]; !ok {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (f *Functions) Clear(mask gl.Enum) {
	f.record("Clear", mask)
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor", red, green, blue, alpha)
}

func (f *Functions) CompileShader(s gl.Shader) {
	f.record("CompileShader", s)
	if sh := f.shaders[s.V]; sh != nil {
		sh.compiled = !f.CompileFails
		sh.log = f.InfoLog
	}
}

func (f *Functions) CreateBuffer() gl.Buffer {
	b := gl.Buffer{V: f.newName()}
	f.record("CreateBuffer")
	return b
}

func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	fb := gl.Framebuffer{V: f.newName()}
	f.record("CreateFramebuffer")
	return fb
}

func (f *Functions) CreateProgram() gl.Program {
	p := gl.Program{V: f.newName()}
	f.record("CreateProgram")
	f.programs[p.V] = &program{bindings: make(map[string]int)}
	return p
}

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{V: f.newName()}
	f.record("CreateShader", ty)
	f.shaders[s.V] = &shader{ty: ty}
	return s
}

func (f *Functions) CreateTexture() gl.Texture {
	t := gl.Texture{V: f.newName()}
	f.record("CreateTexture")
	f.textures[t.V] = make(map[int]*level)
	return t
}

func (f *Functions) DeleteBuffer(v gl.Buffer) {
	f.record("DeleteBuffer", v)
	delete(f.buffers, v.V)
}

func (f *Functions) DeleteFramebuffer(v gl.Framebuffer) {
	f.record("DeleteFramebuffer", v)
	delete(f.attached, v.V)
}

func (f *Functions) DeleteProgram(p gl.Program) {
	f.record("DeleteProgram", p)
	delete(f.programs, p.V)
}

func (f *Functions) DeleteShader(s gl.Shader) {
	f.record("DeleteShader", s)
	delete(f.shaders, s.V)
}

func (f *Functions) DeleteTexture(v gl.Texture) {
	f.record("DeleteTexture", v)
	delete(f.textures, v.V)
}

func (f *Functions) DetachShader(p gl.Program, s gl.Shader) {
	f.record("DetachShader", p, s)
	if prog := f.programs[p.V]; prog != nil {
		for i, id := range prog.shaders {
			if id == s.V {
				prog.shaders = append(prog.shaders[:i], prog.shaders[i+1:]...)
				break
			}
		}
	}
}

func (f *Functions) Disable(cap gl.Enum) {
	f.record("Disable", cap)
	f.enabled[cap] = false
}

func (f *Functions) DisableVertexAttribArray(a gl.Attrib) {
	f.record("DisableVertexAttribArray", a)
}

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
}

func (f *Functions) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.record("DrawElements", mode, count, ty, offset)
}

func (f *Functions) Enable(cap gl.Enum) {
	f.record("Enable", cap)
	f.enabled[cap] = true
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) {
	f.record("EnableVertexAttribArray", a)
}

func (f *Functions) FramebufferTexture2D(target, attachmentPoint, texTarget gl.Enum, t gl.Texture, lod int) {
	f.record("FramebufferTexture2D", target, attachmentPoint, texTarget, t, lod)
	f.attached[f.fbo.V] = attachment{tex: t.V, level: lod}
}

func (f *Functions) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap", target)
}

func (f *Functions) GetActiveAttrib(p gl.Program, index int) gl.ActiveInfo {
	f.record("GetActiveAttrib", p, index)
	return f.programs[p.V].attribs[index]
}

func (f *Functions) GetActiveUniform(p gl.Program, index int) gl.ActiveInfo {
	f.record("GetActiveUniform", p, index)
	return f.programs[p.V].uniforms[index]
}

func (f *Functions) GetAttribLocation(p gl.Program, name string) int {
	f.record("GetAttribLocation", p, name)
	if loc, ok := f.programs[p.V].attribAt[name]; ok {
		return loc
	}
	return -1
}

func (f *Functions) GetError() gl.Enum {
	f.record("GetError")
	return gl.NO_ERROR
}

func (f *Functions) GetInteger(pname gl.Enum) int {
	f.record("GetInteger", pname)
	return f.Integers[pname]
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	f.record("GetProgrami", p, pname)
	prog := f.programs[p.V]
	switch pname {
	case gl.LINK_STATUS:
		if prog.linked {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if prog.log == "" {
			return 0
		}
		return len(prog.log) + 1
	case gl.ACTIVE_UNIFORMS:
		return len(prog.uniforms)
	case gl.ACTIVE_ATTRIBUTES:
		return len(prog.attribs)
	}
	return 0
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	f.record("GetProgramInfoLog", p)
	return f.programs[p.V].log
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	f.record("GetShaderi", s, pname)
	sh := f.shaders[s.V]
	switch pname {
	case gl.COMPILE_STATUS:
		if sh.compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if sh.log == "" {
			return 0
		}
		return len(sh.log) + 1
	}
	return 0
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	f.record("GetShaderInfoLog", s)
	return f.shaders[s.V].log
}

func (f *Functions) GetString(pname gl.Enum) string {
	f.record("GetString", pname)
	return f.Strings[pname]
}

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation", p, name)
	for i, u := range f.programs[p.V].uniforms {
		if u.Name == name || strings.TrimSuffix(u.Name, "[0]") == name {
			return gl.Uniform{V: i}
		}
	}
	return gl.Uniform{V: -1}
}

// LinkProgram links against the current Reflection. Attributes without
// an explicit binding get the lowest free location.
func (f *Functions) LinkProgram(p gl.Program) {
	f.record("LinkProgram", p)
	prog := f.programs[p.V]
	prog.log = f.InfoLog
	prog.linked = !f.LinkFails
	prog.uniforms, prog.attribs = nil, nil
	prog.attribAt = make(map[string]int)
	if !prog.linked {
		return
	}
	prog.uniforms = append(prog.uniforms, f.Reflection.Uniforms...)
	prog.attribs = append(prog.attribs, f.Reflection.Attribs...)
	used := make(map[int]bool)
	for _, a := range prog.attribs {
		if loc, ok := prog.bindings[a.Name]; ok {
			prog.attribAt[a.Name] = loc
			used[loc] = true
		}
	}
	loc := 0
	for _, a := range prog.attribs {
		if _, ok := prog.attribAt[a.Name]; ok {
			continue
		}
		for used[loc] {
			loc++
		}
		prog.attribAt[a.Name] = loc
		used[loc] = true
	}
}

func (f *Functions) PixelStorei(pname gl.Enum, param int) {
	f.record("PixelStorei", pname, param)
}

// ReadPixels reads RGBA pixels from the texture attached to the bound
// framebuffer.
func (f *Functions) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("ReadPixels", x, y, width, height, format, ty)
	a, ok := f.attached[f.fbo.V]
	if !ok {
		return
	}
	l := f.textures[a.tex][a.level]
	if l == nil || l.format != gl.RGBA || format != gl.RGBA {
		return
	}
	for row := 0; row < height; row++ {
		src := ((y+row)*l.width + x) * 4
		copy(data[row*width*4:(row+1)*width*4], l.data[src:src+width*4])
	}
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	f.record("ShaderSource", s, src)
	f.shaders[s.V].source = src
}

func (f *Functions) TexImage2D(target gl.Enum, lod int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexImage2D", target, lod, internalFormat, width, height, format, ty, len(data))
	l := &level{width: width, height: height, format: format, data: make([]byte, width*height*components(format))}
	copy(l.data, data)
	f.textures[f.units[f.unit].V][lod] = l
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}

func (f *Functions) TexSubImage2D(target gl.Enum, lod int, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexSubImage2D", target, lod, x, y, width, height, format, ty, len(data))
	l := f.textures[f.units[f.unit].V][lod]
	if l == nil {
		panic(fmt.Errorf("gltest: TexSubImage2D on unallocated level %d", lod))
	}
	c := components(l.format)
	for row := 0; row < height; row++ {
		dst := ((y+row)*l.width + x) * c
		copy(l.data[dst:dst+width*c], data[row*width*c:(row+1)*width*c])
	}
}

func (f *Functions) Uniform1f(dst gl.Uniform, v float32) {
	f.record("Uniform1f", dst, v)
}

func (f *Functions) Uniform1i(dst gl.Uniform, v int) {
	f.record("Uniform1i", dst, v)
}

func (f *Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	f.record("Uniform2f", dst, v0, v1)
}

func (f *Functions) Uniform2i(dst gl.Uniform, v0, v1 int) {
	f.record("Uniform2i", dst, v0, v1)
}

func (f *Functions) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", dst, v0, v1, v2, v3)
}

func (f *Functions) UseProgram(p gl.Program) {
	f.record("UseProgram", p)
}

func (f *Functions) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.record("Viewport", x, y, width, height)
}

func (f *Functions) HasDebugLabels() bool {
	return f.Labels
}

func (f *Functions) ObjectLabel(identifier gl.Enum, name uint, label []byte) {
	f.record("ObjectLabel", identifier, name, string(label))
	f.labels[labelKey{identifier, name}] = append([]byte(nil), label...)
}

// GetObjectLabel returns at most bufSize-1 bytes, leaving room for the
// terminator the driver would write.
func (f *Functions) GetObjectLabel(identifier gl.Enum, name uint, bufSize int) []byte {
	f.record("GetObjectLabel", identifier, name, bufSize)
	l := f.labels[labelKey{identifier, name}]
	if n := max(bufSize-1, 0); len(l) > n {
		l = l[:n]
	}
	return append([]byte(nil), l...)
}

func (f *Functions) HasDebugOutput() bool {
	return f.DebugOutput
}

func (f *Functions) DebugMessageCallback(fn func(gl.DebugMessage)) {
	f.record("DebugMessageCallback", fn != nil)
	f.debugFunc = fn
}
