// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"cardboard.dev/internal/gl"
)

// UniformDescriptor describes an active uniform of a linked program.
type UniformDescriptor struct {
	Location int
	Type     ShaderDataType
	// Len is the array length, 1 for non-arrays.
	Len int
}

// AttribDescriptor describes an active attribute of a linked program.
type AttribDescriptor struct {
	Location int
	Type     ShaderDataType
	Len      int
}

// Program is a program object together with the reflection of its
// active uniforms and attributes.
type Program struct {
	ctx  *Context
	prog gl.Program
	// gen counts links. Uniform and attribute handles remember the
	// generation they were fetched at.
	gen      int
	linked   bool
	uniforms map[string]UniformDescriptor
	attribs  map[string]AttribDescriptor
}

// ProgramBinding is a scoped binding of a Program as the current
// program.
type ProgramBinding struct {
	scope
	p *Program
}

func NewProgram(ctx *Context) *Program {
	return &Program{
		ctx:  ctx,
		prog: ctx.f.CreateProgram(),
	}
}

func (p *Program) AttachShader(s *Shader) {
	p.ctx.f.AttachShader(p.prog, s.sh)
}

func (p *Program) DetachShader(s *Shader) {
	p.ctx.f.DetachShader(p.prog, s.sh)
}

// BindAttribLocation assigns location loc to the attribute name. It
// takes effect at the next Link.
func (p *Program) BindAttribLocation(loc int, name string) {
	if limit := p.ctx.caps.MaxVertexAttribs; loc < 0 || loc >= limit {
		panic(fmt.Errorf("attribute location %d out of range (max %d)", loc, limit))
	}
	p.ctx.f.BindAttribLocation(p.prog, gl.Attrib(loc), name)
}

// Link links the attached shaders and reports whether it succeeded. On
// success the descriptors are reloaded. Uniform and attribute handles
// fetched before Link are invalidated.
func (p *Program) Link() bool {
	f := p.ctx.f
	f.LinkProgram(p.prog)
	p.gen++
	p.uniforms, p.attribs = nil, nil
	p.linked = f.GetProgrami(p.prog, gl.LINK_STATUS) == gl.TRUE
	if p.linked {
		p.LoadDescriptors()
	}
	return p.linked
}

// Linked reports whether the last Link succeeded.
func (p *Program) Linked() bool {
	return p.linked
}

// InfoLog returns the log of the last link.
func (p *Program) InfoLog() []byte {
	return []byte(p.ctx.f.GetProgramInfoLog(p.prog))
}

// LoadDescriptors queries the active uniforms and attributes.
func (p *Program) LoadDescriptors() {
	p.LoadUniformDescriptors()
	p.LoadAttribDescriptors()
}

func (p *Program) LoadUniformDescriptors() {
	p.checkLinked()
	f := p.ctx.f
	n := f.GetProgrami(p.prog, gl.ACTIVE_UNIFORMS)
	p.uniforms = make(map[string]UniformDescriptor, n)
	for i := 0; i < n; i++ {
		info := f.GetActiveUniform(p.prog, i)
		name := activeName(info.Name)
		p.uniforms[name] = UniformDescriptor{
			Location: f.GetUniformLocation(p.prog, name).V,
			Type:     shaderDataTypeOf(info.Type),
			Len:      info.Size,
		}
	}
}

func (p *Program) LoadAttribDescriptors() {
	p.checkLinked()
	f := p.ctx.f
	n := f.GetProgrami(p.prog, gl.ACTIVE_ATTRIBUTES)
	p.attribs = make(map[string]AttribDescriptor, n)
	for i := 0; i < n; i++ {
		info := f.GetActiveAttrib(p.prog, i)
		name := activeName(info.Name)
		p.attribs[name] = AttribDescriptor{
			Location: f.GetAttribLocation(p.prog, name),
			Type:     shaderDataTypeOf(info.Type),
			Len:      info.Size,
		}
	}
}

// activeName strips the element suffix drivers report for arrays.
func activeName(name string) string {
	return strings.TrimSuffix(name, "[0]")
}

func (p *Program) checkLinked() {
	if !p.linked {
		panic(fmt.Errorf("program #%d is not linked", p.prog.V))
	}
}

// UniformDescriptors returns the active uniforms by name.
func (p *Program) UniformDescriptors() map[string]UniformDescriptor {
	return p.uniforms
}

// AttribDescriptors returns the active attributes by name.
func (p *Program) AttribDescriptors() map[string]AttribDescriptor {
	return p.attribs
}

// UniformNames returns the names of the active uniforms in sorted order.
func (p *Program) UniformNames() []string {
	names := maps.Keys(p.uniforms)
	slices.Sort(names)
	return names
}

// AttribNames returns the names of the active attributes in sorted
// order.
func (p *Program) AttribNames() []string {
	names := maps.Keys(p.attribs)
	slices.Sort(names)
	return names
}

func (p *Program) SetDebugLabel(label []byte) {
	p.ctx.setDebugLabel(gl.PROGRAM_KHR, p.prog.V, label)
}

func (p *Program) DebugLabel() []byte {
	return p.ctx.debugLabel(gl.PROGRAM_KHR, p.prog.V)
}

// Release deletes the program object. Release is idempotent.
func (p *Program) Release() {
	if !p.prog.Valid() {
		return
	}
	p.ctx.program.forget(p.prog.V)
	p.ctx.f.DeleteProgram(p.prog)
	p.prog = gl.Program{}
	p.linked = false
	p.uniforms, p.attribs = nil, nil
}

// Bind makes the program current. It panics if a binding of another
// program is still alive.
func (p *Program) Bind() *ProgramBinding {
	checkAlive("program", p.prog.Valid())
	pb := &ProgramBinding{p: p}
	pb.open(&p.ctx.program, p.prog.V)
	return pb
}

// Program returns the bound program.
func (pb *ProgramBinding) Program() *Program {
	return pb.p
}
