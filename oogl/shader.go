// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"bytes"
	"fmt"

	"cardboard.dev/internal/gl"
)

// ShaderType is the pipeline stage of a shader.
type ShaderType uint8

const (
	VertexShader ShaderType = iota
	FragmentShader
)

func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(%d)", uint8(t))
	}
}

func (t ShaderType) glEnum() gl.Enum {
	switch t {
	case VertexShader:
		return gl.VERTEX_SHADER
	case FragmentShader:
		return gl.FRAGMENT_SHADER
	default:
		panic(fmt.Errorf("invalid shader type %d", t))
	}
}

// Shader is a shader object.
type Shader struct {
	ctx *Context
	sh  gl.Shader
	ty  ShaderType
}

func NewShader(ctx *Context, ty ShaderType) *Shader {
	return &Shader{
		ctx: ctx,
		sh:  ctx.f.CreateShader(ty.glEnum()),
		ty:  ty,
	}
}

func (s *Shader) Type() ShaderType {
	return s.ty
}

// SetSource replaces the GLSL source of the shader. It panics if src
// contains a NUL byte.
func (s *Shader) SetSource(src []byte) {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		panic(fmt.Errorf("%s shader source contains a NUL byte at offset %d", s.ty, i))
	}
	s.ctx.f.ShaderSource(s.sh, string(src))
}

// Compile compiles the source and reports whether it succeeded. The
// info log holds errors and warnings.
func (s *Shader) Compile() bool {
	f := s.ctx.f
	f.CompileShader(s.sh)
	return f.GetShaderi(s.sh, gl.COMPILE_STATUS) == gl.TRUE
}

// InfoLog returns the log of the last compilation.
func (s *Shader) InfoLog() []byte {
	return []byte(s.ctx.f.GetShaderInfoLog(s.sh))
}

func (s *Shader) SetDebugLabel(label []byte) {
	s.ctx.setDebugLabel(gl.SHADER_KHR, s.sh.V, label)
}

func (s *Shader) DebugLabel() []byte {
	return s.ctx.debugLabel(gl.SHADER_KHR, s.sh.V)
}

// Release deletes the shader object. Programs it is attached to keep it
// alive until they are deleted. Release is idempotent.
func (s *Shader) Release() {
	if !s.sh.Valid() {
		return
	}
	s.ctx.f.DeleteShader(s.sh)
	s.sh = gl.Shader{}
}
