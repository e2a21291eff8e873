// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"

	"gioui.org/shader"

	"cardboard.dev/internal/gl"
)

// NewProgramFromSources compiles and links the GLSL ES 1.00 variants of
// a pair of shader sources. Vertex inputs are bound to the locations
// recorded in vert.Inputs, and sampler uniforms are assigned the texture
// units recorded in vert.Textures and frag.Textures.
func NewProgramFromSources(ctx *Context, vert, frag shader.Sources) (*Program, error) {
	vs, err := compileSource(ctx, VertexShader, vert)
	if err != nil {
		return nil, err
	}
	defer vs.Release()
	fs, err := compileSource(ctx, FragmentShader, frag)
	if err != nil {
		return nil, err
	}
	defer fs.Release()

	p := NewProgram(ctx)
	p.AttachShader(vs)
	p.AttachShader(fs)
	for _, inp := range vert.Inputs {
		p.BindAttribLocation(inp.Location, inp.Name)
	}
	ok := p.Link()
	log := p.InfoLog()
	p.DetachShader(vs)
	p.DetachShader(fs)
	if !ok {
		p.Release()
		return nil, fmt.Errorf("oogl: link %s, %s: %s", vert.Name, frag.Name, log)
	}
	if len(log) > 0 {
		ctx.logger().Warn("oogl: link warnings", "vert", vert.Name, "frag", frag.Name, "log", string(log))
	}

	textures := make([]shader.TextureBinding, 0, len(vert.Textures)+len(frag.Textures))
	textures = append(textures, vert.Textures...)
	textures = append(textures, frag.Textures...)
	for _, tex := range textures {
		if tex.Binding < 0 || tex.Binding >= ctx.caps.MaxTextureUnits {
			p.Release()
			return nil, fmt.Errorf("oogl: texture %q of %s, %s: binding %d out of range (max %d)", tex.Name, vert.Name, frag.Name, tex.Binding, ctx.caps.MaxTextureUnits)
		}
	}
	pb := p.Bind()
	defer pb.Release()
	for _, tex := range textures {
		if d, ok := p.uniforms[tex.Name]; ok {
			ctx.f.Uniform1i(gl.Uniform{V: d.Location}, tex.Binding)
		}
	}
	return p, nil
}

func compileSource(ctx *Context, ty ShaderType, src shader.Sources) (*Shader, error) {
	if src.GLSL100ES == "" {
		return nil, fmt.Errorf("oogl: %s %s shader has no GLSL ES 1.00 source", src.Name, ty)
	}
	s := NewShader(ctx, ty)
	s.SetSource([]byte(src.GLSL100ES))
	ok := s.Compile()
	log := s.InfoLog()
	if !ok {
		s.Release()
		return nil, fmt.Errorf("oogl: compile %s %s shader: %s", src.Name, ty, log)
	}
	if len(log) > 0 {
		ctx.logger().Warn("oogl: compile warnings", "shader", src.Name, "type", ty.String(), "log", string(log))
	}
	return s, nil
}
