// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"cardboard.dev/internal/gl"
)

// Caps describes the driver of a Context.
type Caps struct {
	Vendor                 string
	Renderer               string
	Version                string
	ShadingLanguageVersion string
	// GLVersion is the parsed Version, zero if unparseable.
	GLVersion [2]int
	// Extensions lists the supported extensions in sorted order.
	Extensions []string

	// DebugLabels reports support for object labels (KHR_debug).
	DebugLabels bool
	// DebugOutput reports support for driver debug messages
	// (KHR_debug).
	DebugOutput bool
	// NPOTTextures reports full support for textures with sizes that
	// are not powers of two (OES_texture_npot).
	NPOTTextures bool

	MaxTextureUnits  int
	MaxTextureSize   int
	MaxVertexAttribs int
	// MaxLabelLength is zero when DebugLabels is false.
	MaxLabelLength int
}

// HasExtension reports whether the driver supports the named extension.
func (c Caps) HasExtension(name string) bool {
	_, found := slices.BinarySearch(c.Extensions, name)
	return found
}

func probe(f gl.Functions) Caps {
	c := Caps{
		Vendor:                 f.GetString(gl.VENDOR),
		Renderer:               f.GetString(gl.RENDERER),
		Version:                f.GetString(gl.VERSION),
		ShadingLanguageVersion: f.GetString(gl.SHADING_LANGUAGE_VERSION),
	}
	if ver, err := gl.ParseGLVersion(c.Version); err == nil {
		c.GLVersion = ver
	}
	exts := gl.ParseExtensions(f.GetString(gl.EXTENSIONS))
	c.Extensions = maps.Keys(exts)
	slices.Sort(c.Extensions)
	// Labels need KHR_debug. EXT_debug_label names objects with other
	// tokens and reports no label length limit.
	khrDebug := exts["GL_KHR_debug"]
	c.DebugLabels = khrDebug && f.HasDebugLabels()
	c.DebugOutput = khrDebug && f.HasDebugOutput()
	c.NPOTTextures = exts["GL_OES_texture_npot"]
	c.MaxTextureUnits = f.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	c.MaxTextureSize = f.GetInteger(gl.MAX_TEXTURE_SIZE)
	c.MaxVertexAttribs = f.GetInteger(gl.MAX_VERTEX_ATTRIBS)
	if c.DebugLabels {
		c.MaxLabelLength = f.GetInteger(gl.MAX_LABEL_LENGTH_KHR)
	}
	return c
}
