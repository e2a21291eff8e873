// SPDX-License-Identifier: Unlicense OR MIT

package gl

import "unsafe"

type (
	Buffer      struct{ V uint }
	Framebuffer struct{ V uint }
	Program     struct{ V uint }
	Shader      struct{ V uint }
	Texture     struct{ V uint }
	Uniform     struct{ V int }
)

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

// ActiveInfo describes an active uniform or attribute of a linked
// program, as reported by glGetActiveUniform and glGetActiveAttrib.
type ActiveInfo struct {
	Name string
	// Size is the array length, 1 for non-array variables.
	Size int
	Type Enum
}

// DebugMessage is a message delivered through the KHR_debug callback.
type DebugMessage struct {
	Source   Enum
	Type     Enum
	ID       uint
	Severity Enum
	Message  string
}

// Loader resolves the address of a named GL entry point, returning nil
// for unknown names.
type Loader func(name string) unsafe.Pointer
