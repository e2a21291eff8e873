// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the table of OpenGL ES 2.0 entry points. Implementations
// are not safe for concurrent use; every call must happen on the thread
// owning the native context.
type Functions interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindTexture(target Enum, t Texture)
	BlendColor(red, green, blue, alpha float32)
	BlendEquation(mode Enum)
	BlendFunc(sfactor, dfactor Enum)
	// BufferData (re)allocates size bytes of storage. A nil data leaves
	// the contents undefined.
	BufferData(target Enum, size int, usage Enum, data []byte)
	BufferSubData(target Enum, offset int, src []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	DeleteBuffer(v Buffer)
	DeleteFramebuffer(v Framebuffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(v Texture)
	DetachShader(p Program, s Shader)
	Disable(cap Enum)
	DisableVertexAttribArray(a Attrib)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	GenerateMipmap(target Enum)
	GetActiveAttrib(p Program, index int) ActiveInfo
	GetActiveUniform(p Program, index int) ActiveInfo
	GetAttribLocation(p Program, name string) int
	GetError() Enum
	GetInteger(pname Enum) int
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetString(pname Enum) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	PixelStorei(pname Enum, param int)
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	ShaderSource(s Shader, src string)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	TexSubImage2D(target Enum, level int, x, y, width, height int, format, ty Enum, data []byte)
	Uniform1f(dst Uniform, v float32)
	Uniform1i(dst Uniform, v int)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform2i(dst Uniform, v0, v1 int)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)

	// HasDebugLabels reports whether the KHR_debug object label entry
	// points are available.
	HasDebugLabels() bool
	ObjectLabel(identifier Enum, name uint, label []byte)
	GetObjectLabel(identifier Enum, name uint, bufSize int) []byte
	// HasDebugOutput reports whether DebugMessageCallback is available.
	HasDebugOutput() bool
	// DebugMessageCallback routes driver messages to fn, or stops
	// routing them when fn is nil.
	DebugMessageCallback(fn func(DebugMessage))
}
