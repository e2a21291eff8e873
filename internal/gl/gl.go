// SPDX-License-Identifier: Unlicense OR MIT

// Package gl exposes the OpenGL ES 2.0 entry points used by oogl
// through a function table loaded at run time.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ACTIVE_ATTRIBUTES                         = 0x8b89
	ACTIVE_ATTRIBUTE_MAX_LENGTH               = 0x8b8a
	ACTIVE_TEXTURE                            = 0x84e0
	ACTIVE_UNIFORMS                           = 0x8b86
	ACTIVE_UNIFORM_MAX_LENGTH                 = 0x8b87
	ALPHA                                     = 0x1906
	ARRAY_BUFFER                              = 0x8892
	BLEND                                     = 0xbe2
	BOOL                                      = 0x8b56
	BOOL_VEC2                                 = 0x8b57
	BOOL_VEC3                                 = 0x8b58
	BOOL_VEC4                                 = 0x8b59
	BYTE                                      = 0x1400
	CLAMP_TO_EDGE                             = 0x812f
	COLOR_ATTACHMENT0                         = 0x8ce0
	COLOR_BUFFER_BIT                          = 0x4000
	COMPILE_STATUS                            = 0x8b81
	CONSTANT_ALPHA                            = 0x8003
	CONSTANT_COLOR                            = 0x8001
	DEPTH_BUFFER_BIT                          = 0x100
	DST_ALPHA                                 = 0x304
	DST_COLOR                                 = 0x306
	DYNAMIC_DRAW                              = 0x88e8
	ELEMENT_ARRAY_BUFFER                      = 0x8893
	EXTENSIONS                                = 0x1f03
	FALSE                                     = 0
	FLOAT                                     = 0x1406
	FLOAT_MAT2                                = 0x8b5a
	FLOAT_MAT3                                = 0x8b5b
	FLOAT_MAT4                                = 0x8b5c
	FLOAT_VEC2                                = 0x8b50
	FLOAT_VEC3                                = 0x8b51
	FLOAT_VEC4                                = 0x8b52
	FRAGMENT_SHADER                           = 0x8b30
	FRAMEBUFFER                               = 0x8d40
	FRAMEBUFFER_COMPLETE                      = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS         = 0x8cd9
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8cd7
	FRAMEBUFFER_UNSUPPORTED                   = 0x8cdd
	FUNC_ADD                                  = 0x8006
	FUNC_REVERSE_SUBTRACT                     = 0x800b
	FUNC_SUBTRACT                             = 0x800a
	INFO_LOG_LENGTH                           = 0x8b84
	INT                                       = 0x1404
	INT_VEC2                                  = 0x8b53
	INT_VEC3                                  = 0x8b54
	INT_VEC4                                  = 0x8b55
	LINEAR                                    = 0x2601
	LINEAR_MIPMAP_LINEAR                      = 0x2703
	LINEAR_MIPMAP_NEAREST                     = 0x2701
	LINES                                     = 0x1
	LINE_LOOP                                 = 0x2
	LINE_STRIP                                = 0x3
	LINK_STATUS                               = 0x8b82
	LUMINANCE                                 = 0x1909
	LUMINANCE_ALPHA                           = 0x190a
	MAX_COMBINED_TEXTURE_IMAGE_UNITS          = 0x8b4d
	MAX_TEXTURE_SIZE                          = 0xd33
	MAX_VERTEX_ATTRIBS                        = 0x8869
	MIRRORED_REPEAT                           = 0x8370
	NEAREST                                   = 0x2600
	NEAREST_MIPMAP_LINEAR                     = 0x2702
	NEAREST_MIPMAP_NEAREST                    = 0x2700
	NO_ERROR                                  = 0x0
	ONE                                       = 0x1
	ONE_MINUS_CONSTANT_ALPHA                  = 0x8004
	ONE_MINUS_CONSTANT_COLOR                  = 0x8002
	ONE_MINUS_DST_ALPHA                       = 0x305
	ONE_MINUS_DST_COLOR                       = 0x307
	ONE_MINUS_SRC_ALPHA                       = 0x303
	ONE_MINUS_SRC_COLOR                       = 0x301
	PACK_ALIGNMENT                            = 0xd05
	POINTS                                    = 0x0
	RENDERER                                  = 0x1f01
	REPEAT                                    = 0x2901
	RGB                                       = 0x1907
	RGBA                                      = 0x1908
	SAMPLER_2D                                = 0x8b5e
	SAMPLER_CUBE                              = 0x8b60
	SHADING_LANGUAGE_VERSION                  = 0x8b8c
	SHORT                                     = 0x1402
	SRC_ALPHA                                 = 0x302
	SRC_ALPHA_SATURATE                        = 0x308
	SRC_COLOR                                 = 0x300
	STATIC_DRAW                               = 0x88e4
	STENCIL_BUFFER_BIT                        = 0x400
	STREAM_DRAW                               = 0x88e0
	TEXTURE                                   = 0x1702
	TEXTURE_2D                                = 0xde1
	TEXTURE_MAG_FILTER                        = 0x2800
	TEXTURE_MIN_FILTER                        = 0x2801
	TEXTURE_WRAP_S                            = 0x2802
	TEXTURE_WRAP_T                            = 0x2803
	TEXTURE0                                  = 0x84c0
	TRIANGLES                                 = 0x4
	TRIANGLE_FAN                              = 0x6
	TRIANGLE_STRIP                            = 0x5
	TRUE                                      = 1
	UNPACK_ALIGNMENT                          = 0xcf5
	UNSIGNED_BYTE                             = 0x1401
	UNSIGNED_SHORT                            = 0x1403
	VENDOR                                    = 0x1f00
	VERSION                                   = 0x1f02
	VERTEX_SHADER                             = 0x8b31
	ZERO                                      = 0x0

	// KHR_debug
	BUFFER_KHR                         = 0x82e0
	DEBUG_OUTPUT_KHR                   = 0x92e0
	DEBUG_OUTPUT_SYNCHRONOUS_KHR       = 0x8242
	DEBUG_SEVERITY_HIGH_KHR            = 0x9146
	DEBUG_SEVERITY_LOW_KHR             = 0x9148
	DEBUG_SEVERITY_MEDIUM_KHR          = 0x9147
	DEBUG_SEVERITY_NOTIFICATION_KHR    = 0x826b
	DEBUG_SOURCE_API_KHR               = 0x8246
	DEBUG_SOURCE_APPLICATION_KHR       = 0x824a
	DEBUG_SOURCE_OTHER_KHR             = 0x824b
	DEBUG_SOURCE_SHADER_COMPILER_KHR   = 0x8248
	DEBUG_SOURCE_THIRD_PARTY_KHR       = 0x8249
	DEBUG_SOURCE_WINDOW_SYSTEM_KHR     = 0x8247
	DEBUG_TYPE_DEPRECATED_BEHAVIOR_KHR = 0x824d
	DEBUG_TYPE_ERROR_KHR               = 0x824c
	DEBUG_TYPE_MARKER_KHR              = 0x8268
	DEBUG_TYPE_OTHER_KHR               = 0x8251
	DEBUG_TYPE_PERFORMANCE_KHR         = 0x8250
	DEBUG_TYPE_PORTABILITY_KHR         = 0x824f
	DEBUG_TYPE_POP_GROUP_KHR           = 0x826a
	DEBUG_TYPE_PUSH_GROUP_KHR          = 0x8269
	DEBUG_TYPE_UNDEFINED_BEHAVIOR_KHR  = 0x824e
	MAX_LABEL_LENGTH_KHR               = 0x82e8
	PROGRAM_KHR                        = 0x82e2
	SHADER_KHR                         = 0x82e1
)
