// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"fmt"

	"cardboard.dev/internal/gl"
)

// ShaderDataType is the GLSL type of an active uniform or attribute.
type ShaderDataType uint8

const (
	TypeUnknown ShaderDataType = iota
	TypeFloat
	TypeVec2
	TypeVec3
	TypeVec4
	TypeInt
	TypeIVec2
	TypeIVec3
	TypeIVec4
	TypeBool
	TypeBVec2
	TypeBVec3
	TypeBVec4
	TypeMat2
	TypeMat3
	TypeMat4
	TypeSampler2D
	TypeSamplerCube
)

var shaderDataTypes = [...]struct {
	name string
	enum gl.Enum
}{
	TypeUnknown:     {"unknown", 0},
	TypeFloat:       {"float", gl.FLOAT},
	TypeVec2:        {"vec2", gl.FLOAT_VEC2},
	TypeVec3:        {"vec3", gl.FLOAT_VEC3},
	TypeVec4:        {"vec4", gl.FLOAT_VEC4},
	TypeInt:         {"int", gl.INT},
	TypeIVec2:       {"ivec2", gl.INT_VEC2},
	TypeIVec3:       {"ivec3", gl.INT_VEC3},
	TypeIVec4:       {"ivec4", gl.INT_VEC4},
	TypeBool:        {"bool", gl.BOOL},
	TypeBVec2:       {"bvec2", gl.BOOL_VEC2},
	TypeBVec3:       {"bvec3", gl.BOOL_VEC3},
	TypeBVec4:       {"bvec4", gl.BOOL_VEC4},
	TypeMat2:        {"mat2", gl.FLOAT_MAT2},
	TypeMat3:        {"mat3", gl.FLOAT_MAT3},
	TypeMat4:        {"mat4", gl.FLOAT_MAT4},
	TypeSampler2D:   {"sampler2D", gl.SAMPLER_2D},
	TypeSamplerCube: {"samplerCube", gl.SAMPLER_CUBE},
}

// String returns the GLSL name of the type.
func (t ShaderDataType) String() string {
	if int(t) < len(shaderDataTypes) {
		return shaderDataTypes[t].name
	}
	return fmt.Sprintf("ShaderDataType(%d)", uint8(t))
}

func shaderDataTypeOf(e gl.Enum) ShaderDataType {
	for i, t := range shaderDataTypes {
		if i != int(TypeUnknown) && t.enum == e {
			return ShaderDataType(i)
		}
	}
	return TypeUnknown
}
