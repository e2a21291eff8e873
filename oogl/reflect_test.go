// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardboard.dev/f32"
	"cardboard.dev/f32color"
	"cardboard.dev/internal/gl"
)

func TestReflect(t *testing.T) {
	ctx, f := newTestContext(t)
	p := newLinkedProgram(t, ctx, f, testReflection)

	var block struct {
		Color   Uniform[f32color.RGBA] `glsl:"u_color"`
		Tex     Uniform[*TextureUnit]  `glsl:"u_tex"`
		Weights Uniform[float32]       `glsl:"u_weights"`
		Alpha   Uniform[float32]       `glsl:"u_alpha"`
		Pos     Attrib[f32.Point]      `glsl:"a_pos"`
		Skipped Uniform[float32]       `glsl:"-"`
		Count   int
	}
	Reflect(p, &block)

	assert.True(t, block.Color.Active())
	assert.Equal(t, 1, block.Color.Location())
	assert.True(t, block.Tex.Active())
	assert.True(t, block.Weights.Active())
	assert.False(t, block.Alpha.Active())
	assert.Equal(t, "u_alpha", block.Alpha.Name())
	assert.True(t, block.Pos.Active())
	assert.Equal(t, 0, block.Pos.Location())
	assert.Equal(t, "", block.Skipped.Name())
	assert.Zero(t, block.Count)
}

func TestReflectFieldName(t *testing.T) {
	ctx, f := newTestContext(t)
	p := newLinkedProgram(t, ctx, f, uniformsOnly(
		gl.ActiveInfo{Name: "Tint", Size: 1, Type: gl.FLOAT_VEC4},
		gl.ActiveInfo{Name: "u_offset", Size: 1, Type: gl.FLOAT_VEC3},
	))

	var block struct {
		Tint Uniform[f32color.RGBA]
	}
	Reflect(p, &block)
	assert.True(t, block.Tint.Active())
	assert.Equal(t, "Tint", block.Tint.Name())

	var unexported struct {
		tint Uniform[f32color.RGBA]
	}
	require.Panics(t, func() {
		Reflect(p, &unexported)
	})
	assert.False(t, unexported.tint.Active())

	var typed struct {
		Offset Uniform[f32color.RGBA] `glsl:"u_offset"`
	}
	require.PanicsWithError(t, `uniform "u_offset": value type f32color.RGBA cannot be bound to shader type vec3`, func() {
		Reflect(p, &typed)
	})

	require.Panics(t, func() {
		Reflect(p, typed)
	})
}
