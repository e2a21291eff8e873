// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"cardboard.dev/internal/gl"
)

// setDebugLabel attaches label to an object. It does nothing when the
// driver lacks object labels.
func (c *Context) setDebugLabel(identifier gl.Enum, name uint, label []byte) {
	if !c.caps.DebugLabels {
		return
	}
	// MaxLabelLength counts the terminator.
	if limit := c.caps.MaxLabelLength - 1; len(label) > limit {
		panic(fmt.Errorf("debug label of %d bytes exceeds the limit of %d bytes", len(label), limit))
	}
	if bytes.IndexByte(label, 0) >= 0 {
		panic(fmt.Errorf("debug label %q contains a NUL byte", label))
	}
	c.f.ObjectLabel(identifier, name, label)
}

// debugLabel returns the label of an object, or nil when the driver
// lacks object labels.
func (c *Context) debugLabel(identifier gl.Enum, name uint) []byte {
	if !c.caps.DebugLabels {
		return nil
	}
	return c.f.GetObjectLabel(identifier, name, c.caps.MaxLabelLength)
}

func (c *Context) enableDebugOutput() {
	c.f.Enable(gl.DEBUG_OUTPUT_KHR)
	// Report messages from the offending call stack.
	c.f.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS_KHR)
	c.f.DebugMessageCallback(c.onDebugMessage)
	c.debug = true
}

func (c *Context) onDebugMessage(m gl.DebugMessage) {
	var level slog.Level
	switch m.Severity {
	case gl.DEBUG_SEVERITY_HIGH_KHR:
		level = slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM_KHR:
		level = slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW_KHR:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	c.logger().Log(context.Background(), level, "oogl: driver message",
		"message", m.Message,
		"source", debugSourceName(m.Source),
		"type", debugTypeName(m.Type),
		"id", m.ID,
	)
}

func debugSourceName(e gl.Enum) string {
	switch e {
	case gl.DEBUG_SOURCE_API_KHR:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM_KHR:
		return "window system"
	case gl.DEBUG_SOURCE_SHADER_COMPILER_KHR:
		return "shader compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY_KHR:
		return "third party"
	case gl.DEBUG_SOURCE_APPLICATION_KHR:
		return "application"
	default:
		return "other"
	}
}

func debugTypeName(e gl.Enum) string {
	switch e {
	case gl.DEBUG_TYPE_ERROR_KHR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR_KHR:
		return "deprecated behavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR_KHR:
		return "undefined behavior"
	case gl.DEBUG_TYPE_PORTABILITY_KHR:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE_KHR:
		return "performance"
	case gl.DEBUG_TYPE_MARKER_KHR:
		return "marker"
	case gl.DEBUG_TYPE_PUSH_GROUP_KHR:
		return "push group"
	case gl.DEBUG_TYPE_POP_GROUP_KHR:
		return "pop group"
	default:
		return "other"
	}
}
