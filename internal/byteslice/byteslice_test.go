// SPDX-License-Identifier: Unlicense OR MIT

package byteslice

import (
	"encoding/binary"
	"testing"
)

func TestSlice(t *testing.T) {
	type vertex struct{ X, Y float32 }
	if got := Slice([]vertex(nil)); got != nil {
		t.Errorf("expected nil view of an empty slice, got %v", got)
	}
	u16 := []uint16{0x0102, 0x0304}
	b := Slice(u16)
	if len(b) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(b))
	}
	if got := binary.NativeEndian.Uint16(b[2:]); got != 0x0304 {
		t.Errorf("expected 0x0304, got %#x", got)
	}
	vs := make([]vertex, 3)
	if got := len(Slice(vs)); got != 24 {
		t.Errorf("expected 24 bytes, got %d", got)
	}
}
