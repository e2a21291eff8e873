// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	if got := p.Add(Pt(2, -3)); got != Pt(3, -1) {
		t.Errorf("Add: have %v, want (3,-1)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(0, 1) {
		t.Errorf("Sub: have %v, want (0,1)", got)
	}
	if got := p.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul: have %v, want (2,4)", got)
	}
	if got := Pt(0, 0).Lerp(Pt(4, 8), 0.25); got != Pt(1, 2) {
		t.Errorf("Lerp: have %v, want (1,2)", got)
	}
}

func TestPointString(t *testing.T) {
	if got, want := Pt(1.5, -2).String(), "(1.5,-2)"; got != want {
		t.Errorf("have %q, want %q", got, want)
	}
}
