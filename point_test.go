package polar

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointNonFinite(t *testing.T) {
	if Pt(1, 2).IsInf() || Pt(1, 2).IsNaN() {
		t.Error("finite point reported as non-finite")
	}
	if !Pt(math.Inf(-1), 0).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(1.5, -2).String(); s != "(1.5, -2)" {
		t.Errorf("got %q", s)
	}
}
