package polar

import (
	"math"
	"strings"
	"testing"
)

func TestOrderOfMagnitude(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{1, 0},
		{-1, 0},
		{9.99, 0},
		{10, 1},
		{-99, 1},
		{100, 2},
		{1000, 3},
		{999.5, 2},
		{0.5, -1},
		{-0.25, -1},
		{0.01, -2},
		{1e-5, -5},
		{6.02e23, 23},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := OrderOfMagnitude(tt.v); got != tt.want {
			t.Errorf("OrderOfMagnitude(%g) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestFieldWidth(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      int
	}{
		// A magnitude of 0 is floored to 1.
		{0, 3, 6},
		{5, 3, 6},
		{-9.5, 3, 6},
		{10, 3, 6},
		{12.5, 3, 6},
		{123.456, 3, 7},
		// Negative magnitudes are used as-is.
		{0.5, 3, 4},
		{0.001, 3, 2},
		{5, 0, 3},
		{5, 6, 9},
	}
	for _, tt := range tests {
		if got := FieldWidth(tt.v, tt.precision); got != tt.want {
			t.Errorf("FieldWidth(%g, %d) = %d, want %d", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestFormatModes(t *testing.T) {
	pt := Pt(5, 0)
	tests := []struct {
		mode Mode
		want string
	}{
		{Plain, " 5.000\t 0.000\n"},
		{Nice, "X Coord =  5.000\nY Coord =  0.000\n"},
		{Interactive, "Cartesian Coordinates (x,y): ( 5.000, 0.000)\n\n"},
	}
	for _, tt := range tests {
		got := Format(pt, Preferences{Precision: 3, Mode: tt.mode})
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestFormatPlain(t *testing.T) {
	tests := []struct {
		pt        Point
		precision int
		want      string
	}{
		{Pt(1, 1), 3, " 1.000\t 1.000\n"},
		{Pt(-5, 12.5), 3, "-5.000\t12.500\n"},
		{Pt(123.456, -0.25), 3, "123.456\t-0.250\n"},
		{Pt(5, 0), 0, "  5\t  0\n"},
		{Pt(1234.5, 2), 1, "1234.5\t 2.0\n"},
		{Pt(1e-20, -1e-20), 3, "0.000\t-0.000\n"},
		{Pt(math.NaN(), math.Inf(-1)), 3, "   NaN\t  -Inf\n"},
		{Convert(1, 45, false), 3, "0.707\t0.707\n"},
		{Convert(1, 90, false), 3, "0.000\t 1.000\n"},
	}
	for _, tt := range tests {
		got := Format(tt.pt, Preferences{Precision: tt.precision, Mode: Plain})
		if got != tt.want {
			t.Errorf("Format(%v, %d) = %q, want %q", tt.pt, tt.precision, got, tt.want)
		}
	}
}

func TestFormatDecimalDigits(t *testing.T) {
	for _, precision := range []int{1, 2, 3, 5, 8} {
		out := Format(Pt(1, 1), Preferences{Precision: precision, Mode: Plain})
		if !strings.HasSuffix(out, "\n") {
			t.Fatalf("output %q isn't newline-terminated", out)
		}
		fields := strings.Split(strings.TrimSuffix(out, "\n"), "\t")
		if len(fields) != 2 {
			t.Fatalf("got %d tab-separated fields in %q, want 2", len(fields), out)
		}
		for _, f := range fields {
			_, frac, ok := strings.Cut(strings.TrimSpace(f), ".")
			if !ok || len(frac) != precision {
				t.Errorf("precision %d: field %q has wrong number of decimals", precision, f)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Plain, Nice, Interactive} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if m, err := ParseMode("NICE"); err != nil || m != Nice {
		t.Errorf("got (%v, %v), want Nice", m, err)
	}
	if _, err := ParseMode("fancy"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
