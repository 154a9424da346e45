package polar

import (
	"fmt"
	"math"
	"strings"
)

// DefaultPrecision is the number of decimal places used when none is
// configured.
const DefaultPrecision = 3

// Mode selects the layout produced by [Format].
type Mode int

const (
	// Plain separates the coordinates by a tab and ends the line, for
	// piping into other programs.
	Plain Mode = iota
	// Nice prints each coordinate on its own labeled line.
	Nice
	// Interactive prints the coordinates as a parenthesized pair followed
	// by a blank line.
	Interactive
)

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Nice:
		return "nice"
	case Interactive:
		return "interactive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the mode named by s, which is one of the strings
// returned by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "plain":
		return Plain, nil
	case "nice":
		return Nice, nil
	case "interactive":
		return Interactive, nil
	default:
		return 0, fmt.Errorf("unknown output mode %q", s)
	}
}

// Preferences control how [Format] renders a point.
type Preferences struct {
	// Precision is the number of digits after the decimal point. It must
	// not be negative.
	Precision int
	Mode      Mode
}

// DefaultPreferences returns plain output with [DefaultPrecision] decimal
// places.
func DefaultPreferences() Preferences {
	return Preferences{Precision: DefaultPrecision, Mode: Plain}
}

// OrderOfMagnitude returns floor(log10(|v|)). Zero is treated as if it were
// 1 and has a magnitude of 0. Non-finite values also have a magnitude of 0.
func OrderOfMagnitude(v float64) int {
	if v == 0 {
		v = 1
	}
	a := math.Abs(v)
	m := math.Floor(math.Log10(a))
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return 0
	}
	// math.Log10 is off by an ulp at some powers of ten, such as 1000.
	if math.Pow(10, m+1) <= a {
		m++
	} else if math.Pow(10, m) > a {
		m--
	}
	return int(m)
}

// FieldWidth returns the width of the output field used for v. Two
// characters are reserved for the sign and the decimal point. A magnitude of
// exactly 0 counts as 1, so every v with 1 <= |v| < 10, as well as 0 itself,
// gets a width of precision+3.
func FieldWidth(v float64, precision int) int {
	m := OrderOfMagnitude(v)
	if m == 0 {
		m = 1
	}
	return m + precision + 2
}

// Format renders pt according to prefs. Each coordinate is printed in
// fixed-point notation with exactly prefs.Precision decimal places,
// right-justified in a field of [FieldWidth] characters. Numbers longer than
// their field are never truncated.
func Format(pt Point, prefs Preferences) string {
	x := formatCoord(pt.X, prefs.Precision)
	y := formatCoord(pt.Y, prefs.Precision)
	switch prefs.Mode {
	case Interactive:
		return "Cartesian Coordinates (x,y): (" + x + "," + y + ")\n\n"
	case Nice:
		return "X Coord = " + x + "\nY Coord = " + y + "\n"
	default:
		return x + "\t" + y + "\n"
	}
}

func formatCoord(v float64, precision int) string {
	// A negative width would left-justify.
	width := max(FieldWidth(v, precision), 0)
	return fmt.Sprintf("%*.*f", width, precision, v)
}
