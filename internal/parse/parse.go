// Package parse turns user-supplied text into typed polar coordinates.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrNotANumber is returned when a radius or angle isn't a number.
	ErrNotANumber = errors.New("not a number")
	// ErrMissingAngle is returned when an interactive line has no angle.
	ErrMissingAngle = errors.New("missing angle")
)

// radiansSuffixes are checked longest first so that Angle strips the whole
// unit.
var radiansSuffixes = []string{"radians", "radian", "rad", "r", "c"}

// HasRadiansSuffix reports whether s ends in one of r, c, rad, radian or
// radians, ignoring trailing whitespace. The match is case-sensitive.
func HasRadiansSuffix(s string) bool {
	_, ok := cutRadiansSuffix(s)
	return ok
}

func cutRadiansSuffix(s string) (string, bool) {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	for _, suffix := range radiansSuffixes {
		if rest, ok := strings.CutSuffix(s, suffix); ok {
			return rest, true
		}
	}
	return s, false
}

// Radius parses a radius.
func Radius(s string) (float64, error) {
	return number("radius", s)
}

// Angle parses an angle. A radians suffix (see [HasRadiansSuffix]) is
// stripped before parsing and reported through radians.
func Angle(s string) (value float64, radians bool, err error) {
	rest, radians := cutRadiansSuffix(s)
	value, err = number("angle", rest)
	if err != nil {
		return 0, false, err
	}
	return value, radians, nil
}

func number(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Out of range values are returned as ±Inf or ±0, which
			// the converter handles like any other value.
			return v, nil
		}
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, ErrNotANumber)
	}
	return v, nil
}

// Line splits a line of the form "(r,θ)" into its radius and angle. Leading
// and trailing whitespace and parentheses are removed from the line, and
// whitespace from each half.
func Line(s string) (radius, angle string, err error) {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')' || r == 0
	})
	radius, angle, ok := strings.Cut(s, ",")
	radius = strings.TrimSpace(radius)
	angle = strings.TrimSpace(angle)
	if !ok {
		// Allow a lone exit or quit.
		return radius, "", ErrMissingAngle
	}
	return radius, angle, nil
}

// IsExit reports whether s asks to leave interactive mode.
func IsExit(s string) bool {
	return s == "exit" || s == "quit"
}
