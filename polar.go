package polar

import (
	"fmt"
	"math"
)

// AngleUnit is the unit an angle is measured in.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// Polar is a point in a polar coordinate system. The angle is measured
// counterclockwise from the positive x axis.
type Polar struct {
	Radius float64
	Angle  float64
	Unit   AngleUnit
}

// Radians returns the angle in radians.
func (p Polar) Radians() float64 {
	if p.Unit == Radians {
		return p.Angle
	}
	return Deg2Rad(p.Angle)
}

// Point converts p to Cartesian coordinates. It is equivalent to calling
// [Convert] with p's fields.
func (p Polar) Point() Point {
	return Convert(p.Radius, p.Angle, p.Unit == Radians)
}

func (p Polar) String() string {
	if p.Unit == Radians {
		return fmt.Sprintf("(%g, %grad)", p.Radius, p.Angle)
	}
	return fmt.Sprintf("(%g, %g°)", p.Radius, p.Angle)
}

// Deg2Rad converts an angle from degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Convert converts the polar coordinates (radius, angle) to Cartesian
// coordinates. The angle is in degrees unless useRadians is set.
//
// No validation takes place. NaN and infinities propagate into the result
// following the usual floating-point rules.
func Convert(radius, angle float64, useRadians bool) Point {
	if !useRadians {
		angle = Deg2Rad(angle)
	}
	return Point{
		X: radius * math.Cos(angle),
		Y: radius * math.Sin(angle),
	}
}
