// Package polar converts polar coordinates to Cartesian coordinates and
// formats the results for display.
//
// # Conversion
//
// [Convert] maps a radius and an angle to a [Point]. Angles are in degrees
// unless the caller asks for radians; the package never tries to guess the
// unit. An angle of 0 lies on the positive x axis and angles grow
// counterclockwise. [Polar] bundles the three inputs into a value.
//
// # Formatting
//
// [Format] renders a point with a fixed number of decimal places in one of
// three layouts (see [Mode]). The width of each output field is derived from
// the value's order of magnitude, see [OrderOfMagnitude] and [FieldWidth], so
// that output stays aligned across values of different sizes.
//
// The command pol2cart in cmd/pol2cart is a command-line front end for this
// package.
package polar
