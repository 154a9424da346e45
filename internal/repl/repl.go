// Package repl implements pol2cart's interactive mode.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"honnef.co/go/polar"
	"honnef.co/go/polar/internal/parse"
)

const Greeting = `
Polar to Cartesian coordinates converter interactive mode!
Type 'exit' or 'quit' at any time to exit interactive mode.
Angle default units are degrees. Post-fix angle with either r, c, rad, radian,
    or radians to set angle measurement to radians.

Remember:
    0°/0rad (zero degrees/radians) is on the right.
    Degrees/radians are measured counter-clockwise.

`

const Prompt = "Polar coordinates (r,θ): "

// Options are the settings that stay fixed for a whole session.
type Options struct {
	// Precision is the number of decimal places printed.
	Precision int
	// Unit is applied to every angle when ForceUnit is set. Otherwise the
	// angle's suffix decides.
	Unit      polar.AngleUnit
	ForceUnit bool
}

// Run reads one "(r,θ)" pair per line from r and writes the converted
// coordinates to w until it reads exit, quit or the end of input. Lines
// that can't be parsed are reported on w and skipped.
func Run(r io.Reader, w io.Writer, opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := io.WriteString(w, Greeting); err != nil {
		return err
	}

	prefs := polar.Preferences{Precision: opts.Precision, Mode: polar.Interactive}
	sc := bufio.NewScanner(r)
	for {
		if _, err := io.WriteString(w, Prompt); err != nil {
			return err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			_, err := io.WriteString(w, "\n")
			return err
		}

		pt, err := step(sc.Text(), opts)
		if errors.Is(err, errExit) {
			_, err := io.WriteString(w, "\n")
			return err
		}
		if err != nil {
			logger.Debug("rejected input", zap.String("line", sc.Text()), zap.Error(err))
			if _, err := fmt.Fprintf(w, "Error: %v\n\n", err); err != nil {
				return err
			}
			continue
		}

		logger.Debug("converted",
			zap.String("line", sc.Text()),
			zap.Float64("x", pt.X),
			zap.Float64("y", pt.Y))
		if _, err := io.WriteString(w, polar.Format(pt, prefs)); err != nil {
			return err
		}
	}
}

var errExit = errors.New("exit requested")

func step(line string, opts Options) (polar.Point, error) {
	rs, as, err := parse.Line(line)
	if parse.IsExit(rs) || parse.IsExit(as) {
		return polar.Point{}, errExit
	}
	if err != nil {
		return polar.Point{}, err
	}

	radius, err := parse.Radius(rs)
	if err != nil {
		return polar.Point{}, err
	}
	angle, radians, err := parse.Angle(as)
	if err != nil {
		return polar.Point{}, err
	}
	if opts.ForceUnit {
		radians = opts.Unit == polar.Radians
	}
	return polar.Convert(radius, angle, radians), nil
}
