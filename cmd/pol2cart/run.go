package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/polar"
	"honnef.co/go/polar/internal/parse"
	"honnef.co/go/polar/internal/repl"
)

var (
	errConflictingUnits  = errors.New("--degrees and --radians are mutually exclusive")
	errConflictingAngles = errors.New("--angle and --theta are mutually exclusive")
	errNegativePrecision = errors.New("precision must not be negative")
)

func (o *options) run(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if o.degrees && o.radians {
		return errConflictingUnits
	}
	if flags.Changed("angle") && flags.Changed("theta") {
		return errConflictingAngles
	}

	prefs, err := o.cfg.Preferences()
	if err != nil {
		return err
	}
	if flags.Changed("precision") {
		prefs.Precision = o.precision
	}
	if prefs.Precision < 0 {
		return fmt.Errorf("%w: %d", errNegativePrecision, prefs.Precision)
	}
	if o.nice {
		prefs.Mode = polar.Nice
	}

	unit, forced, err := o.cfg.ForcedUnit()
	if err != nil {
		return err
	}
	switch {
	case o.degrees:
		unit, forced = polar.Degrees, true
	case o.radians:
		unit, forced = polar.Radians, true
	}

	if o.interactive {
		if flags.Changed("radius") || flags.Changed("angle") || flags.Changed("theta") {
			o.logger.Warn("ignoring coordinates given on the command line in interactive mode")
		}
		return repl.Run(cmd.InOrStdin(), cmd.OutOrStdout(), repl.Options{
			Precision: prefs.Precision,
			Unit:      unit,
			ForceUnit: forced,
		}, o.logger)
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	rs := o.radius
	if !flags.Changed("radius") {
		if rs, err = prompt(in, out, "Please provide Radius (r): "); err != nil {
			return fmt.Errorf("no radius given: %w", err)
		}
	}
	radius, err := parse.Radius(rs)
	if err != nil {
		return err
	}

	as := o.angle
	if flags.Changed("theta") {
		as = o.theta
	} else if !flags.Changed("angle") {
		if as, err = prompt(in, out, "Please provide Angle (θ): "); err != nil {
			return fmt.Errorf("no angle given: %w", err)
		}
	}
	angle, radians, err := parse.Angle(as)
	if err != nil {
		return err
	}
	if forced {
		radians = unit == polar.Radians
	}

	pt := polar.Convert(radius, angle, radians)
	o.logger.Debug("converted",
		zap.Float64("radius", radius),
		zap.Float64("angle", angle),
		zap.Bool("radians", radians),
		zap.Float64("x", pt.X),
		zap.Float64("y", pt.Y))

	_, err = io.WriteString(out, polar.Format(pt, prefs))
	return err
}

// prompt writes msg to w and returns the next line read from r.
func prompt(r *bufio.Reader, w io.Writer, msg string) (string, error) {
	if _, err := io.WriteString(w, msg); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
