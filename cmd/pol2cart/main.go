// Command pol2cart converts polar coordinates to Cartesian coordinates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"honnef.co/go/polar/internal/config"
	"honnef.co/go/polar/internal/logging"
)

// options holds the parsed command line of one invocation.
type options struct {
	radius      string
	angle       string
	theta       string
	degrees     bool
	radians     bool
	precision   int
	nice        bool
	interactive bool

	configPath string
	envFile    string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pol2cart",
		Short: "Convert polar coordinates to Cartesian coordinates",
		Long: `pol2cart converts polar coordinates (radius, angle) to Cartesian
coordinates (x, y).

Degrees are assumed by default. An angle post-fixed with r, c, rad, radian or
radians is read as radians. --degrees and --radians override the post-fix.
A missing radius or angle is prompted for.

By default x and y are printed separated by a tab, ready to be redirected.
--nice prints each coordinate on its own line. --interactive starts a session
that reads one (r,θ) pair per line until 'exit' or 'quit'.

Settings are read from the config file (precision, mode, unit, logging) and
from POL2CART_PRECISION, POL2CART_MODE, POL2CART_UNIT, POL2CART_LOG_LEVEL and
POL2CART_LOG_FORMAT, which may also be set in a .env file.

Examples:
  pol2cart -r 5 -a 45
  pol2cart --rho 10 --theta 1.5708rad --nice
  pol2cart -p 5 -i`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.radius, "radius", "r", "", "radius of the point (alias --rho)")
	f.StringVarP(&opts.angle, "angle", "a", "", "angle of the point, optionally post-fixed with a radians unit (alias --azimuth)")
	f.StringVarP(&opts.theta, "theta", "t", "", "same as --angle (alias --phi)")
	f.BoolVarP(&opts.degrees, "degrees", "d", false, "force angle units to be degrees (alias --deg)")
	f.BoolVarP(&opts.radians, "radians", "c", false, "force angle units to be radians (alias --rad)")
	f.IntVarP(&opts.precision, "precision", "p", config.DefaultConfig().Precision, "decimal places of precision")
	f.BoolVarP(&opts.nice, "nice", "n", false, "print each coordinate on its own line")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "start an interactive session")
	f.StringVar(&opts.configPath, "config", config.DefaultPath(), "config file")
	f.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with POL2CART_* variables")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.SetGlobalNormalizationFunc(normalizeAliases)

	return cmd
}

// normalizeAliases maps the alternative long option names to their flags.
func normalizeAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "rho":
		name = "radius"
	case "azimuth":
		name = "angle"
	case "phi":
		name = "theta"
	case "deg":
		name = "degrees"
	case "rad":
		name = "radians"
	}
	return pflag.NormalizedName(name)
}

func (o *options) setup(cmd *cobra.Command) error {
	if o.envFile != "" {
		if _, err := config.LoadEnvFile(o.envFile); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("config") {
		if _, err := os.Stat(o.configPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("config file %s does not exist", o.configPath)
			}
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger
	logger.Debug("loaded configuration",
		zap.String("path", o.configPath),
		zap.Int("precision", cfg.Precision),
		zap.String("mode", cfg.Mode),
		zap.String("unit", cfg.Unit))
	return nil
}
