package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PacifiK2460/python-plotter/pkg/engine"
	"github.com/PacifiK2460/python-plotter/pkg/output"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

func main() {
	cmd := newRootCmd(os.Stdout, newLogger)
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, engine.Describe(err))
		os.Exit(1)
	}
}

// newLogger builds a development logger on stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

type options struct {
	configPath string
	flags      engine.Config
}

func newRootCmd(stdout io.Writer, logger func(verbose bool) (*zap.Logger, error)) *cobra.Command {
	opts := options{flags: engine.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "plotter [EXPRESSION [MIN [MAX]]]",
		Short: "Plot a single-variable function over an integer range",
		Long: `Evaluates EXPRESSION at every integer x from floor(MIN) to floor(MAX) and
writes the samples as a table, as JSON, or as a line chart.

Expressions use integers, the variable x, parentheses and the operators
+ - * / ^ (power, also **) and ⊕ (xor). Division always yields a float.`,
		Example: `  plotter 'x^2' 0 10
  plotter -e '1/(x+1)' --min 0 --max 20 -f png -o plot.png
  plotter --config plot.yaml --max 50`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags(), args)
			if err != nil {
				return err
			}
			log, err := logger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return run(cfg, stdout, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML file with default settings")
	f.StringVarP(&opts.flags.Expression, "expr", "e", "", "function of the plotting variable, e.g. x^2")
	f.StringVar(&opts.flags.Min, "min", "", "lower limit (floored to an integer)")
	f.StringVar(&opts.flags.Max, "max", "", "upper limit (floored to an integer)")
	f.StringVar(&opts.flags.Symbol, "symbol", opts.flags.Symbol, "plotting variable")
	f.Int64Var(&opts.flags.MaxPoints, "max-points", opts.flags.MaxPoints, "largest number of samples allowed")
	f.StringVarP(&opts.flags.Format, "format", "f", opts.flags.Format, "output format ("+strings.Join(output.Names(), ", ")+")")
	f.StringVarP(&opts.flags.Output, "out", "o", "", "output file (default stdout, or plot.<format> for images)")
	f.Float64Var(&opts.flags.Width, "width", opts.flags.Width, "image width in inches")
	f.Float64Var(&opts.flags.Height, "height", opts.flags.Height, "image height in inches")
	f.BoolVarP(&opts.flags.Verbose, "verbose", "v", false, "log every sample")
	return cmd
}

// resolve layers the settings: defaults, then the config file, then flags
// given on the command line, then positional arguments.
func (o *options) resolve(fs *pflag.FlagSet, args []string) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if o.configPath != "" {
		if err := engine.LoadConfig(o.configPath, &cfg); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "expr":
			cfg.Expression = o.flags.Expression
		case "min":
			cfg.Min = o.flags.Min
		case "max":
			cfg.Max = o.flags.Max
		case "symbol":
			cfg.Symbol = o.flags.Symbol
		case "max-points":
			cfg.MaxPoints = o.flags.MaxPoints
		case "format":
			cfg.Format = o.flags.Format
		case "out":
			cfg.Output = o.flags.Output
		case "width":
			cfg.Width = o.flags.Width
		case "height":
			cfg.Height = o.flags.Height
		case "verbose":
			cfg.Verbose = o.flags.Verbose
		}
	})
	positional := []*string{&cfg.Expression, &cfg.Min, &cfg.Max}
	for i, arg := range args {
		*positional[i] = arg
	}
	return cfg, nil
}

func run(cfg engine.Config, stdout io.Writer, log *zap.Logger) error {
	w, err := output.Get(cfg.Format)
	if err != nil {
		return err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Newf("image size must be positive, got %gx%g", cfg.Width, cfg.Height)
	}
	e, err := engine.New(cfg, log)
	if err != nil {
		return err
	}
	report, err := e.Run()
	if err != nil {
		return err
	}

	opts := output.Options{
		Width:  vg.Length(cfg.Width) * vg.Inch,
		Height: vg.Length(cfg.Height) * vg.Inch,
	}
	path := outputPath(cfg.Output, w)
	if path == "" {
		return w.Write(stdout, report, opts)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.Write(f, report, opts); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("wrote plot", zap.String("path", path), zap.Int("points", len(report.Points)))
	return nil
}

// outputPath returns the file to write to, or "" for stdout. Images are
// never written to stdout unless asked for with "-".
func outputPath(out string, w output.Writer) string {
	switch {
	case out == "-":
		return ""
	case out != "":
		return out
	case w.Binary():
		return fmt.Sprintf("plot.%s", w.Name())
	default:
		return ""
	}
}
