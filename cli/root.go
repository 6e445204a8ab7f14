// Package cli provides the command-line interface for corrmap.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/corrmap/config"
	"github.com/katalvlaran/corrmap/report"
)

// Version is set at build time.
var Version = "0.1.0"

// flags mirrors the command line; only flags the user set override the
// config file.
type flags struct {
	configPath string
	customers  int
	seed       int64
	out        string
	dpi        float64
	size       float64
	title      string
	csv        string
	logLevel   string
	logFile    string
	print      bool
}

// NewRootCommand builds the corrmap command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&flags{})
}

func newRootCommand(fl *flags) *cobra.Command {
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "corrmap",
		Short: "Correlation heatmap of synthetic customer-engagement metrics",
		Long: `corrmap generates a reproducible synthetic dataset of customer engagement
metrics, computes their pairwise Pearson correlations and writes an annotated
heatmap PNG.

Settings come from defaults, then an optional YAML file (--config), then flags.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := resolve(cmd, *fl)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			level, _ := config.ParseLogLevel(cfg.LogLevel)
			logger, cleanup, err := config.SetupLogger(cmd.ErrOrStderr(), cfg.LogFile, level)
			if err != nil {
				return err
			}
			defer func() { err = closeInto(err, cleanup) }()

			res, err := report.Run(cfg, logger)
			if err != nil {
				return err
			}
			if fl.print {
				fmt.Fprint(cmd.OutOrStdout(), res.Table.String())
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.configPath, "config", "c", "", "YAML config file")
	f.IntVarP(&fl.customers, "customers", "n", def.Customers, "number of synthetic customers")
	f.Int64Var(&fl.seed, "seed", def.Seed, "random seed")
	f.StringVarP(&fl.out, "out", "o", def.Output, "output PNG path")
	f.Float64Var(&fl.dpi, "dpi", def.DPI, "output resolution (pixels per inch)")
	f.Float64Var(&fl.size, "size", def.SizeInches, "figure side in inches")
	f.StringVar(&fl.title, "title", def.Title, "chart title")
	f.StringVar(&fl.csv, "csv", "", "also write the dataset as CSV to this path")
	f.StringVar(&fl.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	f.StringVar(&fl.logFile, "log-file", "", "append JSON logs to this file")
	f.BoolVar(&fl.print, "print", false, "print the correlation table to stdout")

	return cmd
}

// closeInto runs closeFn and joins its failure onto err, so a log file
// that fails to flush on close is not reported as success.
func closeInto(err error, closeFn func() error) error {
	if cerr := closeFn(); cerr != nil {
		return errors.Join(err, fmt.Errorf("close log file: %w", cerr))
	}

	return err
}

// resolve layers defaults, the config file and explicitly set flags.
func resolve(cmd *cobra.Command, fl flags) (config.Config, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		var err error
		if cfg, err = config.Load(fl.configPath); err != nil {
			return cfg, err
		}
	}

	set := cmd.Flags().Changed
	if set("customers") {
		cfg.Customers = fl.customers
	}
	if set("seed") {
		cfg.Seed = fl.seed
	}
	if set("out") {
		cfg.Output = fl.out
	}
	if set("dpi") {
		cfg.DPI = fl.dpi
	}
	if set("size") {
		cfg.SizeInches = fl.size
	}
	if set("title") {
		cfg.Title = fl.title
	}
	if set("csv") {
		cfg.CSV = fl.csv
	}
	if set("log-level") {
		cfg.LogLevel = fl.logLevel
	}
	if set("log-file") {
		cfg.LogFile = fl.logFile
	}

	return cfg, nil
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
