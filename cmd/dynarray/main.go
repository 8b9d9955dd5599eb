package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/internal/config"
	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/internal/script"
)

var (
	configFile  string
	capacity    int
	maxCapacity int
	equality    string
	emptyMarker string
	logLevel    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dynarray",
		Short:        "run operation scripts against a dynamic array",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.IntVar(&capacity, "capacity", 4, "initial capacity")
	flags.IntVar(&maxCapacity, "max-capacity", 0, "capacity limit, 0 for none")
	flags.StringVar(&equality, "equality", config.EqualityValue, "element equality: value or identity")
	flags.StringVar(&emptyMarker, "empty-marker", "null", "text rendered for empty slots")
	flags.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "run a yaml script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			return execute(cmd, s)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the built-in growth and removal scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, script.Demo())
		},
	}

	rootCmd.AddCommand(runCmd, demoCmd)
	return rootCmd
}

// loadConfig reads the config file, if any, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("max-capacity") {
		cfg.MaxCapacity = maxCapacity
	}
	if flags.Changed("equality") {
		cfg.Equality = equality
	}
	if flags.Changed("empty-marker") {
		cfg.EmptyMarker = emptyMarker
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

func execute(cmd *cobra.Command, s *script.Script) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	results, err := script.NewRunner(cfg, logger).Run(s)
	printResults(cmd.OutOrStdout(), results)
	return err
}

func printResults(w io.Writer, results []script.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%-10s %s\n", r.Op, r.Output)
	}
}
