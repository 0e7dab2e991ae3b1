package main

import (
	"runtime/debug"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set with -ldflags "-X main.Version=..." on release builds.
var Version string

// cli carries state resolved by the root command for its subcommands.
type cli struct {
	configPath string
	verbose    bool
	logLevel   string
	format     string
	maxDepth   int

	cfg    config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "bitsctl",
		Short:         "Decode and evaluate BITS packet transmissions.",
		Long:          "bitsctl decodes hex-encoded BITS transmissions into packet trees and evaluates them.",
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.resolve(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "path to a bitsctl TOML config")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "increase logging verbosity")
	flags.StringVar(&c.logLevel, "log-level", "", "log level (trace|debug|info|warn|error|disabled)")
	flags.StringVarP(&c.format, "format", "f", "", "report format (text|json|yaml|toml|cbor)")
	flags.IntVar(&c.maxDepth, "max-depth", 0, "deepest operator nesting accepted (0 disables the check)")

	root.AddCommand(newDecodeCmd(c), newEncodeCmd(c), newServeCmd(c), newConfigCmd(c))
	return root
}

// resolve layers defaults, the config file and flags, then configures logging.
func (c *cli) resolve(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = c.format
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = c.maxDepth
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	c.cfg = cfg

	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	logCfg.Out = cmd.ErrOrStderr()
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logCfg.Level = lvl
	}
	logging.ApplyEnvOverrides(&logCfg)
	logging.Apply(logCfg)
	c.logger = observability.InitLogger("bitsctl")
	return nil
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(unknown version)"
}
