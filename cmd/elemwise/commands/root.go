// Package commands implements the elemwise command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/elemwise/backend/cpu"
	"github.com/born-ml/elemwise/internal/config"
	"github.com/born-ml/elemwise/internal/logging"
)

const version = "v0.1.0"

// globalOptions holds the persistent flags and the state they resolve to.
type globalOptions struct {
	cfgFile  string
	logLevel string

	cfg *config.Config
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "elemwise",
		Short: "Broadcasting elementwise arithmetic on typed tensors",
		Long: `elemwise runs the CPU mul, add and sub kernels on tensors given on the
command line. Operands broadcast NumPy-style, mixed dtypes are promoted,
and the result is cast into the requested output dtype.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./elemwise.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")

	for _, op := range []string{"mul", "add", "sub"} {
		rootCmd.AddCommand(newBinaryCmd(op, opts))
	}
	rootCmd.AddCommand(newPathCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// init loads the configuration and sets up logging.
func (o *globalOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	o.cfg = cfg

	logging.Init(cfg.Logging.Level, cmd.ErrOrStderr())
	logging.Get().WithField("config", o.cfgFile).Debug("configuration loaded")
	return nil
}

func (o *globalOptions) backend() *cpu.Backend {
	return cpu.NewWithOptions(cpu.Options{LaneBytes: o.cfg.Kernel.LaneBytes})
}
