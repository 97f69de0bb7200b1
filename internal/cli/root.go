// Package cli provides the command-line interface of the docjson tool.
package cli

import (
	"context"
	"fmt"

	"github.com/example/docjson/internal/config"
	"github.com/example/docjson/internal/javadoc"
	"github.com/example/docjson/internal/logging"
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

type rootOptions struct {
	configPath string
	flags      config.Config

	// cfg is the merged configuration, set before any subcommand runs.
	cfg config.Config
}

// NewRootCommand builds the docjson command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "docjson",
		Short:        "Resolve documentation comments from per-class JSON files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (defaults to "+config.DefaultFileName+" if present)")
	rootCmd.PersistentFlags().StringVar(&opts.flags.Dir, "dir", "", "Directory containing <class>.json documentation files (falls back to $"+javadoc.EnvName(javadoc.JSONDirProperty)+")")
	rootCmd.PersistentFlags().StringVar(&opts.flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&opts.flags.LogFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		newFieldCommand(opts),
		newMethodCommand(opts),
		newParamCommand(opts),
		newCheckCommand(opts),
	)

	return rootCmd
}

// setup loads the configuration, applies flag overrides and attaches the
// logger to the command context.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	fileCfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	cfg := fileCfg.Merge(o.flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	o.cfg = cfg
	cmd.SetContext(logging.NewContext(cmd.Context(), logger))
	return nil
}

func (o *rootOptions) newReader(ctx context.Context) *javadoc.Reader {
	return javadoc.NewReader(javadoc.Options{
		Dir:    o.cfg.Dir,
		Logger: logging.FromContext(ctx),
	})
}
