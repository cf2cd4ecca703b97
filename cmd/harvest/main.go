// Command harvest classifies every package template in a void-packages tree
// and writes the category suggestions artifact.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geektoshi/nebula-harvest/internal/cli"
	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/config"
)

var version = "dev"

const exitInterrupted = 130

// app carries per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "harvest",
		Short: "Suggest a category for every void-packages template",
		Long: `harvest walks vendor/void-packages/srcpkgs, scores each template against
the category rule table, applies curated overrides and writes
data/generated/category_suggestions.json.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runHarvest,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./harvest.yaml or $HOME/.config/nebula/harvest.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(a.lookupCmd())
	rootCmd.AddCommand(a.indexCmd())
	rootCmd.AddCommand(a.exportCmd())
	rootCmd.AddCommand(a.reportCmd())
	rootCmd.AddCommand(a.spotlightCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := interrupts.HandleInterrupts(context.Background())
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	os.Exit(exitCode(os.Stderr, err, interrupts.WasInterrupted()))
}

// exitCode reports err and maps the outcome to a process status: 130 after an
// interrupt, 1 on failure.
func exitCode(w io.Writer, err error, interrupted bool) int {
	if interrupted {
		return exitInterrupted
	}
	if err == nil {
		return 0
	}

	var userErr *common.UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(w, cli.FormatError(userErr.UserMessage))
		slog.Debug("Command failed", "error", err)
		return 1
	}
	common.LogError(err, "Command failed", nil)
	return 1
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("harvest")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "nebula"))
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := common.SetupLogger(cmd.ErrOrStderr(),
		a.v.GetString("logging.level"),
		a.v.GetString("logging.format")); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	slog.Debug("Loaded configuration",
		"config_file", a.v.ConfigFileUsed(),
		"source_dir", cfg.SourceDir,
		"overrides", cfg.OverridesPath,
		"output", cfg.OutputPath)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "harvest %s\n", version)
		},
	}
}
