// Package commands wires the oocgraph CLI: cobra subcommands over the
// generation (cm) and edge-swap (tfp) engines, with viper-backed
// configuration and zap logging. No core package imports this package,
// cobra, viper or yaml (spec §6).
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "oocgraph",
	Short:   "Out-of-core random graph generation and edge-swap randomization",
	Version: version,
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.oocgraph.yaml)")
	rootCmd.PersistentFlags().Int("memory-budget", 0, "byte budget for every external sorter (default: package default)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("memory_budget", rootCmd.PersistentFlags().Lookup("memory-budget"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(generateCmd, swapCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".oocgraph")
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("OOCGRAPH")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// newLogger builds a zap logger at the configured level, writing to stderr
// so stdout stays free for piped wire-format output. Every invocation gets
// a random run id so concurrent runs' interleaved log lines can be
// correlated.
func newLogger() (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(viper.GetString("log_level")); err != nil {
		return nil, fmt.Errorf("oocgraph: invalid log-level %q: %w", viper.GetString("log_level"), err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run_id", uuid.NewString())), nil
}

func memoryBudget() int {
	return viper.GetInt("memory_budget")
}

// explicitFlags returns the name=value pairs of every flag the caller set
// on the command line, for logging a reproducible record of the invocation.
func explicitFlags(cmd *cobra.Command) []string {
	var set []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			set = append(set, f.Name+"="+f.Value.String())
		}
	})
	return set
}

func abs(path string) string {
	a, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return a
}
