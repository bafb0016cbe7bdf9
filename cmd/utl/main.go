// Package main implements the utl command-line tool: fixed-capacity vector
// demos, hex and bit dumps, hex conversion and micro-benchmarks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/utl"
)

var (
	// Global flags
	logLevel  string
	logFormat string

	logger = utl.NoopLogger()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "utl",
		Short: "Fixed-capacity vectors, hex/bit dumps and timing helpers",
		Long: `utl exercises the utl library from the command line.

Logging goes to stderr and is configured with --log-level and --log-format,
or the UTL_LOG_LEVEL and UTL_LOG_FORMAT environment variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogger,
	}

	cfg := utl.LogConfigFromEnv()
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.Level, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", string(cfg.Format), "Log format (text, json)")

	root.AddCommand(
		newDemoCmd(),
		newEraseCmd(),
		newHexdumpCmd(),
		newBitsCmd(),
		newHex2BinCmd(),
		newBin2HexCmd(),
		newBenchCmd(),
	)
	return root
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	l, err := utl.NewLoggerFromConfig(cmd.ErrOrStderr(), utl.LogConfig{
		Level:  logLevel,
		Format: utl.LogFormat(logFormat),
	})
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
