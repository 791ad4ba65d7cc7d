// Command tokens trains and applies a compact byte-level tokenizer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel  string
	logFormat string
	numChunks int
	chunkSize int
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Train and apply a compact byte-level tokenizer",
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log output format (console, json)")
	cmd.PersistentFlags().IntVar(&numChunks, "chunks", 1024, "number of sampled chunks used during training")
	cmd.PersistentFlags().IntVar(&chunkSize, "chunk-size", 16384, "size in bytes of each sampled chunk")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newMergeCmd())
	return cmd
}

func newLogger() (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.Set(logLevel); err != nil {
		return nil, fmt.Errorf("tokens: invalid --log-level %q: %w", logLevel, err)
	}

	var cfg zap.Config
	if logFormat == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("tokens: build logger: %w", err)
	}
	return logger, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
