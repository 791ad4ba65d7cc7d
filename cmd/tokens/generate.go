package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eterevsky/tokens"
)

func newGenerateCmd() *cobra.Command {
	var dryRun bool
	var configPath string
	cmd := &cobra.Command{
		Use:   "generate <training-data> <ntokens> <output-json>",
		Short: "Train a tokenizer vocabulary from a training corpus",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ntokens, err := parseNtokens(args[1])
			if err != nil {
				return err
			}

			configs := tokens.Configurations(ntokens)
			if configPath != "" {
				sweep, err := tokens.LoadSweepConfig(configPath)
				if err != nil {
					return err
				}
				configs = sweep.Apply(configs)
				if len(configs) == 0 {
					return fmt.Errorf("tokens: sweep config %s matches no configuration", configPath)
				}
			}

			if dryRun {
				for _, cfg := range configs {
					cmd.Println(cfg.String())
				}
				return nil
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			source, err := tokens.OpenByteSource(args[0])
			if err != nil {
				return err
			}
			defer source.Close()

			provider := tokens.NewChunkProvider(source, numChunks, chunkSize)

			result, err := tokens.RunConfigs(context.Background(), logger, provider.Chunks(), ntokens, configs)
			if err != nil {
				return fmt.Errorf("tokens: training failed: %w", err)
			}

			logger.Info("training complete",
				zap.Int64("total_tokens", result.Stats.TotalTokens()),
				zap.String("config", result.Config.String()),
			)

			if err := tokens.Save(result, args[2]); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the configurations that would be tried, without training")
	cmd.Flags().StringVar(&configPath, "config", "", "tokens.yaml file narrowing the configuration sweep")
	return cmd
}

func parseNtokens(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 256 {
		return 0, fmt.Errorf("tokens: ntokens must be an integer in [2, 256], got %q", s)
	}
	return n, nil
}
