package main

import (
	"github.com/spf13/cobra"

	"github.com/eterevsky/tokens"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <tokens-json> <data-file>",
		Short: "Tokenize a data file with a saved vocabulary and report stats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := tokens.PeekArtifactStats(args[0]); err != nil {
				return err
			}

			ts, _, _, err := tokens.Load(args[0])
			if err != nil {
				return err
			}

			source, err := tokens.OpenByteSource(args[1])
			if err != nil {
				return err
			}
			defer source.Close()

			tok, err := tokens.NewOptimalTokenizer(ts)
			if err != nil {
				return err
			}

			stats := tok.TokenizeAndCount(source.AllBytes(), nil)
			cmd.Printf("scanned %d bytes\n", stats.InputSize())
			cmd.Printf("ntokens in vocabulary: %d\n", ts.Ntokens())
			cmd.Printf("used tokens: %d, total tokens: %d\n", stats.UsedTokens(), stats.TotalTokens())
			cmd.Printf("bytes per token: %.4f, bits per byte: %.4f\n", stats.BytesPerToken(), stats.BitsPerByte())
			return nil
		},
	}
}
