package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eterevsky/tokens"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <output> <input...>",
		Short: "Concatenate training documents with a document-boundary marker",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := tokens.MergeDocuments(args[1:])
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], merged, 0o644); err != nil {
				return fmt.Errorf("tokens: write %s: %w", args[0], err)
			}
			return nil
		},
	}
}
