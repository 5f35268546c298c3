package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var (
		file       string
		corpusName string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Train on a corpus and print model statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := buildModel(cmd.Context(), file, corpusName, activeCfg.Seed)
			if err != nil {
				return err
			}

			stats := model.Stats()
			fmt.Printf("vocabulary size:  %d\n", stats.VocabSize)
			fmt.Printf("contexts:         %d\n", stats.Contexts)
			fmt.Printf("total trigrams:   %d\n", stats.TotalTrigrams)
			fmt.Printf("starting tokens:  %d\n", stats.StartingTokens)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a plain-text corpus file")
	cmd.Flags().StringVar(&corpusName, "corpus", "", "Name of a stored corpus")

	return cmd
}
