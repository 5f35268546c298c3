package main

import (
	"fmt"

	"babble/pkg/trigram"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var (
		file       string
		corpusName string
		maxLength  int
		seed       uint64
		count      int
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Train on a corpus and print generated text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = activeCfg.Seed
			}
			if !cmd.Flags().Changed("max-length") {
				maxLength = activeCfg.MaxLength
			}

			model, err := buildModel(cmd.Context(), file, corpusName, seed)
			if err != nil {
				return err
			}

			for i := 0; i < count; i++ {
				fmt.Println(model.Generate(trigram.WithMaxLength(maxLength)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a plain-text corpus file")
	cmd.Flags().StringVar(&corpusName, "corpus", "", "Name of a stored corpus")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum number of generated words (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the random source (default from config)")
	cmd.Flags().IntVar(&count, "count", 1, "Number of sequences to generate")

	return cmd
}
