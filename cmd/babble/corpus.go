package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage stored training corpora",
	}

	cmd.AddCommand(newCorpusAddCmd())
	cmd.AddCommand(newCorpusListCmd())
	cmd.AddCommand(newCorpusRemoveCmd())

	return cmd
}

func newCorpusAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <file>",
		Short: "Ingest a text file into the corpus store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open corpus file: %w", err)
			}
			defer func(f *os.File) {
				_ = f.Close()
			}(f)

			db, store, err := openStore()
			if err != nil {
				return err
			}
			defer func(db *sql.DB) {
				_ = db.Close()
			}(db)
			defer store.Close()

			return store.Add(cmd.Context(), name, f)
		},
	}
}

func newCorpusListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored corpora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, store, err := openStore()
			if err != nil {
				return err
			}
			defer func(db *sql.DB) {
				_ = db.Close()
			}(db)
			defer store.Close()

			corpora, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, info := range corpora {
				fmt.Printf("%-24s %10d bytes  %s\n", info.Name, info.Size, info.AddedAt)
			}
			return nil
		},
	}
}

func newCorpusRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a stored corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, store, err := openStore()
			if err != nil {
				return err
			}
			defer func(db *sql.DB) {
				_ = db.Close()
			}(db)
			defer store.Close()

			return store.Remove(cmd.Context(), args[0])
		},
	}
}
