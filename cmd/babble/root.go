package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"babble/pkg/trigram"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg *Config
	logger    *slog.Logger
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "babble",
		Short:        "Train a trigram language model on a corpus and generate text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			activeCfg = cfg
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLogLevel(cfg.LogLevel),
			}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "./config.json", "Path to the JSON config file")

	cmd.AddCommand(newGenCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newCorpusCmd())

	return cmd
}

// openStore opens the configured SQLite database and returns a ready
// CorpusStore. The caller is responsible for closing both.
func openStore() (*sql.DB, *CorpusStore, error) {
	if err := os.MkdirAll(activeCfg.DataDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := initDB(activeCfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to set up schema: %w", err)
	}

	store, err := NewCorpusStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create corpus store: %w", err)
	}
	store.SetLogger(logger)

	return db, store, nil
}

// buildModel constructs a seeded model and trains it on either a file on
// disk or a corpus from the store. Exactly one source must be given.
func buildModel(ctx context.Context, file, corpusName string, seed uint64) (*trigram.Model, error) {
	model := trigram.New(trigram.NewDefaultTokenizer(), trigram.WithSeed(seed))
	model.SetLogger(logger)

	switch {
	case file != "" && corpusName != "":
		return nil, fmt.Errorf("--file and --corpus are mutually exclusive")
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus file: %w", err)
		}
		defer func(f *os.File) {
			_ = f.Close()
		}(f)
		if err = model.Fit(f); err != nil {
			return nil, fmt.Errorf("training failed: %w", err)
		}
	case corpusName != "":
		db, store, err := openStore()
		if err != nil {
			return nil, err
		}
		defer func(db *sql.DB) {
			_ = db.Close()
		}(db)
		defer store.Close()

		text, err := store.Get(ctx, corpusName)
		if err != nil {
			return nil, err
		}
		if err = model.FitString(text); err != nil {
			return nil, fmt.Errorf("training failed: %w", err)
		}
	default:
		return nil, fmt.Errorf("either --file or --corpus must be provided")
	}

	return model, nil
}
