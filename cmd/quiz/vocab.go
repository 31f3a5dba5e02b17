package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironwater12/japanese-learning-app/internal/config"
	"github.com/ironwater12/japanese-learning-app/internal/infra/postgres"
	pgrepo "github.com/ironwater12/japanese-learning-app/internal/infra/postgres/repository"
	"github.com/ironwater12/japanese-learning-app/internal/repository"
	"github.com/ironwater12/japanese-learning-app/internal/service"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect or import the vocabulary tables",
}

var vocabCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the configured vocabulary and verify every table can produce questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "✅ vocabulary OK")
		return nil
	},
}

var vocabImportPath string

var vocabImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the JSON vocabulary into PostgreSQL, replacing what is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		path := vocabImportPath
		if path == "" {
			path = cfg.Vocabulary.Path
		}

		fileRepo, err := repository.NewVocabularyRepository(path)
		if err != nil {
			return err
		}
		vocab := fileRepo.Vocabulary()
		if err := service.ValidateVocabulary(vocab, cfg.Quiz.NumChoices); err != nil {
			return err
		}

		dsn, err := cfg.DB.DSN()
		if err != nil {
			return fmt.Errorf("DATABASE_URL: %w", err)
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return err
		}
		defer pool.Close()

		var copied int64
		err = postgres.NewTransactor(pool).WithinTx(ctx, func(ctx context.Context, db postgres.DBTX) error {
			var err error
			copied, err = pgrepo.NewVocabularyRepository(db).Replace(ctx, vocab)
			return err
		})
		if err != nil {
			return fmt.Errorf("import vocabulary: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ imported %d entries from %s\n", copied, path)
		return nil
	},
}

func init() {
	vocabImportCmd.Flags().StringVar(&vocabImportPath, "file", "", "vocabulary JSON file (defaults to vocabulary.path)")
	vocabCmd.AddCommand(vocabCheckCmd, vocabImportCmd)
}
