package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Asantae/Cluify-sub000/internal/db"
	"github.com/Asantae/Cluify-sub000/internal/errors"
	"github.com/Asantae/Cluify-sub000/internal/repositories"
)

var sqliteURL string

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defaultURL := os.Getenv("CLUIFY_SQLITE_URL")
	if defaultURL == "" {
		defaultURL = "./cluify.sqlite"
	}
	rootCmd.PersistentFlags().StringVar(&sqliteURL, "sqlite-url", defaultURL, "SQLite URL")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(activateCaseCmd)
}

var rootCmd = &cobra.Command{
	Use:  "cluify-cli",
	Long: `Case authoring utilities for Cluify`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// openDatabase connects to the configured database with a quiet logger, the
// commands report their own outcomes.
func openDatabase(ctx context.Context) (*db.Database, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return db.NewDatabase(ctx, sqliteURL, logger)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply the bundled demo case content to the database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		dbs, err := openDatabase(ctx)
		if err != nil {
			return errors.Wrap(err, "open database")
		}
		defer func() {
			_ = dbs.Close()
		}()
		if err = dbs.Seed(ctx); err != nil {
			return errors.Wrap(err, "seed database")
		}
		cmd.Printf("seeded %s\n", sqliteURL)
		return nil
	},
}

var activateCaseCmd = &cobra.Command{
	Use:   "activate-case case-id",
	Short: "Make the given case the single active daily case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbs, err := openDatabase(ctx)
		if err != nil {
			return errors.Wrap(err, "open database")
		}
		defer func() {
			_ = dbs.Close()
		}()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if err = repositories.NewCaseRepository(dbs, logger).SetActive(ctx, args[0]); err != nil {
			return errors.Wrap(err, "activate case")
		}
		cmd.Printf("activated case %s\n", args[0])
		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
