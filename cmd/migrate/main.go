package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kuchnahi/backend/internal/config"
	"github.com/kuchnahi/backend/internal/logging"
	"github.com/kuchnahi/backend/internal/repository"
	"github.com/kuchnahi/backend/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dbURL string

	// resolveURL は --database-url を優先し、なければ環境変数の設定を使う
	resolveURL := func() (string, error) {
		if dbURL != "" {
			return dbURL, nil
		}
		cfg, err := config.Load()
		if err != nil {
			return "", err
		}
		return cfg.DatabaseURL, nil
	}

	upCmd := func(use, short string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				url, err := resolveURL()
				if err != nil {
					return err
				}
				return repository.Migrate(url)
			},
		}
	}

	root := upCmd("migrate", "Apply database migrations (default: up)")
	root.SilenceUsage = true
	root.PersistentFlags().StringVar(&dbURL, "database-url", "", "Postgres URL (defaults to DATABASE_URL)")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		logging.Setup(os.Getenv("LOG_LEVEL"))
	}

	root.AddCommand(
		upCmd("up", "Apply all pending migrations"),
		downCmd(resolveURL),
		freshCmd(resolveURL),
		seedCmd(resolveURL),
	)
	return root
}

func downCmd(resolveURL func() (string, error)) *cobra.Command {
	var steps int
	c := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := resolveURL()
			if err != nil {
				return err
			}
			return repository.Rollback(url, steps)
		},
	}
	c.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
	return c
}

func freshCmd(resolveURL func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "fresh",
		Short: "Drop all tables and re-apply every migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := resolveURL()
			if err != nil {
				return err
			}
			return repository.Fresh(url)
		},
	}
}

func seedCmd(resolveURL func() (string, error)) *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "seed",
		Short: "Replace catalog content with demo data and upsert the admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loadSeed(file)
			if err != nil {
				return err
			}
			url, err := resolveURL()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := repository.NewPool(ctx, url)
			if err != nil {
				return err
			}
			defer pool.Close()

			s := seed.New(
				func(ctx context.Context) error { return repository.ClearContent(ctx, pool) },
				repository.NewPgProjectRepository(pool),
				repository.NewPgServiceRepository(pool),
				repository.NewPgAdminRepository(pool),
			)
			_, err = s.Run(ctx, data)
			return err
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "YAML seed file (defaults to the built-in demo data)")
	return c
}

func loadSeed(file string) (*seed.Data, error) {
	if file == "" {
		return seed.Default()
	}
	return seed.LoadFile(file)
}
