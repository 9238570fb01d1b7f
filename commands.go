package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"moviehub/config"
	"moviehub/database"
	"moviehub/logging"
	"moviehub/repository"
	"moviehub/seed"
	"moviehub/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "moviehub",
		Short: "Movie and series catalog API",
		Long: `moviehub serves a movie, series and contact message catalog as a
JSON API backed by SQLite.

Settings come from the environment (optionally a .env file) and flags.
Running without a subcommand starts the server.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.serve,
	}

	rootCmd.PersistentFlags().Int("port", 0, "HTTP port (env PORT, default 5000)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (env DATABASE_PATH, default data/movies.db)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Args:  cobra.NoArgs,
		RunE:  a.serve,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Replace movies and seasons with the sample catalog",
		Long: `Seed ensures the schema exists, deletes every movie and season and
inserts the sample catalog. Contact messages are kept.`,
		Args: cobra.NoArgs,
		RunE: a.seed,
	})

	return rootCmd
}

// load reads .env, binds flags that were set and configures logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	config.LoadDotEnv()

	for key, flag := range map[string]string{config.KeyPort: "port", config.KeyDatabasePath: "db"} {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	return nil
}

func (a *app) serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, a.cfg)
}

func (a *app) seed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logging.Info().Str("path", a.cfg.DatabasePath).Msg("Initializing database")
	db, err := database.NewDB(a.cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if err := db.InitSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	res, err := seed.Run(ctx, repository.NewMovieRepository(db), repository.NewSeasonRepository(db))
	if err != nil {
		return err
	}

	logging.Info().
		Int("movies", res.Movies).
		Int("seasons", res.Seasons).
		Msg("Database seeding completed successfully")
	return nil
}
