package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/portfolio/portfolio-api/internal/config"
	"github.com/portfolio/portfolio-api/internal/domain/certificate"
	"github.com/portfolio/portfolio-api/internal/domain/experience"
	"github.com/portfolio/portfolio-api/internal/pkg/database"
	"github.com/portfolio/portfolio-api/internal/pkg/logger"
)

var (
	// Global flags
	databaseURL   string
	mongoDatabase string
	verbose       bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "contentctl",
	Short: "Manage portfolio certificates and experiences",
	Long: `contentctl writes and inspects the content served by the portfolio API.

The API itself is read-only. Records are added with "contentctl seed" and
checked with "contentctl list". DATABASE_URL selects the store the same way
it does for the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()

		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Init(logger.Config{Level: level, Environment: "development", Service: "contentctl"}, os.Stderr)

		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
		if mongoDatabase == "" {
			mongoDatabase = cfg.MongoDatabase
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "store connection string (default from DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&mongoDatabase, "mongo-database", "", "database name for mongodb:// URLs (default from MONGODB_DATABASE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(seedCmd, listCmd, migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore connects to the configured store and applies SQL migrations.
func openStore(ctx context.Context) (*database.Store, error) {
	store, err := database.Open(ctx, databaseURL, database.Options{MongoDatabase: mongoDatabase})
	if err != nil {
		return nil, err
	}
	if err := database.MigrateStore(ctx, store); err != nil {
		store.Close(ctx)
		return nil, err
	}
	return store, nil
}

// repositories picks the repository implementations matching the store backend.
func repositories(store *database.Store) (certificate.Repository, experience.Repository) {
	if store.Mongo != nil {
		return certificate.NewMongoRepository(store.Mongo), experience.NewMongoRepository(store.Mongo)
	}
	return certificate.NewRepository(store.SQL), experience.NewRepository(store.SQL)
}
