package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/saborfome/backend/internal/infrastructure/config"
	"github.com/saborfome/backend/internal/infrastructure/logger"
	"github.com/saborfome/backend/internal/infrastructure/persistence"
)

func main() {
	var (
		seedFile string
		logLevel string
	)

	flag.StringVar(&seedFile, "seed", "", "Path to a catalog seed file (overrides config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if seedFile == "" {
		seedFile = cfg.Catalog.SeedFile
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	switch command {
	case "up":
		if err := db.Migrate(); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Migration complete")
	case "seed":
		if err := db.Migrate(); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		if seedFile == "" {
			log.Fatal("No seed file configured; pass -seed or set catalog.seed_file")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		repo := persistence.NewGormProductRepository(db.DB)
		n, err := persistence.SeedCatalogFromFile(ctx, repo, seedFile)
		if err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		log.Info("Catalog seeded", zap.Int("products", n), zap.String("file", seedFile))
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command>

Commands:
  up    Create or update the database schema
  seed  Run migrations, then load the catalog seed file

Flags:
  -seed <file>       Path to a catalog seed file (overrides config)
  -log-level <level> Log level (debug, info, warn, error)`)
}
