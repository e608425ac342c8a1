// File: cmd/migrate/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"hotel-booking/internal/database"
	"hotel-booking/internal/logger"
)

type migrateConfig struct {
	DatabaseURL string `env:"DATABASE_URL, required"`
}

var (
	upFn     = database.RunMigrations
	downFn   = database.RollbackAll
	lookuper = envconfig.OsLookuper()
	exitFunc = os.Exit
)

func run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: migrate up|down")
	}
	var cfg migrateConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	switch args[0] {
	case "up":
		return upFn(cfg.DatabaseURL)
	case "down":
		return downFn(cfg.DatabaseURL)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func main() {
	_ = godotenv.Load()
	log := logger.Init(logger.Options{Pretty: true})
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("migration 失敗")
		exitFunc(1)
		return
	}
	log.Info().Str("command", os.Args[1]).Msg("migration 完成")
}
