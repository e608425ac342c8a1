// File: cmd/seed-admin/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"hotel-booking/internal/database"
	"hotel-booking/internal/logger"
	"hotel-booking/internal/model"
	"hotel-booking/internal/service"
)

type seedConfig struct {
	DatabaseURL string `env:"DATABASE_URL, required"`
	BcryptCost  int    `env:"BCRYPT_COST, default=10"`
	Email       string `env:"ADMIN_EMAIL"`
	Password    string `env:"ADMIN_PASSWORD"`
}

type adminCreator interface {
	CreateAdmin(ctx context.Context, email, password string) (*model.User, error)
}

var (
	lookuper        = envconfig.OsLookuper()
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	newCreator      = func(db database.DB, cost int) adminCreator { return service.NewCredentials(db, cost) }
	exitFunc        = os.Exit
)

// run 建立管理員帳號，flag 優先於環境變數
func run(ctx context.Context, args []string) (*model.User, error) {
	var cfg seedConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	fs := flag.NewFlagSet("seed-admin", flag.ContinueOnError)
	email := fs.String("email", cfg.Email, "管理員 email")
	password := fs.String("password", cfg.Password, "管理員密碼（至少 8 字元）")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *email == "" || len(*password) < 8 {
		return nil, fmt.Errorf("email and a password of at least 8 characters are required")
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("Migration 執行失敗: %w", err)
	}
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	return newCreator(db, cfg.BcryptCost).CreateAdmin(ctx, *email, *password)
}

func main() {
	_ = godotenv.Load()
	log := logger.Init(logger.Options{Pretty: true})
	u, err := run(context.Background(), os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("建立管理員失敗")
		exitFunc(1)
		return
	}
	log.Info().Str("uid", u.UID.String()).Str("email", u.Email).Msg("管理員已建立")
}
