// File: internal/config/config.go
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"
)

// Config 為整個程序共用的設定，啟動時載入一次後不再修改
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Booking  BookingConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type HTTPConfig struct {
	Port            string        `env:"PORT, default=8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT, default=10s"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, required"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET, required"`
	JWTAlgorithm   string        `env:"JWT_ALGORITHM, default=HS256"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL, default=60m"`
	BcryptCost     int           `env:"BCRYPT_COST, default=10"`
}

// RedisConfig Enabled 為 false 時不連線 Redis，訂房只靠 SERIALIZABLE 交易
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED, default=true"`
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type BookingConfig struct {
	LockTTL time.Duration `env:"BOOKING_LOCK_TTL, default=5s"`
}

type WorkerConfig struct {
	Count int `env:"WORKER_COUNT, default=1"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

// Addr 回傳 HTTP 監聽位址
func (h HTTPConfig) Addr() string {
	return ":" + h.Port
}

// 測試可覆寫
var (
	loadDotenv = func() { _ = godotenv.Load() }
	lookuper   = envconfig.OsLookuper()
)

// Load 先讀取 .env（若存在），再從環境變數填入 Config
func Load(ctx context.Context) (*Config, error) {
	loadDotenv()

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("invalid ACCESS_TOKEN_TTL: %s", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("invalid BCRYPT_COST: %d (want %d-%d)", c.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Worker.Count <= 0 {
		return fmt.Errorf("invalid WORKER_COUNT: %d", c.Worker.Count)
	}
	if c.Booking.LockTTL <= 0 {
		return fmt.Errorf("invalid BOOKING_LOCK_TTL: %s", c.Booking.LockTTL)
	}
	return nil
}
