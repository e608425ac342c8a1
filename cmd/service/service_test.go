package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hotel-booking/internal/cache"
	"hotel-booking/internal/config"
	"hotel-booking/internal/database"
	"hotel-booking/internal/logger"
	"hotel-booking/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	notifySignals = func(ctx context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	}
	exitFunc = func(code int) {}
	logger.Reset()
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP:     config.HTTPConfig{Port: "9090", ShutdownTimeout: time.Second},
		Database: config.DatabaseConfig{URL: "postgres://test"},
		Auth:     config.AuthConfig{JWTSecret: "secret", JWTAlgorithm: "HS256", AccessTokenTTL: time.Hour, BcryptCost: 4},
		Redis:    config.RedisConfig{Enabled: true, Addr: "127.0.0.1:6379", Password: "pw", DB: 1},
		Booking:  config.BookingConfig{LockTTL: time.Second},
		Worker:   config.WorkerConfig{Count: 2},
		Log:      config.LogConfig{Level: "error"},
	}
}

// stubAll 讓 run 的所有外部依賴都成功，回傳呼叫紀錄
func stubAll(t *testing.T) map[string]bool {
	t.Helper()
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	loadConfig = func(context.Context) (*config.Config, error) { return testConfig(), nil }
	runMigrationsFn = func(url string) error {
		require.Equal(t, "postgres://test", url)
		called["migrate"] = true
		return nil
	}
	newPgxPool = func(_ context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{
			PingFn:  func(context.Context) error { return nil },
			CloseFn: func() { called["dbClose"] = true },
		}, nil
	}
	newRedisClient = func(_ context.Context, addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	newWorkerPool = func(n, queue int, log zerolog.Logger) worker.Pool {
		require.Equal(t, 2, n)
		called["pool"] = true
		return worker.NewPool(n, queue, log)
	}
	startServer = func(_ *echo.Echo, addr string) error {
		require.Equal(t, ":9090", addr)
		called["start"] = true
		return nil
	}
	return called
}

func TestRunSuccess(t *testing.T) {
	called := stubAll(t)

	require.NoError(t, run(context.Background()))
	for _, k := range []string{"migrate", "pgx", "redis", "pool", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], "missing %s", k)
	}
}

func TestRunWithoutRedis(t *testing.T) {
	called := stubAll(t)
	loadConfig = func(context.Context) (*config.Config, error) {
		cfg := testConfig()
		cfg.Redis.Enabled = false
		return cfg, nil
	}
	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		t.Fatal("redis must not be dialed when disabled")
		return nil, nil
	}
	var served *echo.Echo
	startServer = func(e *echo.Echo, _ string) error {
		served = e
		return nil
	}

	require.NoError(t, run(context.Background()))
	require.True(t, called["dbClose"])
	require.False(t, called["redisClose"])

	// readiness 應回報 redis 已停用
	rec := httptest.NewRecorder()
	served.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Contains(t, rec.Body.String(), `"redis":"disabled"`)
}

func TestRunGracefulShutdown(t *testing.T) {
	called := stubAll(t)
	notifySignals = func(ctx context.Context) (context.Context, context.CancelFunc) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		return ctx, cancel
	}
	done := make(chan struct{})
	startServer = func(*echo.Echo, string) error {
		<-done
		return http.ErrServerClosed
	}
	shutdownServer = func(context.Context, *echo.Echo) error {
		called["shutdown"] = true
		close(done)
		return nil
	}

	require.NoError(t, run(context.Background()))
	require.True(t, called["shutdown"])
	require.True(t, called["dbClose"])
}

func TestRunErrors(t *testing.T) {
	stubAll(t)

	loadConfig = func(context.Context) (*config.Config, error) { return nil, errors.New("config") }
	require.Error(t, run(context.Background()))
	loadConfig = func(context.Context) (*config.Config, error) { return testConfig(), nil }

	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.ErrorContains(t, run(context.Background()), "Migration")
	runMigrationsFn = func(string) error { return nil }

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.ErrorContains(t, run(context.Background()), "DB")
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }

	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.ErrorContains(t, run(context.Background()), "Redis")
	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }

	loadConfig = func(context.Context) (*config.Config, error) {
		cfg := testConfig()
		cfg.Auth.JWTSecret = ""
		return cfg, nil
	}
	require.Error(t, run(context.Background()))
	loadConfig = func(context.Context) (*config.Config, error) { return testConfig(), nil }

	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.ErrorContains(t, run(context.Background()), "HTTP")

	notifySignals = func(ctx context.Context) (context.Context, context.CancelFunc) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		return ctx, cancel
	}
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	startServer = func(*echo.Echo, string) error { <-block; return http.ErrServerClosed }
	shutdownServer = func(context.Context, *echo.Echo) error { return errors.New("shutdown") }
	require.ErrorContains(t, run(context.Background()), "關閉")
}

func TestMainExit(t *testing.T) {
	stubAll(t)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	loadConfig = func(context.Context) (*config.Config, error) { return nil, errors.New("fail") }

	main()
	require.Equal(t, 1, exitCode)
}

func TestMainOK(t *testing.T) {
	stubAll(t)
	exitCode := -1
	exitFunc = func(code int) { exitCode = code }

	main()
	require.Equal(t, -1, exitCode)
}

func TestNewEcho(t *testing.T) {
	e := newEcho(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
}
