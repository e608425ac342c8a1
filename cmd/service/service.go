// File: cmd/service/service.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"hotel-booking/internal/api"
	"hotel-booking/internal/cache"
	"hotel-booking/internal/config"
	"hotel-booking/internal/database"
	"hotel-booking/internal/logger"
	"hotel-booking/internal/metrics"
	"hotel-booking/internal/router"
	"hotel-booking/internal/service"
	"hotel-booking/internal/worker"
)

// 事件佇列長度，滿了之後的事件直接丟棄
const eventQueueSize = 64

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	notifySignals   = func(ctx context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	}
	exitFunc = os.Exit
)

func run(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	// rdb 維持 nil 介面時，訂房鎖與 readiness 的 Redis 檢查都會停用
	var rdb cache.Cache
	if cfg.Redis.Enabled {
		client, err := newRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("關閉 Redis 連線失敗")
			}
		}()
		rdb = client
	} else {
		log.Warn().Msg("Redis 已停用，訂房不使用分散式鎖")
	}

	tokens, err := service.NewTokenService(cfg.Auth)
	if err != nil {
		return err
	}

	wp := newWorkerPool(cfg.Worker.Count, eventQueueSize, log)
	defer wp.Stop()

	e := newEcho(log)
	router.Setup(e, router.Deps{
		DB:          db,
		Cache:       rdb,
		Tokens:      tokens,
		Credentials: service.NewCredentials(db, cfg.Auth.BcryptCost),
		Catalog:     service.NewCatalog(db),
		Ledger:      service.NewLedger(db, rdb, cfg.Booking.LockTTL, service.NewNotifier(wp, log), log),
		Log:         log,
	})

	ctx, stop := notifySignals(ctx)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("HTTP 服務啟動")
		errCh <- startServer(e, cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP 服務失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("收到停止訊號，開始關閉服務")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := shutdownServer(shutdownCtx, e); err != nil {
		return fmt.Errorf("關閉 HTTP 服務失敗: %w", err)
	}
	return nil
}

// newEcho 建立 echo 實例並掛上共用中介層
func newEcho(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	// metrics 在最內層處理 handler 錯誤，外層看到的是最終狀態碼
	e.Use(metrics.Middleware())
	return e
}
