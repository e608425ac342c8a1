// File: internal/handler/health.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hotel-booking/internal/cache"
	"hotel-booking/internal/database"
)

const readinessTimeout = 2 * time.Second

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LivenessHandler 程序存活檢查
// @Summary     Liveness
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func LivenessHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// ReadinessHandler 檢查 PostgreSQL 與 Redis 是否可用，rdb 為 nil 時略過 Redis
// @Summary     Readiness
// @Description 任一依賴無法連線時回傳 503
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /health/ready [get]
func ReadinessHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: "ok", Checks: map[string]string{}}
		code := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			resp.Checks["postgres"] = err.Error()
			code = http.StatusServiceUnavailable
		} else {
			resp.Checks["postgres"] = "ok"
		}

		if rdb == nil {
			resp.Checks["redis"] = "disabled"
		} else if err := rdb.Ping(ctx).Err(); err != nil {
			resp.Checks["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		} else {
			resp.Checks["redis"] = "ok"
		}

		if code != http.StatusOK {
			resp.Status = "unavailable"
		}
		return c.JSON(code, resp)
	}
}
