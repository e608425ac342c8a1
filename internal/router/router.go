// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hotel-booking/internal/cache"
	"hotel-booking/internal/database"
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/auth"
	"hotel-booking/internal/handler/bookings"
	"hotel-booking/internal/handler/rooms"
	"hotel-booking/internal/middleware"
	"hotel-booking/internal/service"
)

// Deps 為路由所需的依賴，Cache 可為 nil
type Deps struct {
	DB          database.DB
	Cache       cache.Cache
	Tokens      *service.TokenService
	Credentials *service.Credentials
	Catalog     *service.Catalog
	Ledger      *service.Ledger
	Log         zerolog.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	requireAuth := middleware.RequireAuth(d.Tokens, d.Credentials)
	requireAdmin := middleware.RequireAdmin(d.Tokens, d.Credentials)

	// 健康檢查與監控
	e.GET("/health", handler.LivenessHandler())
	e.GET("/health/ready", handler.ReadinessHandler(d.DB, d.Cache))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// 註冊與登入
	e.POST("/register", auth.RegisterHandler(d.Credentials))
	e.POST("/login", auth.LoginHandler(d.Credentials, d.Tokens))

	// 公開查詢
	e.GET("/rooms", rooms.ListRoomsHandler(d.Catalog))
	e.GET("/available_rooms", rooms.AvailableRoomsHandler(d.Catalog))

	// 需登入
	e.POST("/book_room", bookings.BookRoomHandler(d.Ledger), requireAuth)

	admin := e.Group("/admin")
	admin.POST("/rooms", rooms.CreateRoomHandler(d.Catalog), requireAdmin)
	admin.PUT("/rooms/:room_number", rooms.UpdateRoomHandler(d.Catalog), requireAdmin)
	admin.DELETE("/rooms/:room_number", rooms.DeleteRoomHandler(d.Catalog, d.Log), requireAdmin)
	admin.PUT("/bookings/:booking_id", bookings.UpdateBookingHandler(d.Ledger), requireAdmin)
	// 訂單擁有者亦可取消，權限於 Ledger.Cancel 檢查
	admin.DELETE("/bookings/:booking_id", bookings.CancelBookingHandler(d.Ledger), requireAuth)
}
