// File: cmd/service/main.go
// @title        Hotel Booking API
// @version      1.0
// @description  飯店訂房系統後端 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式為 Bearer {token}
package main

import (
	"context"
	"os"

	_ "hotel-booking/docs" // 引入 swag 產出的 docs
	"hotel-booking/internal/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		// run 尚未初始化 logger 時使用預設設定
		log := logger.Init(logger.Options{Output: os.Stderr})
		log.Error().Err(err).Msg("服務異常結束")
		exitFunc(1)
	}
}
