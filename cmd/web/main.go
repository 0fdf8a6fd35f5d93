package main

import (
	"sportline_backend/internal/app"
	"sportline_backend/internal/logger"
)

// @title           Sportline Backend API
// @version         1.0
// @description     REST API спортивной платформы: аутентификация, профили, справочник спорта, комментарии и аналитика.

// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Формат: "Bearer {token}"

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("Application failed", "error", err)
	}
}
