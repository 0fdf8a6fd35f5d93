package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportline_backend/database"
	_ "sportline_backend/docs"
	"sportline_backend/internal/auth"
	"sportline_backend/internal/config"
	"sportline_backend/internal/email"
	"sportline_backend/internal/handlers"
	"sportline_backend/internal/logger"
	"sportline_backend/internal/middleware"
	"sportline_backend/internal/repositories"
	"sportline_backend/internal/routes"
	"sportline_backend/internal/services"
	"sportline_backend/internal/validator"
	"sportline_backend/internal/workers"
)

const resetCleanupInterval = 15 * time.Minute

// Лимит на login и forgot: 5 попыток в минуту с одного IP
const (
	loginRateRPS   = 5.0 / 60.0
	loginRateBurst = 5
)

// Run поднимает приложение: конфиг, БД, роутер, фоновые воркеры,
// HTTP-сервер с graceful shutdown
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.JWT.Secret == "" {
		return errors.New("JWT secret is not configured")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectGorm(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	if err := database.Seed(db, cfg); err != nil {
		return err
	}

	router, userRepo, limiter := SetupRouter(cfg, db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := workers.NewResetTokenWorker(userRepo, resetCleanupInterval)
	go worker.Run(ctx)
	go limiter.Run(ctx)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// SetupRouter собирает весь граф зависимостей и возвращает готовый
// gin.Engine. UserRepository и лимитер возвращаются отдельно: их
// фоновые циклы запускает Run. Тесты вызывают SetupRouter напрямую.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, repositories.UserRepository, *middleware.RateLimiter) {
	// Репозитории
	userRepo := repositories.NewUserRepository(db)
	sportRepo := repositories.NewSportRepository(db)
	commentaryRepo := repositories.NewCommentaryRepository(db)

	// Почтовый провайдер: без SMTP-настроек сброс пароля будет
	// возвращать 503, остальное приложение работает
	var emailProvider email.Provider
	smtpProvider, err := email.NewSMTPProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, cfg.Reset.TTL)
	if err != nil {
		logger.Warn("SMTP provider not configured, password reset delivery disabled", "error", err)
		emailProvider = email.NewDisabledProvider()
	} else {
		emailProvider = smtpProvider
	}

	tokens := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	// Сервисы
	authService := services.NewAuthService(
		userRepo,
		sportRepo,
		emailProvider,
		tokens,
		cfg.Email.FrontendURL,
		time.Duration(cfg.Reset.TTL)*time.Minute,
		cfg.Upload.AllowedTypes,
		cfg.Upload.MaxSize,
	)
	userService := services.NewUserService(userRepo, sportRepo, cfg.Upload.AllowedTypes, cfg.Upload.MaxSize)
	sportService := services.NewSportService(sportRepo)
	commentaryService := services.NewCommentaryService(commentaryRepo)
	analyticsService := services.NewAnalyticsService(userRepo, sportRepo)

	// Обработчики
	base := handlers.NewBaseHandler(validator.New())
	h := &routes.Handlers{
		Auth:       handlers.NewAuthHandler(base, authService),
		User:       handlers.NewUserHandler(base, userService, authService),
		Sport:      handlers.NewSportHandler(base, sportService),
		Commentary: handlers.NewCommentaryHandler(base, commentaryService, userService),
		Analytics:  handlers.NewAnalyticsHandler(base, analyticsService),
		Health:     handlers.NewHealthHandler(base),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.DBMiddleware(db))
	router.MaxMultipartMemory = cfg.Upload.MaxSize

	limiter := middleware.NewRateLimiter(loginRateRPS, loginRateBurst)
	routes.RegisterRoutes(router, h, tokens, limiter)

	return router, userRepo, limiter
}
