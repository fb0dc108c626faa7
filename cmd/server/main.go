package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "lingua/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lingua/internal/cache"
	"lingua/internal/config"
	"lingua/internal/db"
	"lingua/internal/handler"
	"lingua/internal/repository"
	"lingua/internal/router"
	"lingua/internal/service"
)

// @title Language School API
// @version 1.0
// @description Course-management backend: auth, users, contact messages, and course registrations over a SQLite file store.
// @host localhost:3001
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	log.Printf("Database file: %s", cfg.SQLitePath)

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: failed to drop tables (may not exist): %v", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}
	if err := db.SeedUsers(gormDB); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	registrationRepo := repository.NewRegistrationRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)
	messageService := service.NewMessageService(messageRepo, cacheClient)
	registrationService := service.NewRegistrationService(registrationRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	messageHandler := handler.NewMessageHandler(messageService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	healthHandler := handler.NewHealthHandler()

	// Register routes
	router.Register(
		e,
		authHandler,
		userHandler,
		messageHandler,
		registrationHandler,
		healthHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("close database: %v", err)
		} else {
			log.Println("Database connection closed.")
		}
	}
}
