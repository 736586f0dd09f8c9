package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-multidb-api/internal/config"
	"go-multidb-api/internal/database"
	"go-multidb-api/internal/handler"
	"go-multidb-api/internal/middleware"
	"go-multidb-api/internal/repository"
	"go-multidb-api/internal/router"
	"go-multidb-api/internal/service"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	usersDB, err := database.New(context.Background(), "users", cfg.UsersDatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to users database: %w", err)
	}

	productsDB, err := database.New(context.Background(), "products", cfg.ProductsDatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		usersDB.Close()
		return nil, fmt.Errorf("failed to connect to products database: %w", err)
	}

	userRepo := repository.NewUserRepository(usersDB.Pool)
	productRepo := repository.NewProductRepository(productsDB.Pool)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		API:     handler.NewAPIHandler(),
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Product: handler.NewProductHandler(productService),
		Admin:   handler.NewAdminHandler(authService, cfg.AdminKey),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		cleanupFuncs: []func(){
			usersDB.Close,
			productsDB.Close,
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
