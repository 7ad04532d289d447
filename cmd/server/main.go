// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/duescall/duescall-backend/internal/config"
	"github.com/duescall/duescall-backend/internal/controller"
	"github.com/duescall/duescall-backend/internal/logger"
	"github.com/duescall/duescall-backend/internal/service"
	"github.com/duescall/duescall-backend/internal/telephony"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()
	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	// The dialer only exists when credentials are present; live dispatch
	// without one aborts the batch with a configuration error.
	var dialer telephony.Dialer
	if cfg.TwilioConfigured() {
		dialer = telephony.NewTwilioDialer(cfg)
	}

	scriptService := &service.ScriptService{Cfg: cfg}
	dispatchService := &service.DispatchService{
		Cfg:    cfg,
		Dialer: dialer,
		Logger: zlog,
	}

	callController := controller.NewCallController(dispatchService, scriptService, zlog)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", callController.Index)
	r.Get("/health", callController.Health)
	r.Post("/upload", callController.Upload)
	r.Get("/voice", callController.Voice)
	r.Post("/voice", callController.Voice)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		zlog.Info("🚀 Server running",
			zap.String("addr", cfg.HTTPAddr),
			zap.Bool("dry_run", cfg.DryRun),
			zap.Bool("twilio_configured", cfg.TwilioConfigured()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
	zlog.Info("✅ Server stopped gracefully")
}
