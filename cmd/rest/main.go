package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motoservice-be/internal/bootstrap"
	"motoservice-be/internal/config"
	"motoservice-be/internal/server"
	"motoservice-be/internal/tracer"
	"motoservice-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Auth.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction(), database.DefaultPoolConfig())
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("SWEEPER", "Failed to subscribe to worker events", map[string]interface{}{
			"error": err.Error(),
		})
	}
	go container.Sweeper.Run(ctx)

	// 6. Run Server
	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			container.Logger.Error("HTTP", "Server stopped", map[string]interface{}{
				"error": err.Error(),
			})
			stop()
		}
	}()

	<-ctx.Done()
	container.Logger.Info("HTTP", "Shutting down", nil)

	if err := srv.Shutdown(); err != nil {
		container.Logger.Error("HTTP", "Server shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracer(shutdownCtx); err != nil {
		container.Logger.Warn("HTTP", "Tracer shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	container.Close()
}
