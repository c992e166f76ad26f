package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"brightline/internal/config"
	"brightline/internal/mailer"
	"brightline/internal/ratelimit"
	"brightline/internal/server"
	"brightline/internal/storage"
)

func main() {
	// Load env if it exists
	godotenv.Load()

	cfg, err := config.Load("config.json")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := storage.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Connected to database successfully")

	limiter := ratelimit.New(cfg.RateLimit.Strategy, db.DB, cfg.RateLimit.MaxPerDay)
	log.Printf("Rate limiter strategy: %s (max %d/day)", cfg.RateLimit.Strategy, cfg.RateLimit.MaxPerDay)

	m := mailer.New(cfg.SMTP)
	if cfg.MailEnabled() {
		// Connectivity self-check only; a failure is logged, not fatal.
		verifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := m.Verify(verifyCtx); err != nil {
			log.Printf("SMTP verify failed: %v", err)
		} else {
			log.Println("SMTP connection verified")
		}
		cancel()
	} else {
		log.Println("SMTP not configured, contact notifications disabled")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	srv := server.New(cfg, db, limiter, m)

	go func() {
		addr := ":" + cfg.Server.Port
		if err := srv.Run(ctx, addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
