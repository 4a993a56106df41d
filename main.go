package main

import (
	"context"
	"gin-storefront/infra"
	"gin-storefront/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// sessionCleanupWorker 期限切れセッションを定期的に削除する
func sessionCleanupWorker(ctx context.Context, sessionService services.ISessionService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessionService.CleanExpired()
			if err != nil {
				log.Printf("Failed to clean expired sessions: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("Removed %d expired sessions", removed)
			}
		}
	}
}

func main() {
	infra.Initialize()
	cfg := infra.LoadConfig()

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := infra.InitSchema(db, services.BcryptHasher{}, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	sessionDB, err := infra.SetupSessionDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to session database: %v", err)
	}
	if err := infra.InitSessionSchema(sessionDB); err != nil {
		log.Fatalf("Failed to initialize session schema: %v", err)
	}

	sessionService := newSessionService(sessionDB, cfg)
	r := setupRouter(db, sessionService)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go sessionCleanupWorker(workerCtx, sessionService, cfg.Server.SessionCleanupInterval)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopWorker()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
