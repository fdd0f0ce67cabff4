package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lazygeek007/connect-four/internal/config"
	"github.com/lazygeek007/connect-four/internal/repository"
	"github.com/lazygeek007/connect-four/internal/repository/memory"
	redisrepo "github.com/lazygeek007/connect-four/internal/repository/redis"
	"github.com/lazygeek007/connect-four/internal/service/cleanup"
	"github.com/lazygeek007/connect-four/internal/service/game"
	transportHttp "github.com/lazygeek007/connect-four/internal/transport/http"
	"github.com/lazygeek007/connect-four/internal/transport/websocket"
)

// Run wires the whole server together and blocks until the process is
// asked to stop.
func Run() error {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	store := newStore(cfg)
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	manager := game.NewSessionManager(store, cfg.SessionTTL)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	worker := cleanup.NewWorker(manager, cfg.CleanupInterval)
	go worker.Start(workerCtx)

	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, manager, cfg.JWTSecret, cfg.AllowedOrigins)

	router := transportHttp.NewRouter(transportHttp.RouterConfig{
		Manager:   manager,
		Config:    cfg,
		WSHandler: wsHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	log.Println("[SERVER] Server is shutting down...")
	connManager.Broadcast(websocket.ServerMessage{Type: "server_shutdown"})
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Println("[SERVER] Server exited gracefully")
	return nil
}

// newStore picks the snapshot backend. An unreachable Redis degrades
// to the in-memory store so the game still works.
func newStore(cfg *config.Config) repository.SessionStore {
	if strings.ToLower(cfg.StorageType) == "redis" {
		store, err := redisrepo.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			log.Printf("[SERVER] Redis unavailable (%v), falling back to in-memory store", err)
			return memory.New()
		}
		return store
	}
	log.Println("[SERVER] Using in-memory session store")
	return memory.New()
}
