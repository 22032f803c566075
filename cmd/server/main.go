package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/axiomai/axiom-server/internal/ai"
	"github.com/axiomai/axiom-server/internal/config"
	"github.com/axiomai/axiom-server/internal/db"
	"github.com/axiomai/axiom-server/internal/httpapi"
	"github.com/axiomai/axiom-server/internal/store/redisstore"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	// Dashboard cache is optional; without redis every admin request hits the DB.
	var rds *redisstore.Store
	if cfg.RedisAddr != "" {
		rds = redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rds.Ping(pingCtx); err != nil {
			log.Printf("redis unavailable, dashboard caching disabled: %v", err)
			rds = nil
		}
		cancel()
	}

	groq := ai.NewChatClient(cfg.GroqBaseURL, cfg.GroqAPIKey, ai.GroqModel, cfg.AITimeout)
	cerebras := ai.NewChatClient(cfg.CerebrasBaseURL, cfg.CerebrasAPIKey, ai.CerebrasModel, cfg.AITimeout)
	router := ai.NewRouter(groq, cerebras)

	engine := httpapi.NewRouter(gdb, cfg, rds, router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server listening on %s env=%s", srv.Addr, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if rds != nil {
		_ = rds.Close()
	}
}
