package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"scoring-gateway/internal/auth"
	"scoring-gateway/internal/method"
	"scoring-gateway/internal/method/metrics"
	"scoring-gateway/internal/platform/config"
	"scoring-gateway/internal/platform/httpserver"
	"scoring-gateway/internal/platform/logger"
	platformredis "scoring-gateway/internal/platform/redis"
	"scoring-gateway/internal/scoring"
	httptransport "scoring-gateway/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis setup failed", "error", err)
		os.Exit(1)
	}

	var store scoring.Store
	var health httptransport.HealthChecker
	if redisClient != nil {
		rs := scoring.NewRedisStore(redisClient)
		store, health = rs, rs
		defer redisClient.Close()
	} else {
		log.Warn("redis not configured, using in-memory store")
		ms := scoring.NewMemoryStore()
		store, health = ms, ms
	}

	dispatcher := method.NewDispatcher(
		auth.New(cfg.Auth),
		store,
		cfg.Auth.AdminLogin,
		log,
		metrics.New(),
	)

	handler := httptransport.NewHandler(dispatcher, log, health)
	router := httptransport.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting scoring-gateway", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
