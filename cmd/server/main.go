package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mortgage-agent/config"
	httpLayer "mortgage-agent/http"
	"mortgage-agent/logger"
	"mortgage-agent/repository"
	"mortgage-agent/service"
)

func main() {
	cfgPath := os.Getenv("MORTGAGE_CONFIG")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	var cache repository.CacheRepository
	if cfg.Cache.Enabled {
		redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		defer redisCache.Close()
		cache = redisCache
		log.Info("using redis result cache", zap.String("addr", cfg.Cache.RedisAddr))
	} else {
		cache = repository.NewMemoryCache()
	}

	comparisonService := service.NewComparisonService(cache, log)

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpLayer.RequestLogger(log))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()
	engine.Use(rateLimiter.Middleware())

	healthHandler := &httpLayer.HealthHandler{}
	healthHandler.Register(engine)
	compareHandler := &httpLayer.CompareHandler{Service: comparisonService, Logger: log}
	compareHandler.Register(engine)

	server := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("mortgage comparison API listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("server failed", zap.Error(err))
		return
	case <-quit:
		log.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("server exited")
}
