package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-decision/config"
	httpLayer "loan-decision/http"
	"loan-decision/repository"
	"loan-decision/service"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		panic(err)
	}
	logger := cfg.NewLogger(os.Stdout)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.ScoreCacheTTL)
		defer redisCache.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err.Error())
			os.Exit(1)
		}
		cache = redisCache
	} else {
		logger.Info("LOAN_REDIS_ADDR not set, caching credit scores in memory")
		cache = repository.NewMemoryCache()
	}

	identityVerifier := service.NewIdentityVerifierServiceGateway(service.RuleIdentityService{})
	identityVerifier.SetLogger(logger)

	creditScorer := service.NewCachedCreditScorer(service.HashCreditBureau{}, cache)
	creditScorer.SetLogger(logger)

	processor := service.NewLoanApplicationProcessor(identityVerifier, creditScorer)
	processor.SetLogger(logger)
	processor.SetPolicy(service.DecisionPolicy{
		MinimumSalary:   cfg.MinimumSalary,
		AcceptanceScore: cfg.AcceptanceScore,
		StrictScore:     cfg.StrictScore,
	})

	applicationHandler := httpLayer.NewApplicationHandler(processor)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/applications/process",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(applicationHandler.ProcessApplication),
		),
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpLayer.RequestIDMiddleware(logger, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("loan decision API listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", "error", err.Error())
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", "error", err.Error())
	}

	logger.Info("server exited")
}
