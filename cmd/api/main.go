package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"industrial-catalog/internal/cache"
	"industrial-catalog/internal/config"
	"industrial-catalog/internal/inquiry"
	"industrial-catalog/internal/logging"
	"industrial-catalog/internal/routes"
	"industrial-catalog/internal/server"
	"industrial-catalog/internal/store"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	gin.SetMode(cfg.GinMode)

	var opened closers

	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	opened = append(opened, st.Close)

	cacheStore, err := openCache(ctx, cfg, logger)
	if err != nil {
		opened.closeAll(ctx, logger)
		return err
	}
	opened = append(opened, func(context.Context) error { return cacheStore.Close() })

	publisher, err := openPublisher(cfg, logger)
	if err != nil {
		opened.closeAll(ctx, logger)
		return err
	}
	opened = append(opened, func(context.Context) error { return publisher.Close() })

	router := routes.NewRouter(routes.Deps{
		Store:    st,
		Cache:    cacheStore,
		Inquiry:  inquiry.NewService(publisher, logger),
		Logger:   logger,
		PageSize: cfg.PageSize,
		CacheTTL: cfg.CacheTTL,
		Now:      time.Now,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return server.Run(ctx, srv, logger, cfg.ShutdownTimeout, opened.reversed()...)
}

// closers acumula los recursos abiertos; se cierran en orden inverso
type closers []server.ShutdownHook

func (cs closers) reversed() []server.ShutdownHook {
	out := make([]server.ShutdownHook, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

func (cs closers) closeAll(ctx context.Context, logger *zap.Logger) {
	for _, c := range cs.reversed() {
		if err := c(ctx); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}
}

func openCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.Store, error) {
	if cfg.CacheBackend == config.CacheRedis {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, err
		}
		logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
		return rc, nil
	}
	return cache.NewMemory(cfg.CacheTTL, 5*time.Minute), nil
}

func openPublisher(cfg *config.Config, logger *zap.Logger) (inquiry.Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, inquiries are only logged")
		return inquiry.LogPublisher{Logger: logger}, nil
	}
	p, err := inquiry.DialAMQP(cfg.AMQPURL, cfg.InquiryExchange)
	if err != nil {
		return nil, err
	}
	logger.Info("publishing inquiries", zap.String("exchange", cfg.InquiryExchange))
	return p, nil
}
