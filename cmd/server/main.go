package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/adapter/cache"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/adapter/pg"
	httpapi "github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/api/http"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/config"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/core"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/port"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/publisher"
	"github.com/yuvrajpandey77/TUCAS-DEX-ORDERBOOK-sub000/internal/stream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := pg.NewRepo(ctx, cfg.PG.DSN)
	if err != nil {
		logger.Fatal("connecting to postgres failed", zap.Error(err))
	}
	defer repo.Close()

	redisCache := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	defer redisCache.Close()

	var pub port.MatchPublisher
	if cfg.Kafka.Enabled {
		kp := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer kp.Close()
		pub = kp
	}

	engine := core.NewEngine(repo, redisCache, pub, logger)

	symbols := cfg.Stream.Symbols
	if len(symbols) == 0 {
		symbols, err = repo.ListSymbols(ctx)
		if err != nil {
			logger.Fatal("listing symbols failed", zap.Error(err))
		}
	}

	hub := stream.NewHub[stream.DepthUpdate]()
	poller := stream.NewPoller(engine, hub, symbols, cfg.Stream.Interval, logger)
	go poller.Run(ctx)

	server := httpapi.NewServer(engine, hub, logger)
	logger.Info("starting HTTP server",
		zap.String("addr", cfg.App.Addr),
		zap.Strings("symbols", symbols),
	)
	if err := server.Run(cfg.App.Addr); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
