package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tickermatch/config"
	"tickermatch/domain/book"
	"tickermatch/infra/kafka"
	"tickermatch/infra/logging"
	"tickermatch/infra/metrics"
	"tickermatch/infra/sequence"
	"tickermatch/jobs/publisher"
	"tickermatch/jobs/simulator"
	"tickermatch/service"
)

func main() {
	// ---------------- Configuration ----------------

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer cancel()

	// ---------------- Domain ----------------

	books := book.NewRegistry(cfg.Book.MaxTickers, cfg.Book.MaxOrdersPerSide)
	seqGen := sequence.New(0)
	mtr := metrics.New()

	// ---------------- Metrics ----------------

	if cfg.Metrics.Enabled {
		addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
		go func() {
			if err := http.ListenAndServe(addr, mtr.Handler()); err != nil {
				logger.Warn("metrics server exited", zap.Error(err))
			}
		}()
		logger.Info("metrics server started", zap.String("addr", addr))
	}

	// ---------------- Trade Sink ----------------

	var sink service.TradeSink
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Fatal("kafka producer init failed", zap.Error(err))
		}
		pub := publisher.New(producer, cfg.Kafka.Buffer, logger)
		go pub.Run(ctx)
		defer pub.Close()
		sink = pub

		logger.Info("trade publisher enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(books, seqGen, mtr, sink, logger)

	// ---------------- Driver ----------------

	sim := simulator.New(
		svc,
		cfg.Sim.Workers,
		cfg.Sim.OrdersPerWorker,
		cfg.Sim.Tickers,
		logger,
	)

	start := time.Now()
	sim.Run(ctx)

	recorded, dropped := svc.Stats()
	logger.Info("simulation complete",
		zap.Int64("orders_recorded", recorded),
		zap.Int64("orders_dropped", dropped),
		zap.Uint64("trades", svc.Trades()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
