package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/refill-store/pkg/config"
	"github.com/dwikikusuma/refill-store/pkg/logger"
	"github.com/dwikikusuma/refill-store/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})
	slog.SetDefault(log)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	sf := newStorefront(cfg, log)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("grpc starting", slog.String("addr", addr), slog.String("currency", cfg.Currency))
		if err := sf.grpc.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		sf.close()
		if !shutdown.Graceful(10*time.Second, sf.grpc.GracefulStop, sf.grpc.Stop) {
			log.Warn("graceful stop timeout, forcing stop")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("storefront stopped", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
