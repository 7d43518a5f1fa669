package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/Shajeel/bnw-orders-admin/cmd/ordersadmin/config"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/backendapi"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/importer"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/notify"
	"github.com/Shajeel/bnw-orders-admin/internal/ordersadmin/whatsapp"
	"github.com/Shajeel/bnw-orders-admin/pkg/jwtfactory"
	"github.com/Shajeel/bnw-orders-admin/pkg/logging"
	"github.com/Shajeel/bnw-orders-admin/pkg/timeutils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewZapLogger(zapcore.DebugLevel)
	if err != nil {
		log.Fatal(err)
	}

	rootCtx, cancelCtx := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGABRT,
	)
	defer cancelCtx()

	backend := backendapi.New(
		cfg.Backend,
		backendapi.StaticToken(cfg.BackendToken),
		func(ctx context.Context) {
			logger.WarnCtx(ctx, "upstream session expired")
		},
		logger,
	)

	if err := timeutils.Retry(rootCtx, cfg.ProbeDelays, backend.Ping); err != nil {
		logger.WarnCtx(rootCtx, "upstream API is not reachable yet", zap.Error(err))
	}

	whatsappClient := whatsapp.New(cfg.WhatsApp, logger)
	dispatcher := notify.NewDispatcher(whatsappClient, logger)
	importService := importer.New(backend, logger)

	tokenAuth := jwtauth.New(cfg.JWTConfig.Algorithm, []byte(cfg.JWTConfig.Secret), nil)
	tokenFactory := jwtfactory.New(tokenAuth, cfg.JWTConfig.ExpirationTime)

	server := ordersadmin.NewServer(
		cfg.Server,
		tokenAuth,
		tokenFactory,
		backend,
		dispatcher,
		importService,
		logger,
	)

	if err := run(rootCtx, cfg, server, logger); err != nil {
		logger.ErrorCtx(rootCtx, "Server shutdown with error", zap.Error(err))
	} else {
		logger.InfoCtx(rootCtx, "Server shutdown gracefully")
	}
}

func run(rootCtx context.Context, cfg *config.Config, server *ordersadmin.Server, logger *logging.ZapLogger) error {
	g, ctx := errgroup.WithContext(rootCtx)

	context.AfterFunc(ctx, func() {
		ctx, cancelCtx := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelCtx()

		<-ctx.Done()
		log.Fatal("failed to gracefully shutdown the server")
	})

	g.Go(func() error {
		if err := server.Run(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer logger.InfoCtx(ctx, "Shutting down server")
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("goroutine error occured: %w", err)
	}

	return nil
}
