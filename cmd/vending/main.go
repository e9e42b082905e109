package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/bootstrap"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	cfg, err := bootstrap.LoadVendingConfig()
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	logger := logging.NewLogger(os.Stdout, cfg.LogFormat)
	gin.SetMode(gin.ReleaseMode)

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		logger.Error("failed to listen", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewVendingApp(cfg, logger)

	group, groupCtx := errgroup.WithContext(mainCtx)

	group.Go(func() error {
		return app.Run(groupCtx, lis)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		app.Shutdown()
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.Error("vending service stopped with error", "error", err.Error())
		os.Exit(1)
	}
}
