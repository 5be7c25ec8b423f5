package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-fx/api"
	"github.com/carson-networks/budget-fx/internal/config"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/operator"
	"github.com/carson-networks/budget-fx/internal/service"
	"github.com/carson-networks/budget-fx/internal/storage"
	"github.com/carson-networks/budget-fx/internal/storage/ratecache"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("budget-fx starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	var cache service.RateCache
	if envConfig.RedisAddress != "" {
		rateCache := ratecache.New(envConfig.RedisAddress, envConfig.RedisPassword, envConfig.RateCacheTTL)
		defer rateCache.Close()
		cache = rateCache
		logger.WithField("ttl", envConfig.RateCacheTTL.String()).Info("ratecache enabled")
	}

	svc := service.NewService(dbStorage, cache, logger)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	httpRest := &api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Service:  svc,
		Operator: delegator,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("budget-fx stopped")
	}
}
