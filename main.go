package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/flow-server/api"
	"github.com/carson-networks/flow-server/internal/config"
	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/operator"
	"github.com/carson-networks/flow-server/internal/scheduler"
	"github.com/carson-networks/flow-server/internal/service"
	"github.com/carson-networks/flow-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("flow-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := envConfig.Validate(); err != nil {
		logrus.WithError(err).Fatal("config.Validate")
		return
	}
	loc, err := envConfig.Location()
	if err != nil {
		logrus.WithError(err).Fatal("config.Location")
		return
	}

	rowStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer rowStorage.Rows.Close()

	delegator := operator.NewOperatorDelegator(rowStorage.Rows, envConfig.NumWorkers)
	delegator.Start()

	svc := service.NewService(rowStorage.Rows, delegator, service.ClockIn(loc))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	refreshScheduler := scheduler.NewScheduler(ctx, svc.Workspace, envConfig.StoreTimeout)
	refreshScheduler.RunNow()
	if err := refreshScheduler.RegisterRefresh(envConfig.RefreshCron); err != nil {
		logrus.WithError(err).Fatal("scheduler.RegisterRefresh")
		return
	}
	refreshScheduler.Start()

	httpRest := api.NewRest(logger, envConfig.Port, envConfig.PIN, svc)
	go httpRest.Serve()

	<-ctx.Done()
	logrus.Info("flow-server stopping")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HttpServer.Shutdown")
	}
	refreshScheduler.Stop()
	delegator.Stop()
}
