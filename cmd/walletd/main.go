package main

import (
	"errors"
	"net/http"
	"time"

	"owt/internal/api"
	"owt/internal/client"
	"owt/internal/config"
	"owt/internal/session"
	"owt/octra"

	_ "owt/docs"

	"go.uber.org/zap"
)

// @title        Octra Web Wallet API
// @version      1.0
// @description  Server-side wallet agent for the Octra ledger
// @BasePath     /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.Init(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	store := session.NewStore(func() *octra.Session {
		return octra.NewSession(client.NewLedgerClient(config.GetLedgerRPCURL()), logger)
	})

	srv := &http.Server{
		Addr:              ":" + config.GetPort(),
		Handler:           api.SetupRouter(store, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting wallet agent",
		zap.String("port", config.GetPort()),
		zap.String("ledger", config.GetLedgerRPCURL()))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
