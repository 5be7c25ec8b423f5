package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-fx/internal/handlers/v1/exchangerate"
	"github.com/carson-networks/budget-fx/internal/handlers/v1/status"
	"github.com/carson-networks/budget-fx/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-fx/internal/handlers/v1/user"
	"github.com/carson-networks/budget-fx/internal/logging"
	"github.com/carson-networks/budget-fx/internal/operator"
	"github.com/carson-networks/budget-fx/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

const shutdownTimeout = 10 * time.Second

// Handler builds the router with every endpoint registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("budget-fx", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	user.NewCreateUserHandler(r.Operator).Register(api)
	user.NewGetUserHandler(r.Service.User).Register(api)
	user.NewSetBaseCurrencyHandler(r.Operator).Register(api)

	transaction.NewCreateTransactionHandler(r.Operator).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)

	exchangerate.NewUpsertExchangeRateHandler(r.Operator, r.Service.ExchangeRate).Register(api)
	exchangerate.NewListExchangeRatesHandler(r.Service.ExchangeRate).Register(api)
	exchangerate.NewConvertHandler(r.Service.ExchangeRate).Register(api)

	return mux
}

// Serve blocks until ctx is done or the listener fails. After ctx is done it
// returns only once in-flight requests have drained or shutdownTimeout passed.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	return r.serve(ctx, server, server.ListenAndServe)
}

func (r *Rest) serve(ctx context.Context, server *http.Server, listen func() error) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	err := listen()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}

	<-shutdownDone
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
