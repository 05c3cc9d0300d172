package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/flow-server/internal/handlers/v1/habit"
	"github.com/carson-networks/flow-server/internal/handlers/v1/journal"
	"github.com/carson-networks/flow-server/internal/handlers/v1/ledger"
	"github.com/carson-networks/flow-server/internal/handlers/v1/status"
	"github.com/carson-networks/flow-server/internal/handlers/v1/sync"
	"github.com/carson-networks/flow-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/flow-server/internal/logging"
	"github.com/carson-networks/flow-server/internal/service"
)

// PINHeader carries the shared PIN on every /v1 request.
const PINHeader = "X-Flow-Pin"

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	PIN     string
	Service *service.Service

	server *http.Server
}

func NewRest(logger *logrus.Logger, port string, pin string, svc *service.Service) *Rest {
	r := &Rest{Logger: logger, Port: port, PIN: pin, Service: svc}
	r.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r.Routes(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
	return r
}

// Routes builds the mux serving /status and every /v1 operation.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Service.Workspace)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Flow Server", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	api.UseMiddleware(requirePIN(api, r.PIN))

	ledger.NewGetLedgerHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	journal.NewGetJournalHandler(r.Service.Journal).Register(api)
	journal.NewSaveEntryHandler(r.Service.Journal).Register(api)
	habit.NewStreaksHandler(r.Service.Journal).Register(api)
	habit.NewFlowHandler(r.Service.Journal).Register(api)
	habit.NewCalendarHandler(r.Service.Journal).Register(api)
	habit.NewNextRatingHandler().Register(api)
	sync.NewRefreshHandler(r.Service.Workspace).Register(api)

	return mux
}

// requirePIN rejects operations whose PIN header does not match. An empty PIN disables the check.
func requirePIN(api huma.API, pin string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if pin == "" || subtle.ConstantTimeCompare([]byte(ctx.Header(PINHeader)), []byte(pin)) == 1 {
			next(ctx)
			return
		}
		_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing or incorrect PIN")
	}
}

func (r *Rest) Serve() {
	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
