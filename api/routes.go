package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/budget"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/category"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve(ctx context.Context) error {
	statusHandler := status.NewHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaConfig := huma.DefaultConfig("ledger-server", "1.0.0")
	api := humago.New(mux, humaConfig)
	api.UseMiddleware(
		logging.NewMiddleware(r.Logger),
		identity.NewMiddleware(api),
	)

	transaction.NewCreateTransactionHandler(r.Operator).Register(api)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(api)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)

	account.NewCreateAccountHandler(r.Operator).Register(api)
	account.NewUpdateAccountHandler(r.Operator).Register(api)
	account.NewDeleteAccountHandler(r.Operator).Register(api)
	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewGetBillHandler(r.Service.Account).Register(api)

	budget.NewCreateBudgetHandler(r.Operator).Register(api)
	budget.NewDeleteBudgetHandler(r.Operator).Register(api)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(api)

	category.NewCreateCategoryHandler(r.Operator).Register(api)
	category.NewDeleteCategoryHandler(r.Operator).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)

	dashboard.NewGetDashboardHandler(r.Service.Dashboard).Register(api)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(10)*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
