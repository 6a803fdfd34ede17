// Package api wires the HTTP routes of the banking middleware mock.
package api

import (
	"net/http"
	"time"

	"github.com/dvloznov/bank-middleware-mock/internal/api/handlers"
	"github.com/dvloznov/bank-middleware-mock/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Route paths served by the mock.
const (
	StatementPath      = "/statement/v1/eq-dtxn-chrg"
	StatementAliasPath = "/statement/v1/eq-ltxn-chrg"
	ComplaintPath      = "/chatbot/v1/ct-complaint-cgrs"
	LoanPath           = "/enquiry/v1/eq-ln-dtl"
	ChequeBookPath     = "/cheque-service/v1/eq-chkbk-sts"
	HealthPath         = "/health"
)

// NewRouter builds the handler tree with the middleware chain applied.
func NewRouter(statements *handlers.StatementHandler, fixtures *handlers.FixturesHandler, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Post(StatementPath, statements.GetStatement)
	r.Post(StatementAliasPath, statements.GetStatement)

	r.Post(ComplaintPath, fixtures.RegisterComplaint)
	r.Post(LoanPath, fixtures.GetLoanDetails)
	r.Post(ChequeBookPath, fixtures.TrackChequeBook)

	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return r
}
