package handlers

import (
	"errors"
	"net/http"

	"github.com/dvloznov/bank-middleware-mock/internal/api/middleware"
	"github.com/dvloznov/bank-middleware-mock/internal/domain"
	"github.com/dvloznov/bank-middleware-mock/internal/logger"
	"github.com/dvloznov/bank-middleware-mock/internal/statement"
)

// StatementGenerator produces statement records for a request.
type StatementGenerator interface {
	Generate(req statement.Request) ([]domain.TransactionRecord, error)
}

// StatementHandler serves the transaction-charge statement endpoint.
type StatementHandler struct {
	generator            StatementGenerator
	includeAccountNumber bool
}

// NewStatementHandler creates a new statement handler. When includeAccountNumber is
// false, Account_Number is left out of the returned records.
func NewStatementHandler(generator StatementGenerator, includeAccountNumber bool) *StatementHandler {
	return &StatementHandler{
		generator:            generator,
		includeAccountNumber: includeAccountNumber,
	}
}

// GetStatement handles POST /statement/v1/eq-dtxn-chrg and its eq-ltxn-chrg alias.
// It always answers 200; the business outcome is in metaData.status.
func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req, err := decodeStatementRequest(r)
	if err != nil {
		log.Debug().Err(err).Msg("Rejected statement request body")
		middleware.WriteJSON(w, http.StatusOK, domain.NewStatementFailure(domain.StatusCodeBadRequest, "Invalid request body"))
		return
	}

	records, err := h.generator.Generate(req)
	if err != nil {
		var rangeErr *statement.RangeError
		var fmtErr *statement.DateFormatError
		switch {
		case errors.As(err, &rangeErr), errors.As(err, &fmtErr):
			log.Debug().
				Str("from_date", req.FromDate).
				Str("to_date", req.ToDate).
				Str("reason", err.Error()).
				Msg("Statement window rejected")
			middleware.WriteJSON(w, http.StatusOK, domain.NewStatementFailure(domain.StatusCodeBadRequest, err.Error()))
		default:
			log.Error().Err(err).Msg("Failed to generate statement")
			middleware.WriteError(w, http.StatusInternalServerError, "Failed to generate statement")
		}
		return
	}

	if !h.includeAccountNumber {
		for i := range records {
			records[i].AccountNumber = ""
		}
	}

	log.Debug().
		Str("account_number", req.AccountNumber).
		Int("count", len(records)).
		Msg("Statement generated")

	middleware.WriteJSON(w, http.StatusOK, domain.NewStatementSuccess(records))
}
