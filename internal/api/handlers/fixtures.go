package handlers

import (
	"net/http"

	"github.com/dvloznov/bank-middleware-mock/internal/api/middleware"
	"github.com/dvloznov/bank-middleware-mock/internal/fixtures"
	"github.com/dvloznov/bank-middleware-mock/internal/logger"
)

// FixtureStore returns static documents by name.
type FixtureStore interface {
	Get(name fixtures.Name) ([]byte, bool)
}

// FixturesHandler serves the static complaint, loan and cheque-book documents.
type FixturesHandler struct {
	store FixtureStore
}

// NewFixturesHandler creates a new fixtures handler.
func NewFixturesHandler(store FixtureStore) *FixturesHandler {
	return &FixturesHandler{store: store}
}

// RegisterComplaint handles POST /chatbot/v1/ct-complaint-cgrs
func (h *FixturesHandler) RegisterComplaint(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, fixtures.Complaint)
}

// GetLoanDetails handles POST /enquiry/v1/eq-ln-dtl
func (h *FixturesHandler) GetLoanDetails(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, fixtures.Loan)
}

// TrackChequeBook handles POST /cheque-service/v1/eq-chkbk-sts
func (h *FixturesHandler) TrackChequeBook(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, fixtures.Cheque)
}

func (h *FixturesHandler) serve(w http.ResponseWriter, r *http.Request, name fixtures.Name) {
	doc, ok := h.store.Get(name)
	if !ok {
		log := logger.FromContext(r.Context())
		log.Error().Str("fixture", string(name)).Msg("Fixture not loaded")
		middleware.WriteError(w, http.StatusInternalServerError, "Fixture not available")
		return
	}
	middleware.WriteRawJSON(w, http.StatusOK, doc)
}
