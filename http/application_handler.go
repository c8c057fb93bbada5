package http

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"loan-decision/domain"
	"loan-decision/service"
)

type ApplicationProcessor interface {
	Process(application *domain.LoanApplication) error
}

type ApplicationHandler struct {
	// The processor reads the scorer's result after calculating it, so passes
	// sharing the same capabilities must not interleave.
	mu        sync.Mutex
	processor ApplicationProcessor
}

func NewApplicationHandler(processor ApplicationProcessor) *ApplicationHandler {
	return &ApplicationHandler{processor: processor}
}

type productRequest struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

type amountRequest struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

type processApplicationRequest struct {
	ID               int             `json:"id"`
	Product          productRequest  `json:"product"`
	Amount           amountRequest   `json:"amount"`
	ApplicantName    string          `json:"applicant_name"`
	ApplicantAge     int             `json:"applicant_age"`
	ApplicantAddress string          `json:"applicant_address"`
	ApplicantSalary  decimal.Decimal `json:"applicant_salary"`
}

type processApplicationResponse struct {
	ID       int            `json:"id"`
	Outcome  domain.Outcome `json:"outcome"`
	Accepted bool           `json:"accepted"`
}

func (h *ApplicationHandler) ProcessApplication(w http.ResponseWriter, r *http.Request) {
	logger := LoggerFromContext(r.Context())

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input processApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	amount, err := domain.NewLoanAmount(input.Amount.Currency, input.Amount.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	application := domain.NewLoanApplication(
		input.ID,
		domain.NewLoanProduct(input.Product.ID, input.Product.Name, input.Product.InterestRate),
		amount,
		input.ApplicantName,
		input.ApplicantAge,
		input.ApplicantAddress,
		input.ApplicantSalary,
	)

	h.mu.Lock()
	err = h.processor.Process(application)
	h.mu.Unlock()

	if err != nil {
		logger.ErrorContext(r.Context(), "could not process loan application",
			"application_id", application.ID(), "error", err.Error())
		if errors.Is(err, service.ErrIdentityVerification) {
			http.Error(w, "identity verification unavailable", http.StatusBadGateway)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(processApplicationResponse{
		ID:       application.ID(),
		Outcome:  application.Outcome(),
		Accepted: application.IsAccepted(),
	}); err != nil {
		logger.WarnContext(r.Context(), "could not write response", "error", err.Error())
	}
}
