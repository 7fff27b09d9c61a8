package controller

import (
	"net/http"
	"strconv"
	"time"

	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/cassiomorais/credits/internal/infrastructure/observability"
	"github.com/cassiomorais/credits/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditController struct {
	creditService *service.CreditService
	metrics       *observability.Metrics
}

func NewCreditController(creditService *service.CreditService, metrics *observability.Metrics) *CreditController {
	return &CreditController{creditService: creditService, metrics: metrics}
}

func (h *CreditController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCreditRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.metrics.CreditsRejected.WithLabelValues("validation").Inc()
		writeError(w, err)
		return
	}

	day, err := time.ParseInLocation(dateLayout, req.DayFirstInstallment, time.Local)
	if err != nil {
		h.metrics.CreditsRejected.WithLabelValues("validation").Inc()
		writeError(w, domainErrors.NewValidationError("dayFirstInstallment", "must be a valid date in format "+dateLayout))
		return
	}
	// Declarative future-date check, before the service's horizon rule runs.
	if !day.After(time.Now()) {
		h.metrics.CreditsRejected.WithLabelValues("validation").Inc()
		writeError(w, domainErrors.NewValidationError("dayFirstInstallment", "must be a future date"))
		return
	}

	c, err := h.creditService.Create(r.Context(), service.CreateCreditRequest{
		CreditValue:          decimal.NewFromFloat(req.CreditValue),
		DayFirstInstallment:  day,
		NumberOfInstallments: req.NumberOfInstallments,
		CustomerID:           req.CustomerID,
	})
	if err != nil {
		h.metrics.CreditsRejected.WithLabelValues(rejectionReason(err)).Inc()
		writeError(w, err)
		return
	}

	h.metrics.CreditsCreated.Inc()
	writeJSON(w, http.StatusCreated, FromCredit(c))
}

func (h *CreditController) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(r.URL.Query().Get("customerId"), 10, 64)
	if err != nil {
		writeError(w, domainErrors.NewValidationError("customerId", "must be an integer"))
		return
	}

	credits, err := h.creditService.FindAllByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]*CreditSummaryResponse, 0, len(credits))
	for _, c := range credits {
		resp = append(resp, FromCreditSummary(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CreditController) Get(w http.ResponseWriter, r *http.Request) {
	code, err := uuid.Parse(chi.URLParam(r, "creditCode"))
	if err != nil {
		writeError(w, domainErrors.NewValidationError("creditCode", "must be a valid UUID"))
		return
	}
	customerID, err := strconv.ParseInt(r.URL.Query().Get("customerId"), 10, 64)
	if err != nil {
		writeError(w, domainErrors.NewValidationError("customerId", "must be an integer"))
		return
	}

	c, err := h.creditService.FindByCreditCode(r.Context(), customerID, code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromCredit(c))
}

func rejectionReason(err error) string {
	switch err.(type) {
	case *domainErrors.BusinessError:
		return "business_rule"
	case *domainErrors.ValidationError, *domainErrors.ValidationErrors:
		return "validation"
	default:
		return "error"
	}
}
