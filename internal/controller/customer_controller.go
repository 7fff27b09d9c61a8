package controller

import (
	"net/http"
	"strconv"

	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/cassiomorais/credits/internal/infrastructure/observability"
	"github.com/cassiomorais/credits/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type CustomerController struct {
	customerService *service.CustomerService
	metrics         *observability.Metrics
}

func NewCustomerController(customerService *service.CustomerService, metrics *observability.Metrics) *CustomerController {
	return &CustomerController{customerService: customerService, metrics: metrics}
}

func (h *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customerService.Create(r.Context(), service.CreateCustomerRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CPF:       req.CPF,
		Email:     req.Email,
		Income:    incomeToDecimal(req.Income),
		Password:  req.Password,
		ZipCode:   req.ZipCode,
		Street:    req.Street,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.CustomersCreated.Inc()
	writeJSON(w, http.StatusCreated, FromCustomer(c))
}

func (h *CustomerController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, domainErrors.NewValidationError("id", "must be an integer"))
		return
	}

	c, err := h.customerService.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromCustomer(c))
}

func (h *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("customerId"), 10, 64)
	if err != nil {
		writeError(w, domainErrors.NewValidationError("customerId", "must be an integer"))
		return
	}

	var req UpdateCustomerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var income *decimal.Decimal
	if req.Income != nil {
		d := incomeToDecimal(*req.Income)
		income = &d
	}

	c, err := h.customerService.Update(r.Context(), id, service.UpdateCustomerRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Income:    income,
		ZipCode:   req.ZipCode,
		Street:    req.Street,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FromCustomer(c))
}

func (h *CustomerController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, domainErrors.NewValidationError("id", "must be an integer"))
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	h.metrics.CustomersDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}
