package controller

import (
	"time"

	"github.com/cassiomorais/credits/internal/domain/credit"
	"github.com/cassiomorais/credits/internal/domain/customer"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for installment dates.
const dateLayout = "2006-01-02"

// --- Request DTOs ---
// These DTOs handle HTTP/JSON concerns (float64 for money, string for dates,
// validation tags). Controllers convert them to service layer DTOs before
// calling business logic.

// CreateCustomerRequest holds the input for registering a customer.
type CreateCustomerRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	CPF       string  `json:"cpf" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Income    float64 `json:"income" validate:"gte=0"`
	Password  string  `json:"password" validate:"required"`
	ZipCode   string  `json:"zipCode" validate:"required"`
	Street    string  `json:"street" validate:"required"`
}

// UpdateCustomerRequest holds a partial update. Absent fields stay unchanged;
// cpf, email and password are not accepted here at all.
type UpdateCustomerRequest struct {
	FirstName *string  `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string  `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Income    *float64 `json:"income,omitempty" validate:"omitempty,gte=0"`
	ZipCode   *string  `json:"zipCode,omitempty"`
	Street    *string  `json:"street,omitempty"`
}

// CreateCreditRequest holds the input for a credit application.
type CreateCreditRequest struct {
	CreditValue          float64 `json:"creditValue" validate:"required,gt=0"`
	DayFirstInstallment  string  `json:"dayFirstInstallment" validate:"required,datetime=2006-01-02"`
	NumberOfInstallments int     `json:"numberOfInstallments" validate:"required,min=1,max=48"`
	CustomerID           int64   `json:"customerId" validate:"required,gt=0"`
}

// --- Response DTOs ---

// CustomerResponse represents a customer in API responses. The password is
// never echoed.
type CustomerResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	CPF       string  `json:"cpf"`
	Email     string  `json:"email"`
	Income    float64 `json:"income"`
	ZipCode   string  `json:"zipCode"`
	Street    string  `json:"street"`
}

// CreditResponse is the full credit view, including the owner's email and
// income.
type CreditResponse struct {
	CreditCode           string  `json:"creditCode"`
	CreditValue          float64 `json:"creditValue"`
	NumberOfInstallments int     `json:"numberOfInstallments"`
	Status               string  `json:"status"`
	EmailCustomer        string  `json:"emailCustomer"`
	IncomeCustomer       float64 `json:"incomeCustomer"`
}

// CreditSummaryResponse is the list item shape for a customer's credits.
type CreditSummaryResponse struct {
	CreditCode           string  `json:"creditCode"`
	CreditValue          float64 `json:"creditValue"`
	NumberOfInstallments int     `json:"numberOfInstallments"`
}

// ErrorResponse is the error body shape shared by every failure.
type ErrorResponse struct {
	Title     string            `json:"title"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Exception string            `json:"exception"`
	Details   map[string]string `json:"details"`
}

// --- Conversion helpers ---

// FromCustomer converts a domain customer to an API response.
func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CPF:       c.CPF,
		Email:     c.Email,
		Income:    c.Income.InexactFloat64(),
		ZipCode:   c.Address.ZipCode,
		Street:    c.Address.Street,
	}
}

// FromCredit converts a domain credit, with its resolved owner, to the full
// API view.
func FromCredit(c *credit.Credit) *CreditResponse {
	resp := &CreditResponse{
		CreditCode:           c.CreditCode.String(),
		CreditValue:          c.CreditValue.InexactFloat64(),
		NumberOfInstallments: c.NumberOfInstallments,
		Status:               string(c.Status),
	}
	if c.Customer != nil {
		resp.EmailCustomer = c.Customer.Email
		resp.IncomeCustomer = c.Customer.Income.InexactFloat64()
	}
	return resp
}

// FromCreditSummary converts a domain credit to the list item shape.
func FromCreditSummary(c *credit.Credit) *CreditSummaryResponse {
	return &CreditSummaryResponse{
		CreditCode:           c.CreditCode.String(),
		CreditValue:          c.CreditValue.InexactFloat64(),
		NumberOfInstallments: c.NumberOfInstallments,
	}
}

// incomeToDecimal converts the wire income to its decimal representation.
func incomeToDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
