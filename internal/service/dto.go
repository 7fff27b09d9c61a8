package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest holds the validated input for registering a customer.
type CreateCustomerRequest struct {
	FirstName string
	LastName  string
	CPF       string
	Email     string
	Income    decimal.Decimal
	Password  string
	ZipCode   string
	Street    string
}

// UpdateCustomerRequest holds the mutable fields of a customer update.
// Nil fields are left unchanged; cpf and email are never updatable.
type UpdateCustomerRequest struct {
	FirstName *string
	LastName  *string
	Income    *decimal.Decimal
	ZipCode   *string
	Street    *string
}

// CreateCreditRequest holds the validated input for a credit application.
type CreateCreditRequest struct {
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	CustomerID           int64
}
