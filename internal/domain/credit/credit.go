package credit

import (
	"time"

	"github.com/cassiomorais/credits/internal/domain/customer"
	"github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a credit application.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

// MaxInstallments is the largest accepted number of installments.
const MaxInstallments = 48

// Credit is a loan record owned by exactly one customer. The credit code is
// assigned at construction and never reassigned; everything but the status is
// immutable after creation.
type Credit struct {
	ID                   int64
	CreditCode           uuid.UUID
	CreditValue          decimal.Decimal
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	Status               Status
	CustomerID           int64
	Customer             *customer.Customer // resolved owner, set by the service
	CreatedAt            time.Time
}

func NewCredit(creditValue decimal.Decimal, dayFirstInstallment time.Time, numberOfInstallments int, customerID int64) (*Credit, error) {
	if !creditValue.IsPositive() {
		return nil, errors.NewValidationError("creditValue", "must be greater than 0")
	}
	if numberOfInstallments < 1 {
		return nil, errors.NewValidationError("numberOfInstallments", "must be greater than or equal to 1")
	}
	if numberOfInstallments > MaxInstallments {
		return nil, errors.NewValidationError("numberOfInstallments", "must be less than or equal to 48")
	}
	if customerID <= 0 {
		return nil, errors.NewValidationError("customerId", "must be greater than 0")
	}

	return &Credit{
		CreditCode:           uuid.New(),
		CreditValue:          creditValue,
		DayFirstInstallment:  dayFirstInstallment,
		NumberOfInstallments: numberOfInstallments,
		Status:               StatusInProgress,
		CustomerID:           customerID,
		CreatedAt:            time.Now(),
	}, nil
}

// ValidDayFirstInstallment reports whether the first installment date is
// strictly after now and strictly before three calendar months from now.
// Both boundaries reject: today is never acceptable, and exactly three
// months out is too far.
func ValidDayFirstInstallment(day, now time.Time) bool {
	return day.After(now) && day.Before(now.AddDate(0, 3, 0))
}
