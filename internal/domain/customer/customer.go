package customer

import (
	"time"

	"github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/shopspring/decimal"
)

// Address is a value type owned exclusively by one customer. It has no
// identity or lifecycle of its own.
type Address struct {
	ZipCode string
	Street  string
}

// Customer is the aggregate root of the credit domain. CPF and email are
// unique store-wide and immutable once the customer is persisted.
type Customer struct {
	ID        int64 // zero until persisted, assigned by the store
	FirstName string
	LastName  string
	CPF       string
	Email     string
	Income    decimal.Decimal
	Password  string // opaque, never exposed
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCustomer(firstName, lastName, cpf, email string, income decimal.Decimal, password string, address Address) (*Customer, error) {
	if firstName == "" {
		return nil, errors.NewValidationError("firstName", "cannot be empty")
	}
	if lastName == "" {
		return nil, errors.NewValidationError("lastName", "cannot be empty")
	}
	if cpf == "" {
		return nil, errors.NewValidationError("cpf", "cannot be empty")
	}
	if email == "" {
		return nil, errors.NewValidationError("email", "cannot be empty")
	}
	if income.IsNegative() {
		return nil, errors.NewValidationError("income", "cannot be negative")
	}

	now := time.Now()
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Email:     email,
		Income:    income,
		Password:  password,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Patch carries the mutable fields of an update. Nil means "leave unchanged".
// CPF, email and password are not patchable.
type Patch struct {
	FirstName *string
	LastName  *string
	Income    *decimal.Decimal
	ZipCode   *string
	Street    *string
}

// Apply copies the present patch fields onto the customer.
func (c *Customer) Apply(p Patch) error {
	if p.FirstName != nil {
		if *p.FirstName == "" {
			return errors.NewValidationError("firstName", "cannot be empty")
		}
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		if *p.LastName == "" {
			return errors.NewValidationError("lastName", "cannot be empty")
		}
		c.LastName = *p.LastName
	}
	if p.Income != nil {
		if p.Income.IsNegative() {
			return errors.NewValidationError("income", "cannot be negative")
		}
		c.Income = *p.Income
	}
	if p.ZipCode != nil {
		c.Address.ZipCode = *p.ZipCode
	}
	if p.Street != nil {
		c.Address.Street = *p.Street
	}
	c.UpdatedAt = time.Now()
	return nil
}
