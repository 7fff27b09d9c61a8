package testutil

import (
	"time"

	"github.com/cassiomorais/credits/internal/domain/credit"
	"github.com/cassiomorais/credits/internal/domain/customer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func NewTestCustomer(cpf, email string) *customer.Customer {
	now := time.Now()
	return &customer.Customer{
		FirstName: "Camila",
		LastName:  "Cavalcante",
		CPF:       cpf,
		Email:     email,
		Income:    decimal.NewFromInt(1000),
		Password:  "12345",
		Address: customer.Address{
			ZipCode: "12345-000",
			Street:  "Rua da Cami, 123",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewTestCredit(customerID int64, dayFirstInstallment time.Time) *credit.Credit {
	return &credit.Credit{
		CreditCode:           uuid.New(),
		CreditValue:          decimal.NewFromInt(1000),
		DayFirstInstallment:  dayFirstInstallment,
		NumberOfInstallments: 24,
		Status:               credit.StatusInProgress,
		CustomerID:           customerID,
		CreatedAt:            time.Now(),
	}
}
