package service

import (
	"context"
	"time"

	"github.com/cassiomorais/credits/internal/domain/credit"
	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/google/uuid"
)

// CreditService creates and queries credits. Credit creation first checks the
// installment-date window, then resolves the owning customer through
// CustomerService; nothing is persisted when either check fails.
type CreditService struct {
	creditRepo      credit.Repository
	customerService *CustomerService
	now             func() time.Time
}

func NewCreditService(creditRepo credit.Repository, customerService *CustomerService) *CreditService {
	return &CreditService{
		creditRepo:      creditRepo,
		customerService: customerService,
		now:             time.Now,
	}
}

func (s *CreditService) Create(ctx context.Context, req CreateCreditRequest) (*credit.Credit, error) {
	if !credit.ValidDayFirstInstallment(req.DayFirstInstallment, s.now()) {
		return nil, domainErrors.NewBusinessError("Invalid Date")
	}

	c, err := credit.NewCredit(req.CreditValue, req.DayFirstInstallment, req.NumberOfInstallments, req.CustomerID)
	if err != nil {
		return nil, err
	}

	owner, err := s.customerService.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	c.Customer = owner

	if err := s.creditRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// FindAllByCustomer returns the customer's credits in insertion order.
// Zero results is not a failure.
func (s *CreditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	return s.creditRepo.ListByCustomerID(ctx, customerID)
}

// FindByCreditCode looks a credit up by code alone and then verifies the
// supplied customer actually owns it. A valid code presented with the wrong
// customer is an anomaly, not an ordinary not-found.
func (s *CreditService) FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*credit.Credit, error) {
	c, err := s.creditRepo.GetByCreditCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domainErrors.NewBusinessError("Credit code %s not found", code)
	}
	if c.CustomerID != customerID {
		return nil, domainErrors.NewIllegalStateError("Contact admin")
	}

	owner, err := s.customerService.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	c.Customer = owner
	return c, nil
}
