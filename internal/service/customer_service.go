package service

import (
	"context"

	"github.com/cassiomorais/credits/internal/domain/credit"
	"github.com/cassiomorais/credits/internal/domain/customer"
	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
)

// CustomerService owns the customer lifecycle and the "customer exists"
// invariant used by every component that resolves a customer reference.
type CustomerService struct {
	customerRepo customer.Repository
	creditRepo   credit.Repository
	txManager    TransactionManager
}

func NewCustomerService(customerRepo customer.Repository, creditRepo credit.Repository, txManager TransactionManager) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		creditRepo:   creditRepo,
		txManager:    txManager,
	}
}

func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*customer.Customer, error) {
	c, err := customer.NewCustomer(
		req.FirstName,
		req.LastName,
		req.CPF,
		req.Email,
		req.Income,
		req.Password,
		customer.Address{ZipCode: req.ZipCode, Street: req.Street},
	)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// FindByID resolves a customer or fails with a business error naming the id.
func (s *CustomerService) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domainErrors.NewBusinessError("Id %d not found", id)
	}
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*customer.Customer, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch := customer.Patch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Income:    req.Income,
		ZipCode:   req.ZipCode,
		Street:    req.Street,
	}
	if err := c.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the customer and all of its credits in a single transaction.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.creditRepo.DeleteByCustomerID(txCtx, id); err != nil {
			return err
		}
		return s.customerRepo.Delete(txCtx, id)
	})
}
