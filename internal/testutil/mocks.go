package testutil

import (
	"context"
	"sync"

	"github.com/cassiomorais/credits/internal/domain/credit"
	"github.com/cassiomorais/credits/internal/domain/customer"
	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/google/uuid"
)

// --- Customer Repository Mock ---

// MockCustomerRepository is a mock implementation of customer.Repository.
type MockCustomerRepository struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]*customer.Customer
	byCPF     map[string]int64
	byEmail   map[string]int64

	CreateFunc  func(ctx context.Context, c *customer.Customer) error
	GetByIDFunc func(ctx context.Context, id int64) (*customer.Customer, error)
	UpdateFunc  func(ctx context.Context, c *customer.Customer) error
	DeleteFunc  func(ctx context.Context, id int64) error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[int64]*customer.Customer),
		byCPF:     make(map[string]int64),
		byEmail:   make(map[string]int64),
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byCPF[c.CPF]; ok {
		return domainErrors.NewConflictError("cpf")
	}
	if _, ok := m.byEmail[c.Email]; ok {
		return domainErrors.NewConflictError("email")
	}
	m.nextID++
	c.ID = m.nextID
	m.customers[c.ID] = c
	m.byCPF[c.CPF] = c.ID
	m.byEmail[c.Email] = c.ID
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil
	}
	delete(m.byCPF, c.CPF)
	delete(m.byEmail, c.Email)
	delete(m.customers, id)
	return nil
}

// AddCustomer seeds a customer, assigning an ID when it has none.
func (m *MockCustomerRepository) AddCustomer(c *customer.Customer) *customer.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == 0 {
		m.nextID++
		c.ID = m.nextID
	} else if c.ID > m.nextID {
		m.nextID = c.ID
	}
	m.customers[c.ID] = c
	m.byCPF[c.CPF] = c.ID
	m.byEmail[c.Email] = c.ID
	return c
}

// GetCustomer reads the stored customer directly, bypassing the interface.
func (m *MockCustomerRepository) GetCustomer(id int64) *customer.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customers[id]
}

// --- Credit Repository Mock ---

// MockCreditRepository is a mock implementation of credit.Repository.
type MockCreditRepository struct {
	mu      sync.Mutex
	nextID  int64
	credits []*credit.Credit

	CreateFunc             func(ctx context.Context, c *credit.Credit) error
	GetByCreditCodeFunc    func(ctx context.Context, code uuid.UUID) (*credit.Credit, error)
	ListByCustomerIDFunc   func(ctx context.Context, customerID int64) ([]*credit.Credit, error)
	DeleteByCustomerIDFunc func(ctx context.Context, customerID int64) error
}

func NewMockCreditRepository() *MockCreditRepository {
	return &MockCreditRepository{}
}

func (m *MockCreditRepository) Create(ctx context.Context, c *credit.Credit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.credits = append(m.credits, c)
	return nil
}

func (m *MockCreditRepository) GetByCreditCode(ctx context.Context, code uuid.UUID) (*credit.Credit, error) {
	if m.GetByCreditCodeFunc != nil {
		return m.GetByCreditCodeFunc(ctx, code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.credits {
		if c.CreditCode == code {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCreditRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	if m.ListByCustomerIDFunc != nil {
		return m.ListByCustomerIDFunc(ctx, customerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var owned []*credit.Credit
	for _, c := range m.credits {
		if c.CustomerID == customerID {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

func (m *MockCreditRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	if m.DeleteByCustomerIDFunc != nil {
		return m.DeleteByCustomerIDFunc(ctx, customerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.credits[:0]
	for _, c := range m.credits {
		if c.CustomerID != customerID {
			kept = append(kept, c)
		}
	}
	m.credits = kept
	return nil
}

// Count returns how many credits are stored.
func (m *MockCreditRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.credits)
}

// --- Transaction Manager Mock ---

// MockTxManager runs the function directly; there is no real transaction.
type MockTxManager struct {
	WithTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
	Calls               int
}

func (m *MockTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.WithTransactionFunc != nil {
		return m.WithTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}
