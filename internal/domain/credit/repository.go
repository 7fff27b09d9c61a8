package credit

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for credit persistence
type Repository interface {
	// Create inserts a new credit and assigns its ID
	Create(ctx context.Context, c *Credit) error

	// GetByCreditCode retrieves a credit by its code regardless of owner.
	// Returns nil, nil when no credit carries the code.
	GetByCreditCode(ctx context.Context, code uuid.UUID) (*Credit, error)

	// ListByCustomerID retrieves all credits owned by a customer in
	// insertion order
	ListByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)

	// DeleteByCustomerID removes every credit owned by a customer
	DeleteByCustomerID(ctx context.Context, customerID int64) error
}
