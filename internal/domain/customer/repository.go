package customer

import "context"

// Repository defines the interface for customer persistence
type Repository interface {
	// Create inserts a new customer and assigns its ID
	Create(ctx context.Context, c *Customer) error

	// GetByID retrieves a customer by ID
	GetByID(ctx context.Context, id int64) (*Customer, error)

	// Update persists the mutable fields of an existing customer
	Update(ctx context.Context, c *Customer) error

	// Delete removes a customer by ID
	Delete(ctx context.Context, id int64) error
}
