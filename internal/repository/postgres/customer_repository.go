package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cassiomorais/credits/internal/domain/customer"
	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// scanner is the common subset of pgx.Row and pgx.Rows used by the scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// CustomerRepository implements customer.Repository using PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) db(ctx context.Context) DBTX {
	return ConnFromCtx(ctx, r.pool)
}

func scanCustomer(s scanner) (*customer.Customer, error) {
	c := &customer.Customer{}
	var incomeStr string
	err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.CPF, &c.Email, &incomeStr,
		&c.Password, &c.Address.ZipCode, &c.Address.Street, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	income, err := decimal.NewFromString(incomeStr)
	if err != nil {
		return nil, fmt.Errorf("parse income: %w", err)
	}
	c.Income = income
	return c, nil
}

// Create inserts a new customer. A cpf or email collision surfaces as a
// ConflictError naming the violating field; the row is not inserted.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	err := r.db(ctx).QueryRow(ctx,
		`INSERT INTO customers (first_name, last_name, cpf, email, income, password, zip_code, street, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		c.FirstName, c.LastName, c.CPF, c.Email, c.Income.String(), c.Password,
		c.Address.ZipCode, c.Address.Street, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return domainErrors.NewConflictError(field)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by its ID. Returns nil, nil when absent.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	return scanCustomer(r.db(ctx).QueryRow(ctx,
		`SELECT id, first_name, last_name, cpf, email, income, password, zip_code, street, created_at, updated_at
		 FROM customers WHERE id = $1`, id))
}

// Update persists the mutable fields. cpf and email are deliberately absent
// from the SET list.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	_, err := r.db(ctx).Exec(ctx,
		`UPDATE customers SET first_name = $1, last_name = $2, income = $3, zip_code = $4, street = $5, updated_at = $6
		 WHERE id = $7`,
		c.FirstName, c.LastName, c.Income.String(), c.Address.ZipCode, c.Address.Street, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer row.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db(ctx).Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// uniqueViolationField maps a unique-violation error to the conflicting field.
func uniqueViolationField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return "", false
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "cpf"):
		return "cpf", true
	case strings.Contains(pgErr.ConstraintName, "email"):
		return "email", true
	default:
		return "", true
	}
}
