package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cassiomorais/credits/internal/domain/credit"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CreditRepository implements credit.Repository using PostgreSQL.
type CreditRepository struct {
	pool *pgxpool.Pool
}

// NewCreditRepository creates a new CreditRepository.
func NewCreditRepository(pool *pgxpool.Pool) *CreditRepository {
	return &CreditRepository{pool: pool}
}

func (r *CreditRepository) db(ctx context.Context) DBTX {
	return ConnFromCtx(ctx, r.pool)
}

func scanCredit(s scanner) (*credit.Credit, error) {
	c := &credit.Credit{}
	var (
		valueStr string
		status   string
		day      time.Time
	)
	err := s.Scan(&c.ID, &c.CreditCode, &valueStr, &day, &c.NumberOfInstallments, &status, &c.CustomerID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan credit: %w", err)
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("parse credit value: %w", err)
	}
	c.CreditValue = value
	c.DayFirstInstallment = day
	c.Status = credit.Status(status)
	return c, nil
}

// Create inserts a new credit.
func (r *CreditRepository) Create(ctx context.Context, c *credit.Credit) error {
	err := r.db(ctx).QueryRow(ctx,
		`INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		c.CreditCode, c.CreditValue.String(), c.DayFirstInstallment, c.NumberOfInstallments,
		string(c.Status), c.CustomerID, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert credit: %w", err)
	}
	return nil
}

// GetByCreditCode retrieves a credit by code regardless of owner.
func (r *CreditRepository) GetByCreditCode(ctx context.Context, code uuid.UUID) (*credit.Credit, error) {
	return scanCredit(r.db(ctx).QueryRow(ctx,
		`SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at
		 FROM credits WHERE credit_code = $1`, code))
}

// ListByCustomerID retrieves a customer's credits in insertion order.
func (r *CreditRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at
		 FROM credits WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	defer rows.Close()

	var credits []*credit.Credit
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, err
		}
		credits = append(credits, c)
	}
	return credits, rows.Err()
}

// DeleteByCustomerID removes every credit owned by a customer.
func (r *CreditRepository) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	_, err := r.db(ctx).Exec(ctx, `DELETE FROM credits WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete credits: %w", err)
	}
	return nil
}
