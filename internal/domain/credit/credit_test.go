package credit

import (
	"testing"
	"time"

	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredit_Success(t *testing.T) {
	day := time.Now().AddDate(0, 2, 0)
	c, err := NewCredit(decimal.NewFromInt(1000), day, 24, 1)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, c.CreditCode, "credit code is generated at construction")
	assert.Equal(t, StatusInProgress, c.Status)
	assert.True(t, c.CreditValue.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 24, c.NumberOfInstallments)
	assert.Equal(t, int64(1), c.CustomerID)
}

func TestNewCredit_UniqueCodes(t *testing.T) {
	day := time.Now().AddDate(0, 2, 0)
	a, err := NewCredit(decimal.NewFromInt(1000), day, 24, 1)
	require.NoError(t, err)
	b, err := NewCredit(decimal.NewFromInt(1000), day, 24, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a.CreditCode, b.CreditCode)
}

func TestNewCredit_Invalid(t *testing.T) {
	day := time.Now().AddDate(0, 2, 0)

	tests := []struct {
		name         string
		value        decimal.Decimal
		installments int
		customerID   int64
		wantField    string
	}{
		{"zero value", decimal.Zero, 24, 1, "creditValue"},
		{"negative value", decimal.NewFromInt(-100), 24, 1, "creditValue"},
		{"zero installments", decimal.NewFromInt(1000), 0, 1, "numberOfInstallments"},
		{"too many installments", decimal.NewFromInt(1000), 49, 1, "numberOfInstallments"},
		{"zero customer id", decimal.NewFromInt(1000), 24, 0, "customerId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCredit(tt.value, day, tt.installments, tt.customerID)
			require.Error(t, err)

			var ve *domainErrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewCredit_MaxInstallmentsBoundary(t *testing.T) {
	day := time.Now().AddDate(0, 2, 0)

	c, err := NewCredit(decimal.NewFromInt(1000), day, 48, 1)
	require.NoError(t, err)
	assert.Equal(t, 48, c.NumberOfInstallments)
}

func TestValidDayFirstInstallment(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"tomorrow", now.AddDate(0, 0, 1), true},
		{"two months out", now.AddDate(0, 2, 0), true},
		{"just under three months", now.AddDate(0, 3, 0).Add(-time.Second), true},
		{"now itself", now, false},
		{"yesterday", now.AddDate(0, 0, -1), false},
		{"exactly three months", now.AddDate(0, 3, 0), false},
		{"five months out", now.AddDate(0, 5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDayFirstInstallment(tt.day, now))
		})
	}
}
