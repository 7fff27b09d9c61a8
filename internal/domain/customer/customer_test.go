package customer

import (
	"testing"

	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := NewCustomer("Camila", "Cavalcante", "28475934625", "camila@email.com",
		decimal.NewFromInt(1000), "12345", Address{ZipCode: "12345-000", Street: "Rua da Cami, 123"})
	require.NoError(t, err)
	return c
}

func TestNewCustomer_Success(t *testing.T) {
	c := makeCustomer(t)

	assert.Equal(t, int64(0), c.ID, "id is assigned by the store")
	assert.Equal(t, "Camila", c.FirstName)
	assert.Equal(t, "Cavalcante", c.LastName)
	assert.Equal(t, "28475934625", c.CPF)
	assert.Equal(t, "camila@email.com", c.Email)
	assert.True(t, c.Income.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "12345-000", c.Address.ZipCode)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestNewCustomer_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		cpf       string
		email     string
		wantField string
	}{
		{"empty first name", "", "Cavalcante", "28475934625", "camila@email.com", "firstName"},
		{"empty last name", "Camila", "", "28475934625", "camila@email.com", "lastName"},
		{"empty cpf", "Camila", "Cavalcante", "", "camila@email.com", "cpf"},
		{"empty email", "Camila", "Cavalcante", "28475934625", "", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.firstName, tt.lastName, tt.cpf, tt.email,
				decimal.NewFromInt(1000), "12345", Address{})
			require.Error(t, err)

			var ve *domainErrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewCustomer_NegativeIncome(t *testing.T) {
	_, err := NewCustomer("Camila", "Cavalcante", "28475934625", "camila@email.com",
		decimal.NewFromInt(-1), "12345", Address{})
	require.Error(t, err)

	var ve *domainErrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "income", ve.Field)
}

func TestApply_PatchesOnlyPresentFields(t *testing.T) {
	c := makeCustomer(t)
	first := "CamilaUpdated"
	income := decimal.NewFromInt(5000)

	err := c.Apply(Patch{FirstName: &first, Income: &income})
	require.NoError(t, err)

	assert.Equal(t, "CamilaUpdated", c.FirstName)
	assert.True(t, c.Income.Equal(decimal.NewFromInt(5000)))
	// Untouched fields keep their values.
	assert.Equal(t, "Cavalcante", c.LastName)
	assert.Equal(t, "12345-000", c.Address.ZipCode)
	assert.Equal(t, "Rua da Cami, 123", c.Address.Street)
}

func TestApply_NeverTouchesCPFOrEmail(t *testing.T) {
	c := makeCustomer(t)
	first := "Other"
	last := "Name"
	zip := "99999-999"
	street := "Rua Nova, 1"
	income := decimal.NewFromInt(1)

	err := c.Apply(Patch{FirstName: &first, LastName: &last, Income: &income, ZipCode: &zip, Street: &street})
	require.NoError(t, err)

	assert.Equal(t, "28475934625", c.CPF)
	assert.Equal(t, "camila@email.com", c.Email)
	assert.Equal(t, "12345", c.Password)
}

func TestApply_RejectsEmptyAndNegative(t *testing.T) {
	c := makeCustomer(t)

	empty := ""
	err := c.Apply(Patch{FirstName: &empty})
	assert.Error(t, err)

	neg := decimal.NewFromInt(-10)
	err = c.Apply(Patch{Income: &neg})
	assert.Error(t, err)
	assert.True(t, c.Income.Equal(decimal.NewFromInt(1000)), "failed patch leaves income unchanged")
}
