package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError_Message(t *testing.T) {
	err := NewBusinessError("Id %d not found", 1000)
	assert.Equal(t, "Id 1000 not found", err.Error())
}

func TestConflictError_Message(t *testing.T) {
	assert.Equal(t, "cpf already registered", NewConflictError("cpf").Error())
	assert.Equal(t, "resource already registered", NewConflictError("").Error())
}

func TestIllegalStateError_Message(t *testing.T) {
	err := NewIllegalStateError("Contact admin")
	assert.Equal(t, "Contact admin", err.Error())
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("email", "must not be empty")
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestValidationErrors_CollectsAllFields(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())

	errs.Add("firstName", "must not be empty")
	errs.Add("income", "must be greater than or equal to 0")

	assert.True(t, errs.HasErrors())
	assert.Len(t, errs.Errors, 2)

	fields := errs.Fields()
	assert.Equal(t, "must not be empty", fields["firstName"])
	assert.Equal(t, "must be greater than or equal to 0", fields["income"])

	assert.Contains(t, errs.Error(), "firstName")
	assert.Contains(t, errs.Error(), "income")
}
