package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_StatusMapping(t *testing.T) {
	multi := &domainErrors.ValidationErrors{}
	multi.Add("firstName", "must not be empty")
	multi.Add("email", "must be a well-formed email address")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
		wantExc    string
	}{
		{"validation errors", multi, http.StatusBadRequest, titleBadRequest, "ValidationError"},
		{"single validation error", domainErrors.NewValidationError("income", "must be greater than or equal to 0"), http.StatusBadRequest, titleBadRequest, "ValidationError"},
		{"business error", domainErrors.NewBusinessError("Id %d not found", 7), http.StatusBadRequest, titleBadRequest, "BusinessError"},
		{"conflict error", domainErrors.NewConflictError("cpf"), http.StatusConflict, titleConflict, "ConflictError"},
		{"illegal state error", domainErrors.NewIllegalStateError("Contact admin"), http.StatusInternalServerError, titleInternal, "IllegalStateError"},
		{"unknown error", errors.New("pgx: connection refused"), http.StatusInternalServerError, titleInternal, "InternalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantTitle, resp.Title)
			assert.Equal(t, tt.wantExc, resp.Exception)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestWriteError_UnknownErrorIsSanitized(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "internal server error", resp.Details["message"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestWriteError_ValidationErrorsListEveryField(t *testing.T) {
	errs := &domainErrors.ValidationErrors{}
	errs.Add("firstName", "must not be empty")
	errs.Add("lastName", "must not be empty")
	errs.Add("email", "must be a well-formed email address")

	rec := httptest.NewRecorder()
	writeError(rec, errs)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Details, 3)
	assert.Equal(t, "must not be empty", resp.Details["firstName"])
	assert.Equal(t, "must not be empty", resp.Details["lastName"])
	assert.Equal(t, "must be a well-formed email address", resp.Details["email"])
}

func TestDecodeAndValidate_CollectsEveryFailingField(t *testing.T) {
	body := `{"firstName":"","lastName":"","cpf":"","email":"nope","income":-1,"password":"","zipCode":"","street":""}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))

	var dst CreateCustomerRequest
	err := decodeAndValidate(req, &dst)
	require.Error(t, err)

	var errs *domainErrors.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.Fields()
	assert.Equal(t, "must not be empty", fields["firstName"])
	assert.Equal(t, "must not be empty", fields["lastName"])
	assert.Equal(t, "must not be empty", fields["cpf"])
	assert.Equal(t, "must be a well-formed email address", fields["email"])
	assert.Equal(t, "must be greater than or equal to 0", fields["income"])
	assert.Equal(t, "must not be empty", fields["password"])
	assert.Equal(t, "must not be empty", fields["zipCode"])
	assert.Equal(t, "must not be empty", fields["street"])
}

func TestDecodeAndValidate_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader("{not json"))

	var dst CreateCustomerRequest
	err := decodeAndValidate(req, &dst)

	var ve *domainErrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "body", ve.Field)
}

func TestDecodeAndValidate_ValidPayload(t *testing.T) {
	body := `{"creditValue":500,"dayFirstInstallment":"2026-10-01","numberOfInstallments":12,"customerId":1}`
	req := httptest.NewRequest(http.MethodPost, "/credits", strings.NewReader(body))

	var dst CreateCreditRequest
	require.NoError(t, decodeAndValidate(req, &dst))
	assert.Equal(t, 12, dst.NumberOfInstallments)
	assert.Equal(t, int64(1), dst.CustomerID)
}
