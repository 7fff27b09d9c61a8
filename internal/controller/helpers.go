package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	domainErrors "github.com/cassiomorais/credits/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const (
	titleBadRequest = "Bad Request! Consult the documentation"
	titleConflict   = "Conflict! Consult the documentation"
	titleInternal   = "Internal Server Error! Consult the documentation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report failures under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorBody(w http.ResponseWriter, status int, title, exception string, details map[string]string) {
	writeJSON(w, status, ErrorResponse{
		Title:     title,
		Timestamp: time.Now().UTC(),
		Status:    status,
		Exception: exception,
		Details:   details,
	})
}

// writeError translates the closed failure taxonomy into HTTP statuses:
// validation and business failures are 400, conflicts 409, illegal states and
// everything unrecognized 500. Unrecognized errors are logged and sanitized.
func writeError(w http.ResponseWriter, err error) {
	var validationErrs *domainErrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeErrorBody(w, http.StatusBadRequest, titleBadRequest, "ValidationError", validationErrs.Fields())
		return
	}

	var validationErr *domainErrors.ValidationError
	if errors.As(err, &validationErr) {
		writeErrorBody(w, http.StatusBadRequest, titleBadRequest, "ValidationError",
			map[string]string{validationErr.Field: validationErr.Message})
		return
	}

	var businessErr *domainErrors.BusinessError
	if errors.As(err, &businessErr) {
		writeErrorBody(w, http.StatusBadRequest, titleBadRequest, "BusinessError",
			map[string]string{"message": businessErr.Message})
		return
	}

	var conflictErr *domainErrors.ConflictError
	if errors.As(err, &conflictErr) {
		writeErrorBody(w, http.StatusConflict, titleConflict, "ConflictError",
			map[string]string{"message": conflictErr.Error()})
		return
	}

	var illegalErr *domainErrors.IllegalStateError
	if errors.As(err, &illegalErr) {
		writeErrorBody(w, http.StatusInternalServerError, titleInternal, "IllegalStateError",
			map[string]string{"message": illegalErr.Message})
		return
	}

	log.Error().Err(err).Msg("unhandled error in handler")
	writeErrorBody(w, http.StatusInternalServerError, titleInternal, "InternalError",
		map[string]string{"message": "internal server error"})
}

// decodeAndValidate decodes the JSON body and runs the declarative field
// checks. Every failing field is reported, not just the first.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domainErrors.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return domainErrors.NewValidationError("body", err.Error())
		}
		errs := &domainErrors.ValidationErrors{}
		for _, fe := range ve {
			errs.Add(fe.Field(), fieldMessage(fe))
		}
		return errs
	}
	return nil
}

// fieldMessage renders a validator tag as a caller-facing message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a well-formed email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	case "datetime":
		return "must be a valid date in format " + fe.Param()
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
