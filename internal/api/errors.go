package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/edusense-api/internal/api/shared"
	"github.com/phrazzld/edusense-api/internal/domain"
	"github.com/phrazzld/edusense-api/internal/extract"
)

// Error titles used in the "error" field of the envelope.
const (
	TitleBadRequest = "Bad Request"
	TitleValidation = "Validation Error"
	TitleInternal   = "Internal Server Error"
)

// GenericErrorDetail replaces internal error text outside debug mode.
const GenericErrorDetail = "An unexpected error occurred"

// ErrMalformedBody is returned when a request body is not a JSON document.
var ErrMalformedBody = errors.New("malformed request body")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Structured-output failures are checked before
// validation because an invalid model result also carries field details.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, extract.ErrStructuredOutput):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorTitle returns the envelope title for a status code.
func errorTitle(status int) string {
	switch status {
	case http.StatusBadRequest:
		return TitleBadRequest
	case http.StatusUnprocessableEntity:
		return TitleValidation
	default:
		return TitleInternal
	}
}

// GetSafeErrorMessage returns the detail shown to the client for err.
// Caller-correctable errors always describe the problem. Server-side failures
// only expose their message when debug is set.
func GetSafeErrorMessage(err error, debug bool) string {
	if err == nil {
		return GenericErrorDetail
	}

	switch MapErrorToStatusCode(err) {
	case http.StatusUnprocessableEntity:
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return fmt.Sprintf("%s: %s", verr.Field, verr.Message)
		}
		return "Invalid request parameters"
	case http.StatusBadRequest:
		return "Request body must be a valid JSON object"
	}

	if debug {
		return err.Error()
	}
	return GenericErrorDetail
}

// HandleAPIError writes the error envelope for err and logs it. Validation
// failures are logged at WARN; other client errors stay at DEBUG.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, debug bool) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ResponseOption
	if status == http.StatusUnprocessableEntity {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, errorTitle(status), GetSafeErrorMessage(err, debug), err, opts...)
}

// decodeError classifies a DecodeJSON failure. Type mismatches on a known
// field are validation errors; anything else means the body is not JSON.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError(typeErr.Field,
			fmt.Sprintf("must be of type %s", jsonTypeName(typeErr.Type.Kind().String())),
			domain.ErrValidation)
	}
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}

func jsonTypeName(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"):
		return "integer"
	case strings.HasPrefix(kind, "float"):
		return "number"
	case kind == "bool":
		return "boolean"
	default:
		return kind
	}
}

// SanitizeValidationError converts validator field errors into a
// domain.ValidationError naming the first failing field.
func SanitizeValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		if errors.Is(err, domain.ErrValidation) {
			return err
		}
		return domain.NewValidationError("body", "is invalid", domain.ErrValidation)
	}

	fe := fieldErrs[0]
	return domain.NewValidationError(fe.Field(), getValidationTagMessage(fe), domain.ErrValidation)
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(fe validator.FieldError) string {
	isString := fe.Kind().String() == "string"

	switch fe.Tag() {
	case "required":
		return "field required"
	case "min", "gte":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return "validation failed"
	}
}
