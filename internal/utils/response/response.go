package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "An unexpected error occurred"

// APIResponse is the envelope of every JSON answer.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func write(w http.ResponseWriter, statusCode int, body APIResponse) {
	if err := WriteJson(w, statusCode, body); err != nil {
		slog.Error("Failed to write response", slog.Int("status", statusCode), slog.String("error", err.Error()))
	}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	write(w, statusCode, APIResponse{Success: true, Data: data})
}

// NoContent answers deletes and unlink operations.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error renders AppErrors as they are. Anything else is reported as a bare 500
// so driver or library messages never reach the client.
func Error(w http.ResponseWriter, err error) {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		slog.Error("Unhandled error reached the response writer", slog.String("error", err.Error()))
		write(w, http.StatusInternalServerError, APIResponse{
			Error: &ErrorResponse{Code: errors.ErrCodeInternal, Message: internalErrorMessage},
		})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	if appErr.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(appErr.RetryAfter))
	}

	write(w, appErr.StatusCode, APIResponse{Error: body})
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldMessage(fe))
	}

	write(w, http.StatusBadRequest, APIResponse{
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: "Validation failed",
			Details: details,
		},
	})
}

func fieldMessage(fe validator.FieldError) string {

	field := fe.Field()

	// min and max bound the length of strings and the item count of lists.
	unit := "characters"
	switch fe.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = "items"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		unit = ""
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", field)
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("Field %s must be a valid URL", field)
	case "min":
		if unit == "" {
			return fmt.Sprintf("Field %s must be at least %s", field, fe.Param())
		}
		return fmt.Sprintf("Field %s must be at least %s %s", field, fe.Param(), unit)
	case "max":
		if unit == "" {
			return fmt.Sprintf("Field %s must be at most %s", field, fe.Param())
		}
		return fmt.Sprintf("Field %s must be at most %s %s", field, fe.Param(), unit)
	case "gt":
		return fmt.Sprintf("Field %s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Field %s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", field, fe.Tag(), fe.Param())
	}
}
