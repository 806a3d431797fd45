package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode classifies application errors for status mapping and logging.
type ErrorCode string

const (
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeBadRequest   ErrorCode = "BAD_REQUEST"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeConflict     ErrorCode = "CONFLICT"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// AppError is the application error type carried from services to handlers.
// Validation errors may carry several field-level messages; all other codes
// carry a single message.
type AppError struct {
	Code     ErrorCode
	Message  string
	Messages []string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a validation failure from one or more
// field-level messages.
func NewValidationError(msgs ...string) *AppError {
	msg := "validation failed"
	if len(msgs) > 0 {
		msg = msgs[0]
	}
	return &AppError{Code: CodeValidation, Message: msg, Messages: msgs}
}

// NewBadRequestError builds a 400 failure rendered as a single {msg} body,
// unlike validation failures which render an errors array.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: CodeBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Server error", Err: err}
}

// FieldMessage is the wire shape of a single validation message.
type FieldMessage struct {
	Msg string `json:"msg"`
}

// statusForCode maps error codes to HTTP statuses. Conflicts and validation
// failures use 400 and ownership failures use 401, matching the public API
// contract rather than strict REST conventions.
func statusForCode(code ErrorCode) int {
	switch code {
	case CodeValidation, CodeBadRequest, CodeConflict:
		return fiber.StatusBadRequest
	case CodeUnauthorized, CodeForbidden:
		return fiber.StatusUnauthorized
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes the JSON error response for err. Validation
// failures are rendered as an errors array of {msg} objects; every other
// failure is a single {msg} body. Unclassified errors become a generic 500.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	status := statusForCode(appErr.Code)

	if appErr.Code == CodeValidation {
		fields := make([]FieldMessage, 0, len(appErr.Messages))
		for _, m := range appErr.Messages {
			fields = append(fields, FieldMessage{Msg: m})
		}
		return c.Status(status).JSON(fiber.Map{"errors": fields})
	}

	return c.Status(status).JSON(fiber.Map{"msg": appErr.Message})
}
