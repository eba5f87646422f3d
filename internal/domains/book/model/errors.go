package model

import (
	"errors"
	"fmt"
	"net/http"

	"books-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error codes exposed to clients.
const (
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeISBNNotUpdatable  = "ISBN_NOT_UPDATABLE"
	CodeEmptyUpdate       = "EMPTY_UPDATE"
	CodeBookNotFound      = "BOOK_NOT_FOUND"
	CodeBookAlreadyExists = "BOOK_ALREADY_EXISTS"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// BookError is the domain error for the book domain.
// Status is the HTTP status the error surfaces as.
type BookError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *BookError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *BookError) Unwrap() error {
	return e.Err
}

// Is matches on Code so errors.Is works against the sentinels below.
func (e *BookError) Is(target error) bool {
	t, ok := target.(*BookError)
	return ok && t.Code == e.Code
}

// ============================================
// SENTINELS (for errors.Is)
// ============================================

var (
	ErrValidation        = &BookError{Status: http.StatusBadRequest, Code: CodeValidationFailed, Message: "Invalid book data"}
	ErrISBNNotUpdatable  = &BookError{Status: http.StatusBadRequest, Code: CodeISBNNotUpdatable, Message: "isbn cannot be updated"}
	ErrEmptyUpdate       = &BookError{Status: http.StatusBadRequest, Code: CodeEmptyUpdate, Message: "Request body must contain at least one field to update"}
	ErrBookNotFound      = &BookError{Status: http.StatusNotFound, Code: CodeBookNotFound, Message: "Book not found"}
	ErrBookAlreadyExists = &BookError{Status: http.StatusConflict, Code: CodeBookAlreadyExists, Message: "Book already exists"}
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewValidationError wraps schema violations; details is usually
// validation.Errors keyed by JSON field name.
func NewValidationError(message string, details interface{}) *BookError {
	if message == "" {
		message = ErrValidation.Message
	}
	return &BookError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidationFailed,
		Message: message,
		Details: details,
	}
}

func NewISBNNotUpdatable() *BookError {
	return &BookError{
		Status:  http.StatusBadRequest,
		Code:    CodeISBNNotUpdatable,
		Message: "isbn cannot be updated",
		Details: map[string]string{"isbn": "isbn is not allowed in update requests"},
	}
}

func NewEmptyUpdate() *BookError {
	return &BookError{
		Status:  http.StatusBadRequest,
		Code:    CodeEmptyUpdate,
		Message: ErrEmptyUpdate.Message,
	}
}

func NewBookNotFound(isbn string) *BookError {
	return &BookError{
		Status:  http.StatusNotFound,
		Code:    CodeBookNotFound,
		Message: fmt.Sprintf("There is no book with an isbn '%s'", isbn),
	}
}

func NewBookAlreadyExists(isbn string, err error) *BookError {
	return &BookError{
		Status:  http.StatusConflict,
		Code:    CodeBookAlreadyExists,
		Message: fmt.Sprintf("A book with isbn '%s' already exists", isbn),
		Err:     err,
	}
}

// ============================================
// HTTP MAPPING
// ============================================

// MapErrorToHTTP resolves any error to (status, code, message, details).
// Non-domain errors become a generic 500 so driver text never leaks.
func MapErrorToHTTP(err error) (int, string, string, interface{}) {
	var bookErr *BookError
	if errors.As(err, &bookErr) {
		return bookErr.Status, bookErr.Code, bookErr.Message, bookErr.Details
	}
	return http.StatusInternalServerError, CodeInternal, "Internal server error", nil
}

// HandleBookError writes the error response; it returns false when err is nil.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status, code, message, details := MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("[Handler] Book request failed")
	}

	response.ErrorWithDetails(c, status, code, message, details)
	return true
}
