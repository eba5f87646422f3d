package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"books-api/internal/domains/book/model"
	"books-api/internal/domains/book/service"
	"books-api/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the /books routes.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateBook - POST /books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleBookError(c, bindError(err))
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, "book", book)
}

// ListBooks - GET /books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}
	if books == nil {
		books = []*model.Book{}
	}

	response.Success(c, http.StatusOK, "books", books)
}

// GetBook - GET /books/:isbn
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.service.GetBook(c.Request.Context(), c.Param("isbn"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "book", book)
}

// UpdateBook - PUT /books/:isbn
func (h *Handler) UpdateBook(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleBookError(c, bindError(err))
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), c.Param("isbn"), req)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, "book", book)
}

// DeleteBook - DELETE /books/:isbn
func (h *Handler) DeleteBook(c *gin.Context) {
	err := h.service.DeleteBook(c.Request.Context(), c.Param("isbn"))
	if model.HandleBookError(c, err) {
		return
	}

	response.Message(c, http.StatusOK, "Book deleted")
}

// bindError converts JSON decoding failures into schema violations.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.Is(err, io.EOF):
		return model.NewValidationError("Request body must be a JSON object", nil)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return model.NewValidationError("Request body must be a JSON object", nil)
		}
		return model.NewValidationError("Invalid book data", map[string]string{
			typeErr.Field: "must be " + jsonTypeName(typeErr.Type.Kind()),
		})
	case errors.As(err, &syntaxErr):
		return model.NewValidationError("Malformed JSON body", nil)
	default:
		return model.NewValidationError(err.Error(), nil)
	}
}

func jsonTypeName(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.String:
		return "a string"
	default:
		return "a " + kind.String()
	}
}
