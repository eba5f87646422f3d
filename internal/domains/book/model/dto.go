package model

import (
	"encoding/json"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateBookRequest - POST /books
// Pointer fields distinguish a missing key from a zero value.
type CreateBookRequest struct {
	ISBN      *string `json:"isbn"`
	AmazonURL *string `json:"amazon_url"`
	Author    *string `json:"author"`
	Language  *string `json:"language"`
	Pages     *int    `json:"pages"`
	Publisher *string `json:"publisher"`
	Title     *string `json:"title"`
	Year      *int    `json:"year"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required"), notBlank),
		validation.Field(&r.AmazonURL,
			validation.Required.Error("amazon_url is required"),
			notBlank,
			is.URL.Error("amazon_url must be a valid URL"),
		),
		validation.Field(&r.Author, validation.Required.Error("author is required"), notBlank),
		validation.Field(&r.Language, validation.Required.Error("language is required"), notBlank),
		validation.Field(&r.Pages,
			validation.Required.Error("pages is required and must be a positive integer"),
			validation.Min(1).Error("pages must be a positive integer"),
		),
		validation.Field(&r.Publisher, validation.Required.Error("publisher is required"), notBlank),
		validation.Field(&r.Title, validation.Required.Error("title is required"), notBlank),
		validation.Field(&r.Year, validation.NotNil.Error("year is required")),
	)
}

// ToBook converts a validated request to the entity, trimming text fields.
func (r CreateBookRequest) ToBook() *Book {
	return &Book{
		ISBN:      trimmed(r.ISBN),
		AmazonURL: trimmed(r.AmazonURL),
		Author:    trimmed(r.Author),
		Language:  trimmed(r.Language),
		Pages:     derefInt(r.Pages),
		Publisher: trimmed(r.Publisher),
		Title:     trimmed(r.Title),
		Year:      derefInt(r.Year),
	}
}

// UpdateBookRequest - PUT /books/:isbn
// Every field is optional. ISBN is captured raw only to detect that the
// client tried to send it, including an explicit null.
type UpdateBookRequest struct {
	ISBN      json.RawMessage `json:"isbn,omitempty"`
	AmazonURL *string         `json:"amazon_url"`
	Author    *string         `json:"author"`
	Language  *string         `json:"language"`
	Pages     *int            `json:"pages"`
	Publisher *string         `json:"publisher"`
	Title     *string         `json:"title"`
	Year      *int            `json:"year"`
}

// HasISBN reports whether the body carried an "isbn" key.
func (r UpdateBookRequest) HasISBN() bool {
	return len(r.ISBN) > 0
}

// HasChanges reports whether at least one updatable field was supplied.
func (r UpdateBookRequest) HasChanges() bool {
	return r.AmazonURL != nil || r.Author != nil || r.Language != nil || r.Pages != nil ||
		r.Publisher != nil || r.Title != nil || r.Year != nil
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AmazonURL,
			validation.NilOrNotEmpty.Error("amazon_url cannot be empty"),
			notBlank,
			is.URL.Error("amazon_url must be a valid URL"),
		),
		validation.Field(&r.Author, validation.NilOrNotEmpty.Error("author cannot be empty"), notBlank),
		validation.Field(&r.Language, validation.NilOrNotEmpty.Error("language cannot be empty"), notBlank),
		validation.Field(&r.Pages,
			validation.NilOrNotEmpty.Error("pages must be a positive integer"),
			validation.Min(1).Error("pages must be a positive integer"),
		),
		validation.Field(&r.Publisher, validation.NilOrNotEmpty.Error("publisher cannot be empty"), notBlank),
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty"), notBlank),
	)
}

// ToPatch converts the request into the column patch applied by the repository.
func (r UpdateBookRequest) ToPatch() *BookPatch {
	return &BookPatch{
		AmazonURL: trimmedPtr(r.AmazonURL),
		Author:    trimmedPtr(r.Author),
		Language:  trimmedPtr(r.Language),
		Pages:     r.Pages,
		Publisher: trimmedPtr(r.Publisher),
		Title:     trimmedPtr(r.Title),
		Year:      r.Year,
	}
}

// BookPatch holds the columns to change; nil means keep the stored value.
type BookPatch struct {
	AmazonURL *string
	Author    *string
	Language  *string
	Pages     *int
	Publisher *string
	Title     *string
	Year      *int
}

// ========================================
// RESPONSE DTOs
// ========================================

type BookResponse struct {
	Book *Book `json:"book"`
}

type BookListResponse struct {
	Books []*Book `json:"books"`
}

// ========================================
// HELPERS
// ========================================

var notBlank = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
})

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
