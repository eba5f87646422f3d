package service

import (
	"books-api/internal/domains/book/model"
	"books-api/internal/domains/book/repository"
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
)

type bookService struct {
	repo repository.RepositoryInterface
}

// NewBookService creates the book service on top of a repository.
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{
		repo: repo,
	}
}

func (s *bookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToBook())
	if err != nil {
		return nil, err
	}

	log.Info().Str("isbn", created.ISBN).Msg("[BookService] Book created")
	return created, nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]*model.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) GetBook(ctx context.Context, isbn string) (*model.Book, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, model.NewBookNotFound(isbn)
	}
	return s.repo.GetByISBN(ctx, isbn)
}

// UpdateBook rejects any body carrying isbn before validating the rest,
// so the isbn rule wins regardless of other field validity.
func (s *bookService) UpdateBook(ctx context.Context, isbn string, req model.UpdateBookRequest) (*model.Book, error) {
	if req.HasISBN() {
		return nil, model.NewISBNNotUpdatable()
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if !req.HasChanges() {
		return nil, model.NewEmptyUpdate()
	}

	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, model.NewBookNotFound(isbn)
	}

	updated, err := s.repo.Update(ctx, isbn, req.ToPatch())
	if err != nil {
		return nil, err
	}

	log.Info().Str("isbn", updated.ISBN).Msg("[BookService] Book updated")
	return updated, nil
}

func (s *bookService) DeleteBook(ctx context.Context, isbn string) error {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return model.NewBookNotFound(isbn)
	}

	if err := s.repo.Delete(ctx, isbn); err != nil {
		return err
	}

	log.Info().Str("isbn", isbn).Msg("[BookService] Book deleted")
	return nil
}

// validateRequest turns ozzo validation errors into a 400 domain error.
// Internal validator failures are returned as-is and surface as 500.
func validateRequest(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return model.NewValidationError("Invalid book data", fieldErrs)
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal
	}

	return model.NewValidationError(err.Error(), nil)
}
