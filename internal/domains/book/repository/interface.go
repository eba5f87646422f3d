package repository

import (
	"books-api/internal/domains/book/model"
	"context"
)

// RepositoryInterface defines data access for the books table.
// Every method issues exactly one SQL statement.
type RepositoryInterface interface {
	// Create inserts the book and returns the stored row.
	// Returns model.ErrBookAlreadyExists when the isbn is taken.
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// List returns every row; order is not part of the contract.
	List(ctx context.Context) ([]*model.Book, error)

	// GetByISBN returns model.ErrBookNotFound when no row matches.
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Update applies the non-nil patch columns and returns the updated row.
	// Returns model.ErrBookNotFound when no row matches.
	Update(ctx context.Context, isbn string, patch *model.BookPatch) (*model.Book, error)

	// Delete removes the row; model.ErrBookNotFound when nothing was deleted.
	Delete(ctx context.Context, isbn string) error
}
