package service

import (
	"books-api/internal/domains/book/model"
	"context"
)

// ServiceInterface defines the book use cases exposed over HTTP.
type ServiceInterface interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	ListBooks(ctx context.Context) ([]*model.Book, error)
	GetBook(ctx context.Context, isbn string) (*model.Book, error)
	UpdateBook(ctx context.Context, isbn string, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, isbn string) error
}
