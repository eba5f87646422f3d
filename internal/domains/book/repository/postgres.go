package repository

import (
	"books-api/internal/domains/book/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

// postgresRepository implements RepositoryInterface on a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a book repository on the shared pool.
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
    INSERT INTO books (isbn, amazon_url, author, language, pages, publisher, title, year)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + model.Columns

	var created model.Book
	err := r.pool.QueryRow(ctx, query,
		book.ISBN,
		book.AmazonURL,
		book.Author,
		book.Language,
		book.Pages,
		book.Publisher,
		book.Title,
		book.Year,
	).Scan(created.ScanTargets()...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.NewBookAlreadyExists(book.ISBN, err)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*model.Book, error) {
	query := `SELECT ` + model.Columns + ` FROM books ORDER BY title, isbn`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]*model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(b.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	query := `SELECT ` + model.Columns + ` FROM books WHERE isbn = $1`

	var b model.Book
	err := r.pool.QueryRow(ctx, query, isbn).Scan(b.ScanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBookNotFound(isbn)
		}
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}

	return &b, nil
}

// Update keeps a column when its patch value is NULL, so one statement
// serves both full and partial updates.
func (r *postgresRepository) Update(ctx context.Context, isbn string, patch *model.BookPatch) (*model.Book, error) {
	query := `
    UPDATE books
    SET amazon_url = COALESCE($1, amazon_url),
        author     = COALESCE($2, author),
        language   = COALESCE($3, language),
        pages      = COALESCE($4, pages),
        publisher  = COALESCE($5, publisher),
        title      = COALESCE($6, title),
        year       = COALESCE($7, year)
    WHERE isbn = $8
    RETURNING ` + model.Columns

	var updated model.Book
	err := r.pool.QueryRow(ctx, query,
		patch.AmazonURL,
		patch.Author,
		patch.Language,
		patch.Pages,
		patch.Publisher,
		patch.Title,
		patch.Year,
		isbn,
	).Scan(updated.ScanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBookNotFound(isbn)
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, isbn string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE isbn = $1`, isbn)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.NewBookNotFound(isbn)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
