package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"books-api/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Book), args.Error(1)
}

func (m *MockRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, isbn string, patch *model.BookPatch) (*model.Book, error) {
	args := m.Called(ctx, isbn, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, isbn string) error {
	args := m.Called(ctx, isbn)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sampleBook() *model.Book {
	return &model.Book{
		ISBN:      "9781593279509",
		AmazonURL: "https://www.amazon.com/dp/1593279507",
		Author:    "Marijn Haverbeke",
		Language:  "English",
		Pages:     472,
		Publisher: "No Starch Press",
		Title:     "Eloquent JavaScript, Third Edition",
		Year:      2018,
	}
}

func createRequest() model.CreateBookRequest {
	b := sampleBook()
	return model.CreateBookRequest{
		ISBN:      strPtr(b.ISBN),
		AmazonURL: strPtr(b.AmazonURL),
		Author:    strPtr(b.Author),
		Language:  strPtr(b.Language),
		Pages:     intPtr(b.Pages),
		Publisher: strPtr(b.Publisher),
		Title:     strPtr(b.Title),
		Year:      intPtr(b.Year),
	}
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the book", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		repo.On("Create", ctx, sampleBook()).Return(sampleBook(), nil)

		book, err := svc.CreateBook(ctx, createRequest())

		require.NoError(t, err)
		assert.Equal(t, sampleBook(), book)
		repo.AssertExpectations(t)
	})

	t.Run("invalid data never reaches the repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		req := createRequest()
		req.Pages = intPtr(0)

		_, err := svc.CreateBook(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*model.Book")).
			Return(nil, model.NewBookAlreadyExists("9781593279509", nil))

		_, err := svc.CreateBook(ctx, createRequest())

		assert.ErrorIs(t, err, model.ErrBookAlreadyExists)
	})
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewBookService(repo)

	repo.On("List", ctx).Return([]*model.Book{sampleBook()}, nil)

	books, err := svc.ListBooks(ctx)

	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestGetBook(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)
		repo.On("GetByISBN", ctx, "9781593279509").Return(sampleBook(), nil)

		book, err := svc.GetBook(ctx, "9781593279509")

		require.NoError(t, err)
		assert.Equal(t, "9781593279509", book.ISBN)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)
		repo.On("GetByISBN", ctx, "999").Return(nil, model.NewBookNotFound("999"))

		_, err := svc.GetBook(ctx, "999")

		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})

	t.Run("blank isbn", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		_, err := svc.GetBook(ctx, "  ")

		assert.ErrorIs(t, err, model.ErrBookNotFound)
		repo.AssertNotCalled(t, "GetByISBN", mock.Anything, mock.Anything)
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the patch", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		updated := sampleBook()
		updated.Title = "Eloquent JavaScript, 4th Edition"
		repo.On("Update", ctx, "9781593279509", mock.MatchedBy(func(p *model.BookPatch) bool {
			return p.Title != nil && *p.Title == updated.Title && p.Author == nil
		})).Return(updated, nil)

		book, err := svc.UpdateBook(ctx, "9781593279509", model.UpdateBookRequest{Title: strPtr(updated.Title)})

		require.NoError(t, err)
		assert.Equal(t, updated.Title, book.Title)
		repo.AssertExpectations(t)
	})

	t.Run("isbn in body wins over other violations", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		req := model.UpdateBookRequest{
			ISBN:  json.RawMessage(`"123"`),
			Pages: intPtr(-1),
		}

		_, err := svc.UpdateBook(ctx, "9781593279509", req)

		assert.ErrorIs(t, err, model.ErrISBNNotUpdatable)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("isbn null is still rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		_, err := svc.UpdateBook(ctx, "9781593279509", model.UpdateBookRequest{ISBN: json.RawMessage(`null`)})

		assert.ErrorIs(t, err, model.ErrISBNNotUpdatable)
	})

	t.Run("invalid field", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		_, err := svc.UpdateBook(ctx, "9781593279509", model.UpdateBookRequest{Title: strPtr("")})

		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("empty update", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)

		_, err := svc.UpdateBook(ctx, "9781593279509", model.UpdateBookRequest{})

		assert.ErrorIs(t, err, model.ErrEmptyUpdate)
	})

	t.Run("unknown isbn", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)
		repo.On("Update", ctx, "999", mock.Anything).Return(nil, model.NewBookNotFound("999"))

		_, err := svc.UpdateBook(ctx, "999", model.UpdateBookRequest{Title: strPtr("x")})

		assert.ErrorIs(t, err, model.ErrBookNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)
		repo.On("Delete", ctx, "9781593279509").Return(nil)

		assert.NoError(t, svc.DeleteBook(ctx, "9781593279509"))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)
		repo.On("Delete", ctx, "999").Return(model.NewBookNotFound("999"))

		assert.ErrorIs(t, svc.DeleteBook(ctx, "999"), model.ErrBookNotFound)
	})

	t.Run("database failure is passed through", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewBookService(repo)
		dbErr := errors.New("connection reset")
		repo.On("Delete", ctx, "1").Return(dbErr)

		assert.ErrorIs(t, svc.DeleteBook(ctx, "1"), dbErr)
	})
}
