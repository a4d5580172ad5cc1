package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
)

// BookService orchestrates catalogue operations.
type BookService struct {
	store  store.Store
	logger *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store store.Store, logger *slog.Logger) *BookService {
	return &BookService{
		store:  store,
		logger: logger,
	}
}

// BookRequest contains the full set of book fields. It is used for both
// creation and update; updates replace every field.
type BookRequest struct {
	Title       string  `json:"title" validate:"required,max=512"`
	Author      string  `json:"author" validate:"required,max=256"`
	Genre       string  `json:"genre" validate:"required,max=128"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url,max=2048"`
	Description string  `json:"description" validate:"max=4096"`
}

// ListBooks returns a page of the catalogue in insertion order.
func (s *BookService) ListBooks(ctx context.Context, page store.PageParams) ([]*domain.Book, error) {
	page.Validate(store.DefaultBookLimit)
	return s.store.ListBooks(ctx, page)
}

// GetBook retrieves a single book by ID.
func (s *BookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	return s.store.GetBook(ctx, id)
}

// SearchBooks returns every book matching the filter. Criteria are combined
// conjunctively; an empty filter returns the whole catalogue.
func (s *BookService) SearchBooks(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error) {
	return s.store.SearchBooks(ctx, filter)
}

// CreateBook validates and persists a new book.
func (s *BookService) CreateBook(ctx context.Context, req BookRequest) (*domain.Book, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	book := &domain.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Book created", "book_id", book.ID, "title", book.Title)
	}

	return book, nil
}

// UpdateBook replaces every field of an existing book with the request
// values. Omitted optional fields are cleared, not preserved.
func (s *BookService) UpdateBook(ctx context.Context, id int64, req BookRequest) (*domain.Book, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	book := &domain.Book{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if err := s.store.UpdateBook(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook removes a book and returns the record as it was before
// deletion. Deleting an absent book reports not found; a repeated delete
// is otherwise harmless.
func (s *BookService) DeleteBook(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.store.DeleteBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Book deleted", "book_id", id)
	}

	return book, nil
}
