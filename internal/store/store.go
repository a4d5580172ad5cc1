// Package store defines the persistence interface for the Shelfmark server.
// Implementations translate these typed operations into filtered and
// paginated queries; handlers and services never see the storage engine API.
package store

import (
	"context"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
)

// Store is the repository abstraction over users, books, and user-book links.
// Every operation takes a context; implementations own the underlying
// connection pool and release per-request resources on every exit path.
type Store interface {
	BookStore
	UserStore
	UserBookStore

	// Close releases the underlying database handle.
	Close() error
}

// BookStore provides catalogue operations.
type BookStore interface {
	// ListBooks returns books in primary-key order using offset/limit paging.
	ListBooks(ctx context.Context, page PageParams) ([]*domain.Book, error)

	// GetBook returns the book with the given id, or ErrNotFound.
	GetBook(ctx context.Context, id int64) (*domain.Book, error)

	// SearchBooks returns all books matching the filter, unpaginated.
	SearchBooks(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error)

	// CreateBook persists a new book and fills in the generated id.
	CreateBook(ctx context.Context, book *domain.Book) error

	// UpdateBook replaces all mutable fields of an existing book.
	// Returns ErrNotFound if no such book exists.
	UpdateBook(ctx context.Context, book *domain.Book) error

	// DeleteBook removes a book and returns the prior record,
	// or ErrNotFound if it never existed.
	DeleteBook(ctx context.Context, id int64) (*domain.Book, error)
}

// UserStore provides identity operations.
type UserStore interface {
	// ListUsers returns users in primary-key order using offset/limit paging.
	ListUsers(ctx context.Context, page PageParams) ([]*domain.User, error)

	// GetUser returns the user with the given id, or ErrNotFound.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByUsername returns the user with the given username, or ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateUser persists a new user (password already hashed) and fills in
	// the generated id. Returns ErrAlreadyExists when the username or email
	// uniqueness constraint is violated; uniqueness is enforced by the
	// database, never pre-checked.
	CreateUser(ctx context.Context, user *domain.User) error

	// UpdateUser replaces username, email, and password hash of an existing
	// user. Returns ErrNotFound if no such user exists.
	UpdateUser(ctx context.Context, user *domain.User) error

	// DeleteUser removes a user and returns the prior record,
	// or ErrNotFound if it never existed.
	DeleteUser(ctx context.Context, id int64) (*domain.User, error)
}

// UserBookStore provides operations on the user-book join entity.
type UserBookStore interface {
	// AddBookToUser creates a link unconditionally. Referential integrity is
	// enforced by the database; a foreign-key violation surfaces as
	// ErrNotFound. Duplicate links are permitted.
	AddBookToUser(ctx context.Context, userID, bookID int64) (*domain.UserBook, error)

	// RemoveBookFromUser deletes the link matching both ids and returns it,
	// or ErrNotFound if no such link exists.
	RemoveBookFromUser(ctx context.Context, userID, bookID int64) (*domain.UserBook, error)

	// IsBookInUserList reports whether a link for (userID, bookID) exists.
	IsBookInUserList(ctx context.Context, userID, bookID int64) (bool, error)
}
