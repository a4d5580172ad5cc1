package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shelfmarkapp/shelfmark-server/internal/auth"
	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
)

// UserService manages user accounts and their reading lists.
type UserService struct {
	store  store.Store
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store store.Store, logger *slog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// RegisterRequest contains user registration data.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
}

// Register validates the request, hashes the password, and persists the
// user. Username and email collisions surface as conflict errors from the
// store; they are never pre-checked.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	}

	return user, nil
}

// ListUsers returns a page of users in registration order.
func (s *UserService) ListUsers(ctx context.Context, page store.PageParams) ([]*domain.User, error) {
	page.Validate(store.DefaultUserLimit)
	return s.store.ListUsers(ctx, page)
}

// GetUser retrieves a single user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.GetUser(ctx, id)
}

// GetUserByUsername retrieves a single user by username.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.store.GetUserByUsername(ctx, username)
}

// UpdateUserRequest contains replacement account data. Password is
// optional; when empty the stored hash is kept.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=1024"`
}

// UpdateUser replaces the account fields of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, formatValidationError(err)
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Email = req.Email
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user and returns the prior record. Links to books
// are removed with the account.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("User deleted", "user_id", id)
	}

	return user, nil
}

// AddBookToUser links a book to a user's reading list. Adding the same
// book twice creates a second link.
func (s *UserService) AddBookToUser(ctx context.Context, userID, bookID int64) (*domain.UserBook, error) {
	link, err := s.store.AddBookToUser(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Book added to list", "user_id", userID, "book_id", bookID)
	}

	return link, nil
}

// RemoveBookFromUser removes one link between a user and a book and
// returns it.
func (s *UserService) RemoveBookFromUser(ctx context.Context, userID, bookID int64) (*domain.UserBook, error) {
	return s.store.RemoveBookFromUser(ctx, userID, bookID)
}

// IsBookInUserList reports whether the book appears in the user's list.
func (s *UserService) IsBookInUserList(ctx context.Context, userID, bookID int64) (bool, error) {
	return s.store.IsBookInUserList(ctx, userID, bookID)
}
