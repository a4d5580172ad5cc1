package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
)

// AddBookToUser creates a user-book link unconditionally; duplicates are
// permitted. The schema enforces referential integrity, so a link to a
// missing user or book is returned as store.ErrNotFound.
func (s *Store) AddBookToUser(ctx context.Context, userID, bookID int64) (*domain.UserBook, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO user_books (user_id, book_id)
		VALUES (?, ?)`,
		userID, bookID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return nil, store.ErrNotFound.WithMessage("user or book not found")
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domain.UserBook{
		ID:     id,
		UserID: userID,
		BookID: bookID,
	}, nil
}

// RemoveBookFromUser deletes one link matching both ids and returns it.
// With duplicate links present, the oldest is removed.
// Returns store.ErrNotFound if no such link exists.
func (s *Store) RemoveBookFromUser(ctx context.Context, userID, bookID int64) (*domain.UserBook, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM user_books
		WHERE user_id = ? AND book_id = ?
		ORDER BY id LIMIT 1`,
		userID, bookID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound.WithMessage("book is not in the user's list")
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_books WHERE id = ?`, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.UserBook{
		ID:     id,
		UserID: userID,
		BookID: bookID,
	}, nil
}

// IsBookInUserList reports whether at least one (userID, bookID) link exists.
func (s *Store) IsBookInUserList(ctx context.Context, userID, bookID int64) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_books WHERE user_id = ? AND book_id = ?
		)`,
		userID, bookID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists != 0, nil
}
