package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
)

// bookColumns is the ordered list of columns selected in book queries.
// Must match the scan order in scanBook.
const bookColumns = `id, title, author, genre, rating, image_url, description`

// scanBook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var b domain.Book

	var (
		imageURL    sql.NullString
		description sql.NullString
	)

	err := scanner.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Genre,
		&b.Rating,
		&imageURL,
		&description,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		b.ImageURL = imageURL.String
	}
	if description.Valid {
		b.Description = description.String
	}

	return &b, nil
}

// collectBooks drains a result set into a non-nil slice.
func collectBooks(rows *sql.Rows) ([]*domain.Book, error) {
	defer rows.Close()

	books := []*domain.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// ListBooks returns books in primary-key order using offset/limit paging.
func (s *Store) ListBooks(ctx context.Context, page store.PageParams) ([]*domain.Book, error) {
	page.Validate(store.DefaultBookLimit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY id LIMIT ? OFFSET ?`,
		page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

// GetBook retrieves a book by id.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SearchBooks returns all books matching the filter, in primary-key order.
// Text predicates are case-insensitive substring matches; MinRating is an
// inclusive lower bound. Predicates compose with AND; an empty filter
// matches the whole catalogue.
func (s *Store) SearchBooks(ctx context.Context, filter domain.BookFilter) ([]*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books`

	var conds []string
	var args []any
	if filter.Title != nil {
		conds = append(conds, `LOWER(title) LIKE '%' || LOWER(?) || '%'`)
		args = append(args, *filter.Title)
	}
	if filter.Author != nil {
		conds = append(conds, `LOWER(author) LIKE '%' || LOWER(?) || '%'`)
		args = append(args, *filter.Author)
	}
	if filter.Genre != nil {
		conds = append(conds, `LOWER(genre) LIKE '%' || LOWER(?) || '%'`)
		args = append(args, *filter.Genre)
	}
	if filter.MinRating != nil {
		conds = append(conds, `rating >= ?`)
		args = append(args, *filter.MinRating)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

// CreateBook inserts a new book and fills in the generated id.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO books (title, author, genre, rating, image_url, description)
		VALUES (?, ?, ?, ?, ?, ?)`,
		book.Title,
		book.Author,
		book.Genre,
		book.Rating,
		nullString(book.ImageURL),
		nullString(book.Description),
	)
	if err != nil {
		return err
	}

	book.ID, err = result.LastInsertId()
	return err
}

// UpdateBook performs a full replacement of an existing book's mutable fields.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) UpdateBook(ctx context.Context, book *domain.Book) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE books SET
			title = ?,
			author = ?,
			genre = ?,
			rating = ?,
			image_url = ?,
			description = ?
		WHERE id = ?`,
		book.Title,
		book.Author,
		book.Genre,
		book.Rating,
		nullString(book.ImageURL),
		nullString(book.Description),
		book.ID,
	)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteBook removes a book and returns the prior record.
// Returns store.ErrNotFound if the book does not exist; a second delete of
// the same id reports the same absence.
func (s *Store) DeleteBook(ctx context.Context, id int64) (*domain.Book, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}
