package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfmarkapp/shelfmark-server/internal/store"
)

// linkFixture creates one user and one book and returns their ids.
func linkFixture(t *testing.T, s *Store) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	user := makeTestUser(1)
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	book := makeTestBook("The Hobbit", "J.R.R. Tolkien")
	if err := s.CreateBook(ctx, book); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	return user.ID, book.ID
}

func TestAddBookToUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID, bookID := linkFixture(t, s)

	link, err := s.AddBookToUser(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("AddBookToUser: %v", err)
	}
	if link.ID == 0 {
		t.Fatal("AddBookToUser did not assign an id")
	}
	if link.UserID != userID || link.BookID != bookID {
		t.Errorf("link = %+v, want user %d book %d", link, userID, bookID)
	}

	ok, err := s.IsBookInUserList(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("IsBookInUserList: %v", err)
	}
	if !ok {
		t.Error("IsBookInUserList = false after add")
	}
}

func TestAddBookToUser_MissingReferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID, bookID := linkFixture(t, s)

	if _, err := s.AddBookToUser(ctx, userID, 9999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing book error = %v, want ErrNotFound", err)
	}
	if _, err := s.AddBookToUser(ctx, 9999, bookID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing user error = %v, want ErrNotFound", err)
	}
}

func TestAddBookToUser_DuplicateLinks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID, bookID := linkFixture(t, s)

	first, err := s.AddBookToUser(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("first AddBookToUser: %v", err)
	}
	second, err := s.AddBookToUser(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("second AddBookToUser: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("duplicate add returned the same link id")
	}

	// Removal takes out one link at a time, oldest first.
	removed, err := s.RemoveBookFromUser(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("RemoveBookFromUser: %v", err)
	}
	if removed.ID != first.ID {
		t.Errorf("removed link id = %d, want oldest %d", removed.ID, first.ID)
	}
	ok, err := s.IsBookInUserList(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("IsBookInUserList: %v", err)
	}
	if !ok {
		t.Error("book gone from list while a second link remains")
	}

	if _, err := s.RemoveBookFromUser(ctx, userID, bookID); err != nil {
		t.Fatalf("second RemoveBookFromUser: %v", err)
	}
	ok, err = s.IsBookInUserList(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("IsBookInUserList: %v", err)
	}
	if ok {
		t.Error("book still in list after removing both links")
	}
}

func TestRemoveBookFromUser_NotLinked(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID, bookID := linkFixture(t, s)

	if _, err := s.RemoveBookFromUser(ctx, userID, bookID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("RemoveBookFromUser error = %v, want ErrNotFound", err)
	}
}

func TestRemoveBookFromUser_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID, bookID := linkFixture(t, s)

	link, err := s.AddBookToUser(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("AddBookToUser: %v", err)
	}
	removed, err := s.RemoveBookFromUser(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("RemoveBookFromUser: %v", err)
	}
	if *removed != *link {
		t.Errorf("removed = %+v, want %+v", removed, link)
	}

	ok, err := s.IsBookInUserList(ctx, userID, bookID)
	if err != nil {
		t.Fatalf("IsBookInUserList: %v", err)
	}
	if ok {
		t.Error("IsBookInUserList = true after remove")
	}
}

func TestDeleteUser_CascadesLinks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID, bookID := linkFixture(t, s)

	if _, err := s.AddBookToUser(ctx, userID, bookID); err != nil {
		t.Fatalf("AddBookToUser: %v", err)
	}
	if _, err := s.DeleteUser(ctx, userID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM user_books WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		t.Fatalf("count links: %v", err)
	}
	if count != 0 {
		t.Errorf("links after user delete = %d, want 0", count)
	}
}
