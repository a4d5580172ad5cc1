package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmarkapp/shelfmark-server/internal/auth"
	domainerrors "github.com/shelfmarkapp/shelfmark-server/internal/errors"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
)

func TestUserService_Register(t *testing.T) {
	_, _, userSvc, _ := newTestServices(t)
	ctx := context.Background()

	user, err := userSvc.Register(ctx, RegisterRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	// The stored credential is a hash, never the password itself.
	assert.NotEqual(t, "correct horse battery staple", user.PasswordHash)
	ok, err := auth.VerifyPassword(user.PasswordHash, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_Register_Validation(t *testing.T) {
	_, _, userSvc, _ := newTestServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@example.com", Password: "longenough"}},
		{"short username", RegisterRequest{Username: "ab", Email: "a@example.com", Password: "longenough"}},
		{"bad email", RegisterRequest{Username: "reader", Email: "not-an-email", Password: "longenough"}},
		{"short password", RegisterRequest{Username: "reader", Email: "a@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := userSvc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestUserService_Register_Conflicts(t *testing.T) {
	_, _, userSvc, _ := newTestServices(t)
	ctx := context.Background()
	registerTestUser(t, userSvc, "reader")

	_, err := userSvc.Register(ctx, RegisterRequest{
		Username: "reader",
		Email:    "other@example.com",
		Password: "correct horse battery staple",
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = userSvc.Register(ctx, RegisterRequest{
		Username: "otherreader",
		Email:    "reader@example.com",
		Password: "correct horse battery staple",
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUserService_ListUsers(t *testing.T) {
	_, _, userSvc, _ := newTestServices(t)
	ctx := context.Background()

	registerTestUser(t, userSvc, "alice")
	registerTestUser(t, userSvc, "ben")

	users, err := userSvc.ListUsers(ctx, store.PageParams{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateUser_KeepsPassword(t *testing.T) {
	_, _, userSvc, _ := newTestServices(t)
	ctx := context.Background()
	userID := registerTestUser(t, userSvc, "reader")

	before, err := userSvc.GetUser(ctx, userID)
	require.NoError(t, err)

	updated, err := userSvc.UpdateUser(ctx, userID, UpdateUserRequest{
		Username: "renamed",
		Email:    "renamed@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, before.PasswordHash, updated.PasswordHash)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	_, _, userSvc, _ := newTestServices(t)
	ctx := context.Background()
	userID := registerTestUser(t, userSvc, "reader")

	updated, err := userSvc.UpdateUser(ctx, userID, UpdateUserRequest{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "a brand new passphrase",
	})
	require.NoError(t, err)

	ok, err := auth.VerifyPassword(updated.PasswordHash, "a brand new passphrase")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_ReadingListRoundtrip(t *testing.T) {
	_, bookSvc, userSvc, _ := newTestServices(t)
	ctx := context.Background()

	userID := registerTestUser(t, userSvc, "reader")
	book, err := bookSvc.CreateBook(ctx, validBookRequest())
	require.NoError(t, err)

	link, err := userSvc.AddBookToUser(ctx, userID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, link.UserID)
	assert.Equal(t, book.ID, link.BookID)

	ok, err := userSvc.IsBookInUserList(ctx, userID, book.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	removed, err := userSvc.RemoveBookFromUser(ctx, userID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, link.ID, removed.ID)

	ok, err = userSvc.IsBookInUserList(ctx, userID, book.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserService_AddBookToUser_MissingReferences(t *testing.T) {
	_, bookSvc, userSvc, _ := newTestServices(t)
	ctx := context.Background()

	userID := registerTestUser(t, userSvc, "reader")
	book, err := bookSvc.CreateBook(ctx, validBookRequest())
	require.NoError(t, err)

	_, err = userSvc.AddBookToUser(ctx, userID, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = userSvc.AddBookToUser(ctx, 9999, book.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
