package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shelfmarkapp/shelfmark-server/internal/auth"
	"github.com/shelfmarkapp/shelfmark-server/internal/store"
	"github.com/shelfmarkapp/shelfmark-server/internal/store/sqlite"
)

const testTokenKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// newTestServices creates the service layer over a temporary SQLite store.
func newTestServices(t *testing.T) (*AuthService, *BookService, *UserService, store.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	tokenService, err := auth.NewTokenService(testTokenKey, 30*time.Minute)
	require.NoError(t, err)

	authSvc := NewAuthService(s, tokenService, logger)
	bookSvc := NewBookService(s, logger)
	userSvc := NewUserService(s, logger)

	return authSvc, bookSvc, userSvc, s
}

// registerTestUser creates a user through the service layer.
func registerTestUser(t *testing.T, users *UserService, username string) int64 {
	t.Helper()

	user, err := users.Register(context.Background(), RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	return user.ID
}
