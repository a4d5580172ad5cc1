package domain

// User represents an identity record.
// PasswordHash is never serialized in API responses.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// UserBook is the join entity for "user has added book to their list".
// It is created and deleted, never updated in place.
type UserBook struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	BookID int64 `json:"book_id"`
}
