package models

import "time"

// User represents an account entity used for authentication and authorization.
// It doubles as the request body for /sign-up and /sign-in, where Password
// carries the raw value; at the persistence layer Password always holds the
// bcrypt hash, never plaintext.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// Password is the raw password on the way in and the bcrypt hash at rest.
	// It must never be echoed back in responses.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
