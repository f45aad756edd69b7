package models

import "time"

// UserDB represents a user row in the database.
type UserDB struct {
	ID           int64     `db:"id"`            // Primary key
	Email        string    `db:"email"`         // Unique email
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	Username     *string   `db:"username"`      // Optional display name
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// User is the API shape of a user. The password hash never leaves the service.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  *string   `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUser converts a database row to its API shape.
func (u *UserDB) ToUser() *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
