// Package store persists user credentials. Two engines implement the same
// contract: a bun/SQLite store and a pgx/Postgres store. Uniqueness of the
// normalized email is enforced by the storage layer's unique index, so a
// race between concurrent signups is resolved by the second insert failing.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrUserNotFound is returned when no user matches the lookup
var ErrUserNotFound = errors.New("user not found")

// ErrEmailInUse is returned when a signup collides with an existing
// normalized email
var ErrEmailInUse = errors.New("email is in use")

// User is the credential record. PasswordHash is written exactly once, by
// Create; there is no update or delete flow.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Store is the credential store contract. Any engine honoring these four
// operations is substitutable.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	// Create hashes the plaintext password and persists the record. The
	// plaintext is never written to storage. Hashing is an explicit step
	// here, not a persistence hook, so it stays testable in isolation.
	Create(ctx context.Context, email, password string) (*User, error)
}

// NormalizeEmail lowercases and trims an email so uniqueness checks are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
