package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"authkit/auth"
)

// BunStore is the bun-backed credential store, used with SQLite by default.
type BunStore struct {
	db   *bun.DB
	cost int
}

var _ Store = (*BunStore)(nil)

// NewBunStore returns a credential store over the given bun handle
func NewBunStore(db *bun.DB, opts ...Option) *BunStore {
	s := &BunStore{db: db}
	applyOptions(&s.cost, opts...)
	return s
}

// Init creates the users table when it does not exist yet. SQLite schemas
// are managed here; the Postgres engine uses goose migrations instead.
func (s *BunStore) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (s *BunStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := s.db.NewSelect().
		Model(user).
		Where("?TableAlias.email = ?", NormalizeEmail(email)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (s *BunStore) FindByID(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user := &User{}
	err = s.db.NewSelect().
		Model(user).
		Where("?TableAlias.id = ?", uid).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}

func (s *BunStore) Create(ctx context.Context, email, password string) (*User, error) {
	hash, err := auth.HashPasswordWithCost(password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &User{
		ID:           uuid.New(),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.db.NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") // postgres
}
