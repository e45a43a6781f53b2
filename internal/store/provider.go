package store

import (
	"context"
	"errors"
	"fmt"

	"authkit/auth"
)

// Provider adapts a Store into the auth.IdentityProvider contract
type Provider struct {
	store  Store
	logger auth.Logger
}

var _ auth.IdentityProvider = (*Provider)(nil)

// NewProvider will create a new Provider over the given store
func NewProvider(s Store) *Provider {
	return &Provider{store: s}
}

func (p *Provider) WithLogger(l auth.Logger) *Provider {
	p.logger = l
	return p
}

// VerifyIdentity will find the user by email, compare the password against
// the stored hash, and return the resolved identity.
func (p *Provider) VerifyIdentity(ctx context.Context, identifier, password string) (auth.Identity, error) {
	user, err := p.store.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user during verification: %w", err)
	}

	if err := auth.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrMismatchedHashAndPassword) {
			return nil, auth.ErrMismatchedHashAndPassword
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	return user.Identity(), nil
}

// FindIdentityByID resolves a token subject back into an identity
func (p *Provider) FindIdentityByID(ctx context.Context, id string) (auth.Identity, error) {
	user, err := p.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user by id: %w", err)
	}

	return user.Identity(), nil
}

// userIdentity adapts a User into the auth.Identity interface
type userIdentity struct {
	id    string
	email string
}

var _ auth.Identity = userIdentity{}

func (u userIdentity) ID() string {
	return u.id
}

func (u userIdentity) Email() string {
	return u.email
}

// Identity returns an auth.Identity adapter for the user
func (u *User) Identity() auth.Identity {
	if u == nil {
		return nil
	}
	return userIdentity{
		id:    u.ID.String(),
		email: u.Email,
	}
}
