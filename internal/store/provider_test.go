package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authkit/auth"
	"authkit/internal/store"
)

func TestProviderVerifyIdentity(t *testing.T) {
	s := newTestStore(t)
	provider := store.NewProvider(s)
	ctx := context.Background()

	created, err := s.Create(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	identity, err := provider.VerifyIdentity(ctx, "a@b.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), identity.ID())
	assert.Equal(t, "a@b.com", identity.Email())
}

func TestProviderVerifyIdentityWrongPassword(t *testing.T) {
	s := newTestStore(t)
	provider := store.NewProvider(s)
	ctx := context.Background()

	_, err := s.Create(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	_, err = provider.VerifyIdentity(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
}

func TestProviderVerifyIdentityUnknownEmail(t *testing.T) {
	s := newTestStore(t)
	provider := store.NewProvider(s)

	_, err := provider.VerifyIdentity(context.Background(), "missing@b.com", "pw123")
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
}

func TestProviderFindIdentityByID(t *testing.T) {
	s := newTestStore(t)
	provider := store.NewProvider(s)
	ctx := context.Background()

	created, err := s.Create(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	identity, err := provider.FindIdentityByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), identity.ID())

	_, err = provider.FindIdentityByID(ctx, "019526a8-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
}

// failingStore exercises the internal error paths
type failingStore struct {
	err error
}

func (f failingStore) FindByEmail(ctx context.Context, email string) (*store.User, error) {
	return nil, f.err
}

func (f failingStore) FindByID(ctx context.Context, id string) (*store.User, error) {
	return nil, f.err
}

func (f failingStore) Create(ctx context.Context, email, password string) (*store.User, error) {
	return nil, f.err
}

func TestProviderWrapsStoreErrors(t *testing.T) {
	storeErr := errors.New("database unavailable")
	provider := store.NewProvider(failingStore{err: storeErr})

	_, err := provider.VerifyIdentity(context.Background(), "a@b.com", "pw123")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, auth.ErrIdentityNotFound)

	_, err = provider.FindIdentityByID(context.Background(), "user-123")
	assert.ErrorIs(t, err, storeErr)
}
