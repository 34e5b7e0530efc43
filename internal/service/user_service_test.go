package service

import (
	"context"
	"testing"

	"printshop/internal/auth"
	"printshop/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	hash, err := auth.HashPassword("admin")
	require.NoError(t, err)
	st, err := store.NewMemStore(hash)
	require.NoError(t, err)
	return NewUserService(st)
}

func TestRegisterAndValidate(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.IsAdmin, "registered users are never admins")
	assert.NotEqual(t, "wonderland", u.Password, "plaintext must not be stored")

	got, err := svc.ValidateCredentials(ctx, "alice", "wonderland")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestRegisterTrimsUsername(t *testing.T) {
	svc := newUserService(t)
	u, err := svc.Register(context.Background(), "  bob  ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(ctx, "   ", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(ctx, "carol", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dave", "pw1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "dave", "pw2")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The seeded admin username is taken too.
	_, err = svc.Register(ctx, "admin", "pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestValidateCredentialsFailures(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	// Unknown user and wrong password are indistinguishable.
	_, err := svc.ValidateCredentials(ctx, "nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.ValidateCredentials(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.ValidateCredentials(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateSeededAdmin(t *testing.T) {
	svc := newUserService(t)
	u, err := svc.ValidateCredentials(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newUserService(t)
	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
