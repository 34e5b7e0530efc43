package service

import (
	"context"
	"errors"
	"strings"

	"printshop/internal/auth"
	dom "printshop/internal/domain"
	"printshop/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUsernameTaken = errors.New("username already taken")

// UserService handles user auth logic.
type UserService struct {
	store store.Store
}

// NewUserService returns a new UserService.
func NewUserService(st store.Store) *UserService {
	return &UserService{store: st}
}

// ValidateCredentials checks username and password; returns user if valid.
// A missing user and a wrong password produce the same error.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !auth.VerifyPassword(password, u.Password) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new non-admin user with a hashed password. The store
// itself does not enforce username uniqueness; this is the only write path
// for accounts, so the check here keeps usernames unique through the API.
func (s *UserService) Register(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	if _, err := s.store.GetUserByUsername(ctx, username); err == nil {
		return dom.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return dom.User{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return dom.User{}, err
	}
	return s.store.CreateUser(ctx, dom.User{
		Username: username,
		Password: hash,
		IsAdmin:  false,
	})
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
