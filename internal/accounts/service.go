// Package accounts composes the user directory, the credential store and
// the token issuer into the registration and authentication flows.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tasktrack/internal/apperr"
	"tasktrack/internal/auth"
	"tasktrack/internal/models"
)

// UserStore is the slice of the directory the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, nu models.NewUser) (models.User, error)
	UserByID(ctx context.Context, id int) (models.User, error)
	UserByLogin(ctx context.Context, login string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// RegisterInput is the full set of fields a registration supplies. The
// creation date is never part of it: the server clock assigns it.
type RegisterInput struct {
	Login     string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// TokenResult is a successful login: a bearer token and its type tag.
type TokenResult struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// Service implements the account flows over injected collaborators.
type Service struct {
	users     UserStore
	passwords *auth.Passwords
	tokens    *auth.Tokens
	clock     func() time.Time
}

func NewService(users UserStore, passwords *auth.Passwords, tokens *auth.Tokens) *Service {
	return &Service{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		clock:     time.Now,
	}
}

// Register hashes the password, stamps the server-side creation date and
// persists the user. Duplicate login or email surfaces as apperr.ErrConflict
// from the store's unique constraints; the returned user never carries the
// hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	user, err := s.users.CreateUser(ctx, models.NewUser{
		Login:        in.Login,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    models.DateOf(s.clock()),
	})
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a bearer token with subject =
// login. The two failure modes stay typed for logging, but both unwrap to
// ErrInvalidCredentials so the transport answers identically for an unknown
// login and a wrong password.
func (s *Service) Login(ctx context.Context, login, password string) (TokenResult, error) {
	user, err := s.users.UserByLogin(ctx, login)
	if errors.Is(err, apperr.ErrNotFound) {
		return TokenResult{}, apperr.ErrUnknownLogin
	}
	if err != nil {
		return TokenResult{}, err
	}

	if !s.passwords.Verify(password, user.PasswordHash) {
		return TokenResult{}, apperr.ErrBadPassword
	}

	token, err := s.tokens.Issue(user.Login)
	if err != nil {
		return TokenResult{}, fmt.Errorf("login: %w", err)
	}
	return TokenResult{Token: token, TokenType: "bearer"}, nil
}

// GetUser returns the hashless projection of a single user.
func (s *Service) GetUser(ctx context.Context, id int) (models.User, error) {
	return s.users.UserByID(ctx, id)
}

// ListUsers returns all users, hashless.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

// ResolveLogin maps a verified token subject back to its user record. Used
// by the ownership policy to find the acting user.
func (s *Service) ResolveLogin(ctx context.Context, login string) (models.User, error) {
	return s.users.UserByLogin(ctx, login)
}
