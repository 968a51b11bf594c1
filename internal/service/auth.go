// Package service provides authentication business logic,
// delegating persistence to a UserRepository.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronin/bookstore/internal/models"
)

// ErrUserNotFound is returned by login when no account matches the username.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidPassword is returned by login when the password does not match
// the stored credential hash.
var ErrInvalidPassword = errors.New("invalid password")

// ErrNotAdmin is returned by admin login when the account's role is not admin.
var ErrNotAdmin = errors.New("not an admin account")

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// UserExists returns true if a user with the given username exists.
	// ctx carries deadlines, cancellation signals, and other request-scoped values.
	UserExists(ctx context.Context, username string) (bool, error)
	// CreateUser creates a new user record and returns it.
	// Returns models.ErrDuplicateUsername if the username is taken.
	CreateUser(ctx context.Context, username, passwordHash string, role models.Role) (*models.User, error)
	// GetUserByUsername fetches a user by username.
	// Returns models.ErrNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// PasswordHasher abstracts credential hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether the plaintext matches the stored hash.
	Verify(password, hash string) bool
}

// TokenIssuer abstracts session token issuance.
type TokenIssuer interface {
	// Issue produces a signed token for the given user identity.
	Issue(userID, username string, role models.Role) (string, error)
}

// UserSummary is the non-sensitive account view returned to clients.
// It never carries the credential hash.
type UserSummary struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// LoginResult bundles the issued token with the account summary.
type LoginResult struct {
	Token string
	User  UserSummary
}

// AuthService implements registration and login by delegating persistence
// to a UserRepository and credential work to a PasswordHasher and TokenIssuer.
type AuthService struct {
	// repo performs the data-layer operations.
	repo UserRepository
	// hasher hashes and verifies passwords.
	hasher PasswordHasher
	// issuer signs session tokens.
	issuer TokenIssuer
}

// NewAuthService constructs a new AuthService using the provided dependencies.
func NewAuthService(repo UserRepository, hasher PasswordHasher, issuer TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer}
}

// Register creates a new account with role "user" and a hashed credential.
// The existence pre-check is an optimization; the store's unique constraint
// remains the authoritative guard against concurrent registrations, so a
// race still surfaces as models.ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if exists {
		return nil, models.ErrDuplicateUsername
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.CreateUser(ctx, username, hash, models.RoleUser)
}

// Login verifies the credentials and, on success, issues a session token.
// It returns ErrUserNotFound for unknown usernames and ErrInvalidPassword
// for a failed hash comparison, so a wrong password is never reported
// as a missing account.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.issueFor(user)
}

// AdminLogin behaves like Login but additionally requires the account's
// role to be admin. The password is verified through the same hash
// comparison as Login on every path.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		return nil, ErrNotAdmin
	}
	return s.issueFor(user)
}

func (s *AuthService) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

func (s *AuthService) issueFor(user *models.User) (*LoginResult, error) {
	token, err := s.issuer.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{
		Token: token,
		User:  UserSummary{Username: user.Username, Role: user.Role},
	}, nil
}
