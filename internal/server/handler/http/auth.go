// Package http provides HTTP handlers for user authentication,
// the book catalog, orders, and admin stats.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronin/bookstore/internal/models"
	"github.com/avoronin/bookstore/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new account with role "user".
	// Returns models.ErrDuplicateUsername if the username is taken.
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, username, password string) (*service.LoginResult, error)
	// AdminLogin behaves like Login but requires the admin role.
	AdminLogin(ctx context.Context, username, password string) (*service.LoginResult, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	// Username is the login name.
	Username string `json:"username"`
	// Password is the plaintext credential. It is verified against the
	// stored hash and never persisted or echoed back.
	Password string `json:"password"`
}

// loginResponse is the wire shape of a successful login.
type loginResponse struct {
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    service.UserSummary `json:"user"`
}

// Register handles POST /api/auth/register.
// It expects a JSON body with non-empty "username" and "password" fields,
// creates the account with a hashed credential, and reports success without
// echoing any sensitive field.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	_, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			writeMessage(w, http.StatusBadRequest, "Username already exists")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /api/auth/login.
// An unknown username yields 404 and a failed hash comparison yields 401;
// on success the response carries the session token and a non-sensitive
// account summary.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeLoginError(w, err, "Failed to login user")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Authentication successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Admin handles POST /api/auth/admin.
// It applies the same hash-verify policy as Login and additionally requires
// the account's role to be admin.
func (h *AuthHandler) Admin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.AuthService.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeLoginError(w, err, "Failed to login as admin")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Authentication successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// writeLoginError maps service login errors onto the wire contract.
func (h *AuthHandler) writeLoginError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrInvalidPassword):
		writeMessage(w, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, service.ErrNotAdmin):
		writeMessage(w, http.StatusForbidden, "Admin access required")
	default:
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}
