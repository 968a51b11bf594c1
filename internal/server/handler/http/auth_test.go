package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/bookstore/internal/models"
	"github.com/avoronin/bookstore/internal/service"
)

// fakeAuthService implements AuthService for testing.
type fakeAuthService struct {
	registerErr error
	loginResult *service.LoginResult
	loginErr    error
	adminResult *service.LoginResult
	adminErr    error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.User{ID: "id-1", Username: username, Role: models.RoleUser}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthService) AdminLogin(ctx context.Context, username, password string) (*service.LoginResult, error) {
	return f.adminResult, f.adminErr
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeAuthService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty username",
			body:           `{"username":"","password":"x"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "empty password",
			body:           `{"username":"alice","password":""}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "invalid request",
		},
		{
			name:           "duplicate username",
			body:           `{"username":"alice","password":"s3cret"}`,
			service:        &fakeAuthService{registerErr: models.ErrDuplicateUsername},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Username already exists",
		},
		{
			name:           "store failure",
			body:           `{"username":"alice","password":"s3cret"}`,
			service:        &fakeAuthService{registerErr: errors.New("db down")},
			expectedCode:   http.StatusInternalServerError,
			expectedSubstr: "Failed to register user",
		},
		{
			name:           "success",
			body:           `{"username":"alice","password":"s3cret"}`,
			service:        &fakeAuthService{},
			expectedCode:   http.StatusCreated,
			expectedSubstr: "User registered successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Register(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			buf := new(bytes.Buffer)
			if _, err := buf.ReadFrom(res.Body); err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, buf.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	okResult := &service.LoginResult{
		Token: "signed-token",
		User:  service.UserSummary{Username: "alice", Role: models.RoleUser},
	}

	tests := []struct {
		name         string
		body         string
		service      *fakeAuthService
		expectedCode int
		expectedMsg  string
		expectToken  bool
	}{
		{
			name:         "invalid JSON",
			body:         `{{`,
			service:      &fakeAuthService{},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid request",
		},
		{
			name:         "user not found",
			body:         `{"username":"bob","password":"x"}`,
			service:      &fakeAuthService{loginErr: service.ErrUserNotFound},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "User not found",
		},
		{
			name:         "wrong password",
			body:         `{"username":"alice","password":"wrong"}`,
			service:      &fakeAuthService{loginErr: service.ErrInvalidPassword},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid password",
		},
		{
			name:         "store failure",
			body:         `{"username":"alice","password":"s3cret"}`,
			service:      &fakeAuthService{loginErr: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Failed to login user",
		},
		{
			name:         "success",
			body:         `{"username":"alice","password":"s3cret"}`,
			service:      &fakeAuthService{loginResult: okResult},
			expectedCode: http.StatusOK,
			expectedMsg:  "Authentication successful",
			expectToken:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(tt.body))
			h := &AuthHandler{AuthService: tt.service}
			h.Login(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			var payload map[string]any
			if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode JSON: %v", err)
			}
			if payload["message"] != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, payload["message"])
			}
			if tt.expectToken {
				if payload["token"] != "signed-token" {
					t.Errorf("expected token in response, got %v", payload["token"])
				}
				user, ok := payload["user"].(map[string]any)
				if !ok {
					t.Fatalf("expected user object, got %v", payload["user"])
				}
				if user["username"] != "alice" || user["role"] != "user" {
					t.Errorf("unexpected user summary: %v", user)
				}
			} else if _, present := payload["token"]; present {
				t.Error("token must not be present on failed login")
			}
		})
	}
}

func TestAuthHandler_Admin(t *testing.T) {
	okResult := &service.LoginResult{
		Token: "admin-token",
		User:  service.UserSummary{Username: "root", Role: models.RoleAdmin},
	}

	tests := []struct {
		name         string
		service      *fakeAuthService
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "not an admin",
			service:      &fakeAuthService{adminErr: service.ErrNotAdmin},
			expectedCode: http.StatusForbidden,
			expectedMsg:  "Admin access required",
		},
		{
			name:         "wrong password uses hash verify path",
			service:      &fakeAuthService{adminErr: service.ErrInvalidPassword},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid password",
		},
		{
			name:         "unknown admin",
			service:      &fakeAuthService{adminErr: service.ErrUserNotFound},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "User not found",
		},
		{
			name:         "success",
			service:      &fakeAuthService{adminResult: okResult},
			expectedCode: http.StatusOK,
			expectedMsg:  "Authentication successful",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/auth/admin",
				bytes.NewBufferString(`{"username":"root","password":"adminpw"}`))
			h := &AuthHandler{AuthService: tt.service}
			h.Admin(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			var payload map[string]any
			if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode JSON: %v", err)
			}
			if payload["message"] != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, payload["message"])
			}
		})
	}
}
