package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neswanths/Blinky/internal/feature/auth/domain/entity"
	"github.com/neswanths/Blinky/internal/feature/auth/usecase"
	jwtmw "github.com/neswanths/Blinky/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, email, password string) (*entity.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return &entity.User{ID: 1, Email: email, CreatedAt: time.Now()}, nil
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials // Default: failure
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, email, password string) (*entity.User, error)
		expectedStatus   int
		expectedError    string
	}{
		{
			name:        "success: user registration",
			requestBody: gin.H{"email": "test@example.com", "password": "pw1"},
			mockRegisterFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email, CreatedAt: time.Now()}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "pw1"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"email": "existing@example.com", "password": "pw1"},
			mockRegisterFunc: func(ctx context.Context, email, password string) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/users", h.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, response["error"])
			} else {
				assert.Equal(t, float64(1), response["id"])
				assert.Equal(t, "test@example.com", response["email"])
				assert.NotEmpty(t, response["created_at"])
				assert.NotContains(t, response, "password", "password hash must never be serialized")
			}
		})
	}
}

func TestAuthHandler_Token(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		form           url.Values
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
	}{
		{
			name: "success: valid credentials",
			form: url.Values{"username": {"a@x.com"}, "password": {"pw1"}},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				if email != "a@x.com" || password != "pw1" {
					t.Errorf("unexpected credentials: %q %q", email, password)
				}
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "failure: wrong password",
			form: url.Values{"username": {"a@x.com"}, "password": {"nope"}},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "failure: missing form fields",
			form:           url.Values{"username": {"a@x.com"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/token", h.Token)

			req, _ := http.NewRequest(http.MethodPost, "/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "signed-token", response["access_token"])
				assert.Equal(t, "bearer", response["token_type"])
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the authenticated user's record", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/me", nil)
		c.Set(jwtmw.ContextUser, &entity.User{ID: 7, Email: "me@example.com", CreatedAt: time.Now()})

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(7), response["id"])
		assert.Equal(t, "me@example.com", response["email"])
	})

	t.Run("missing context user yields 401", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
