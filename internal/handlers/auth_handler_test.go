package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportline_backend/internal/services/dto"
	"sportline_backend/internal/validator"
	"sportline_backend/pkg/apperrors"
)

// stubAuthService - управляемая заглушка сервисного слоя
type stubAuthService struct {
	registerErr error
	loginResp   *dto.LoginResponse
	loginErr    error
	forgotErr   error
	resetErr    error

	gotResetToken string
}

func (s *stubAuthService) Register(req *dto.RegisterRequest, photo []byte, photoType string) (*dto.UserDTO, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &dto.UserDTO{ID: "user-1", Email: req.Email}, nil
}

func (s *stubAuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResp, nil
}

func (s *stubAuthService) RequestPasswordReset(emailAddr string) error {
	return s.forgotErr
}

func (s *stubAuthService) ResetPassword(rawToken, newPassword string) error {
	s.gotResetToken = rawToken
	return s.resetErr
}

func (s *stubAuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	return nil
}

func newAuthTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(NewBaseHandler(validator.New()), svc)
	noLimit := func(c *gin.Context) { c.Next() }
	h.RegisterRoutes(r.Group("/api/v1"), noLimit)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{})

	w := postJSON(r, "/api/v1/auth/register", gin.H{
		"first_name":        "John",
		"last_name":         "Doe",
		"email":             "john@example.com",
		"password":          "Str0ngPass!",
		"favorite_sport_id": "sport-1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "john@example.com")
}

func TestRegisterEndpoint_ValidationError(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{})

	// Слабый пароль и имя с цифрами режутся валидатором до сервиса
	w := postJSON(r, "/api/v1/auth/register", gin.H{
		"first_name":        "John2",
		"last_name":         "Doe",
		"email":             "john@example.com",
		"password":          "weak",
		"favorite_sport_id": "sport-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "first_name")
	assert.Contains(t, w.Body.String(), "password")
}

func TestRegisterEndpoint_Conflict(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{registerErr: apperrors.ErrEmailAlreadyExists})

	w := postJSON(r, "/api/v1/auth/register", gin.H{
		"first_name":        "John",
		"last_name":         "Doe",
		"email":             "john@example.com",
		"password":          "Str0ngPass!",
		"favorite_sport_id": "sport-1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{
		loginResp: &dto.LoginResponse{
			Message: "Login successful",
			Token:   "jwt-token",
			User:    dto.UserDTO{ID: "user-1"},
		},
	})

	w := postJSON(r, "/api/v1/auth/login", gin.H{
		"email":    "john@example.com",
		"password": "Str0ngPass!",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jwt-token")
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	w := postJSON(r, "/api/v1/auth/login", gin.H{
		"email":    "john@example.com",
		"password": "WrongPass1!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResetPasswordEndpoint_TokenFromPath(t *testing.T) {
	svc := &stubAuthService{}
	r := newAuthTestRouter(svc)

	data, _ := json.Marshal(gin.H{"password": "NewStr0ng!"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/password/reset/raw-token-123", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "raw-token-123", svc.gotResetToken)
}

func TestForgotPasswordEndpoint_DependencyFailure(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{
		forgotErr: apperrors.DependencyError(assert.AnError, "email"),
	})

	w := postJSON(r, "/api/v1/password/forgot", gin.H{"email": "john@example.com"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
