package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/app/models/dto"
	"github.com/mgdelacruz/regisys/internal/app/services"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
)

type stubAuthService struct {
	result      *services.AuthResult
	loginErr    error
	googleErr   error
	registerErr error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*services.AuthResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.result, nil
}

func (s *stubAuthService) LoginWithGoogle(_ context.Context, _ string) (*services.AuthResult, error) {
	if s.googleErr != nil {
		return nil, s.googleErr
	}
	return s.result, nil
}

func (s *stubAuthService) Register(_ context.Context, _, _, _, _ string) error {
	return s.registerErr
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAuthController(svc, zerolog.Nop())
	r := gin.New()
	r.POST("/register", ctrl.Register)
	r.POST("/login", ctrl.Login)
	r.POST("/google-login", ctrl.GoogleLogin)
	return r
}

func decodeAuth(t *testing.T, body []byte) dto.AuthResponse {
	t.Helper()
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestLogin_Success(t *testing.T) {
	r := newAuthRouter(&stubAuthService{result: &services.AuthResult{
		FullName: "Maria Santos",
		Role:     models.RoleRegistrar,
		Token:    "session-token",
	}})

	w := performRequest(r, http.MethodPost, "/login", dto.LoginRequest{
		Username: "msantos",
		Password: "s3cret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeAuth(t, w.Body.Bytes())
	assert.True(t, resp.Success)
	assert.Equal(t, "Maria Santos", resp.FullName)
	assert.Equal(t, "registrar", resp.Role)
	assert.Equal(t, "session-token", resp.Token)
	assert.Equal(t, "Login successful!", resp.Message)
}

func TestLogin_InvalidCredentialsAnswers200(t *testing.T) {
	r := newAuthRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	w := performRequest(r, http.MethodPost, "/login", dto.LoginRequest{
		Username: "msantos",
		Password: "wrong",
	})

	// Legacy client contract: a rejected login is a 200 with success:false
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeStatus(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid username or password.", resp.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	r := newAuthRouter(&stubAuthService{})

	w := performRequest(r, http.MethodPost, "/login", map[string]string{"username": "msantos"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username and password are required.", decodeStatus(t, w).Message)
}

func TestRegister_Success(t *testing.T) {
	r := newAuthRouter(&stubAuthService{})

	w := performRequest(r, http.MethodPost, "/register", dto.RegisterRequest{
		FullName: "Juan Cruz",
		Username: "jcruz",
		Password: "s3cret123",
		Role:     "student",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeStatus(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Registration successful!", resp.Message)
}

func TestRegister_UsernameTakenAnswers200(t *testing.T) {
	r := newAuthRouter(&stubAuthService{registerErr: apperrors.ErrUsernameTaken})

	w := performRequest(r, http.MethodPost, "/register", dto.RegisterRequest{
		FullName: "Juan Cruz",
		Username: "jcruz",
		Password: "s3cret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeStatus(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Username already exists.", resp.Message)
}

func TestRegister_MissingFields(t *testing.T) {
	r := newAuthRouter(&stubAuthService{})

	w := performRequest(r, http.MethodPost, "/register", map[string]string{"username": "jcruz"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required.", decodeStatus(t, w).Message)
}

func TestGoogleLogin_Success(t *testing.T) {
	r := newAuthRouter(&stubAuthService{result: &services.AuthResult{
		FullName: "New Student",
		Role:     models.RoleStudent,
		Token:    "session-token",
	}})

	w := performRequest(r, http.MethodPost, "/google-login", dto.GoogleLoginRequest{Token: "id-token"})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeAuth(t, w.Body.Bytes())
	assert.True(t, resp.Success)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "Google login successful!", resp.Message)
}

func TestGoogleLogin_VerificationFailure(t *testing.T) {
	r := newAuthRouter(&stubAuthService{googleErr: apperrors.ErrGoogleVerification})

	w := performRequest(r, http.MethodPost, "/google-login", dto.GoogleLoginRequest{Token: "bad"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Google login failed.", decodeStatus(t, w).Message)
}

func TestGoogleLogin_MissingToken(t *testing.T) {
	r := newAuthRouter(&stubAuthService{})

	w := performRequest(r, http.MethodPost, "/google-login", map[string]string{})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Google login failed.", decodeStatus(t, w).Message)
}
