package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mgdelacruz/regisys/internal/app/models/dto"
	"github.com/mgdelacruz/regisys/internal/app/services"
	"github.com/mgdelacruz/regisys/internal/middleware"
)

// AuthController handles registration and login endpoints
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a manual account
// @Summary Register account
// @Description Creates a username/password account with a whitelisted role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.StatusResponse "Missing fields"
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("All fields are required."))
		return
	}

	err := ctrl.authService.Register(c.Request.Context(), req.FullName, req.Username, req.Password, req.Role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Registration successful!"))
}

// Login resolves a manual username/password attempt
// @Summary Manual login
// @Description Checks credentials and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.StatusResponse "Missing fields"
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Username and password are required."))
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success:  true,
		FullName: result.FullName,
		Role:     string(result.Role),
		Token:    result.Token,
		Message:  "Login successful!",
	})
}

// GoogleLogin resolves a federated attempt from a Google ID token
// @Summary Google login
// @Description Verifies a Google ID token, provisioning a student account on first sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 500 {object} dto.StatusResponse "Verification failure"
// @Router /google-login [post]
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Fail("Google login failed."))
		return
	}

	result, err := ctrl.authService.LoginWithGoogle(c.Request.Context(), req.Token)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success:  true,
		FullName: result.FullName,
		Role:     string(result.Role),
		Token:    result.Token,
		Message:  "Google login successful!",
	})
}

// Me returns the authenticated session state
// @Summary Current session
// @Description Returns the identity carried by the session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.StatusResponse
// @Router /me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, _ := c.Get(middleware.ContextUserID)
	fullName, _ := c.Get(middleware.ContextFullName)
	role, _ := c.Get(middleware.ContextRole)

	id, ok := userID.(int64)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		UserID:   id,
		FullName: fullName.(string),
		Role:     role.(string),
	})
}
