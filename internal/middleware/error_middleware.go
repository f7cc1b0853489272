package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mgdelacruz/regisys/internal/app/models/dto"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into the portal's HTTP contract.
// Two quirks are deliberate: an invalid manual login and a taken username
// answer 200 with success:false, which is what the existing client expects.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrStudentNumberExists):
		c.JSON(http.StatusConflict, dto.Fail("Student number already exists."))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Student not found"))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusOK, dto.Fail("Username already exists."))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusOK, dto.Fail("Invalid username or password."))
	case errors.Is(err, apperrors.ErrGoogleVerification):
		c.JSON(http.StatusInternalServerError, dto.Fail("Google login failed."))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.Fail("Permission denied"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Resource not found"))
	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("Server error"))
	}
}
