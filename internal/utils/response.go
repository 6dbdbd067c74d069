// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	ErrorResponse(c, http.StatusBadRequest, string(apperrors.KindValidationFailed), "Invalid input", errors)
}

// RespondError maps a service failure to its HTTP shape. Internal failures
// are logged here, with only a generic message exposed to the caller; the
// services themselves do no logging.
func RespondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)

	switch kind {
	case apperrors.KindNotFound:
		ErrorResponse(c, http.StatusNotFound, string(kind), err.Error(), nil)
	case apperrors.KindConflict:
		ErrorResponse(c, http.StatusConflict, string(kind), err.Error(), nil)
	case apperrors.KindInvalidState:
		ErrorResponse(c, http.StatusUnprocessableEntity, string(kind), err.Error(), nil)
	case apperrors.KindValidationFailed:
		ErrorResponse(c, http.StatusBadRequest, string(kind), err.Error(), nil)
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Request failed")
		ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected internal error occurred", nil)
	}
}
