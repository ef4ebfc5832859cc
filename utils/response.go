package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mocksocial/apperror"
	"mocksocial/models"
)

func Success(c *gin.Context, message string, data any) {
	respond(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data any) {
	respond(c, http.StatusCreated, message, data)
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.APIResponse{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// Error writes err as an error envelope. Errors outside the apperror
// taxonomy are logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		log.Errorf("[response] unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		InternalError(c, "An internal server error occurred")
		return
	}

	status := appErr.StatusCode()
	if status == http.StatusInternalServerError {
		log.Errorf("[response] %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}
	abortWithError(c, status, appErr.Message)
}

func BadRequest(c *gin.Context, message string) {
	abortWithError(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	abortWithError(c, http.StatusUnauthorized, message)
}

func InternalError(c *gin.Context, message string) {
	abortWithError(c, http.StatusInternalServerError, message)
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    message,
	})
}
