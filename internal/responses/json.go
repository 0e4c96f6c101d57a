package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/repositories"
	"portfolio-api/internal/validation"
)

// Envelope is the uniform response wrapper used by every API operation.
type Envelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Count   *int                     `json:"count,omitempty"`
	Data    any                      `json:"data,omitempty"`
	Error   string                   `json:"error,omitempty"`
	Errors  []validation.FieldError  `json:"errors,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList wraps a list payload together with its record count.
func SuccessList(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, errMsg string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Error:   errMsg,
	})
}

func FailValidation(c *gin.Context, verrs validation.Errors) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Errors:  verrs,
	})
}

// Error maps an error from the service layer onto the envelope: field
// violations become 400 with one message per field, missing records become
// 404, anything else is a 500 whose detail is hidden in release mode.
func Error(c *gin.Context, err error, notFoundMsg string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		FailValidation(c, verrs)
	case errors.Is(err, repositories.ErrNotFound):
		Fail(c, http.StatusNotFound, notFoundMsg)
	default:
		msg := "Internal Server Error"
		if gin.Mode() != gin.ReleaseMode {
			msg = err.Error()
		}
		Fail(c, http.StatusInternalServerError, msg)
	}
}
