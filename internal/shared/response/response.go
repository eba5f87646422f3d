package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the payload of every failed request: {"error": {...}}.
type ErrorBody struct {
	Error *Error `json:"error"`
}

type Error struct {
	Status  int         `json:"status"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// MessageBody is returned by operations that confirm rather than echo data.
type MessageBody struct {
	Message string `json:"message"`
}

// Success responses

// Success writes data under a single named key, e.g. {"book": {...}}.
func Success(c *gin.Context, statusCode int, key string, data interface{}) {
	c.JSON(statusCode, gin.H{key: data})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// Error responses

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, ErrorBody{
		Error: &Error{
			Status:  statusCode,
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
}
