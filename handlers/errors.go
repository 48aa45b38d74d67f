package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// abortWithError stops the handler chain with the standard error body for
// status.
func abortWithError(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = errorMessages[status]
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound)
}

// MethodNotAllowed answers requests for a known path with the wrong verb.
func MethodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed)
}

// isMalformedBody reports whether a bind error means the body was not
// JSON at all, as opposed to JSON of the wrong shape.
func isMalformedBody(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
