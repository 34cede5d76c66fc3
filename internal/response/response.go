package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatrika/service-planner/internal/domain/apperr"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// statusForKind maps the application error taxonomy to HTTP status codes.
// This is the only place where errors become status codes.
var statusForKind = map[apperr.Kind]int{
	apperr.KindValidation: http.StatusBadRequest,
	apperr.KindLookup:     http.StatusBadRequest,
	apperr.KindNotFound:   http.StatusNotFound,
	apperr.KindUpstream:   http.StatusBadGateway,
	apperr.KindInternal:   http.StatusInternalServerError,
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// NotFound writes a 404 response with the given message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Message: message})
}

// Error maps an application error to its HTTP status code and writes the
// error body.
func Error(c *gin.Context, err error) {
	status, ok := statusForKind[apperr.KindOf(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorBody{Message: err.Error()})
}
