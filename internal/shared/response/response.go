package response

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error envelope for every failed request.
// Status is "fail" for 4xx and "error" for 5xx. Stack is only
// populated outside production.
type ErrorBody struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// exposeStack is set once at boot; never toggled at runtime.
var exposeStack bool

// Init wires environment-dependent behavior. Stack traces leak
// internals, so they are kept out of production responses.
func Init(env string) {
	exposeStack = env != "production"
}

// Fail writes a 4xx error body.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Success: false,
		Status:  "fail",
		Message: message,
	})
}

// BadRequest writes a 400 error body.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 error body.
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalError writes a 500 error body. The underlying error and a
// stack trace are included outside production; production clients get
// a generic message only.
func InternalError(c *gin.Context, err error) {
	body := ErrorBody{
		Success: false,
		Status:  "error",
		Message: "Internal server error",
	}
	if exposeStack && err != nil {
		body.Message = err.Error()
		body.Stack = string(debug.Stack())
	}
	c.JSON(http.StatusInternalServerError, body)
}
