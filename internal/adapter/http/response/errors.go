package response

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func writeError(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, &ErrorDetail{Code: code, Message: message, Details: details})
}

// InvalidRequestBody writes a 400 for a body that could not be decoded.
func InvalidRequestBody(c echo.Context) error {
	return writeError(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 with one message per offending field.
func ValidationError(c echo.Context, details map[string]string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 validation error with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// NotFound writes a 404.
func NotFound(c echo.Context) error {
	return writeError(c, http.StatusNotFound, CodeNotFound, MsgNotFound, nil)
}

// Unauthorized writes a 401.
func Unauthorized(c echo.Context) error {
	return writeError(c, http.StatusUnauthorized, CodeUnauthorized, MsgUnauthorized, nil)
}

// Forbidden writes a 403.
func Forbidden(c echo.Context) error {
	return writeError(c, http.StatusForbidden, CodeForbidden, MsgForbidden, nil)
}

// TooManyRequests writes a 429 with a Retry-After header rounded up to whole
// seconds, never less than one.
func TooManyRequests(c echo.Context, retryAfter time.Duration) error {
	seconds := int(math.Ceil(retryAfter.Seconds()))
	c.Response().Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
	return writeError(c, http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited, nil)
}

// ServiceUnavailableWithMessage writes a 503 with a custom message.
func ServiceUnavailableWithMessage(c echo.Context, message string) error {
	return writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, message, nil)
}

// GatewayTimeout writes a 504 for a request that ran out of time.
func GatewayTimeout(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 for a request the client abandoned.
func RequestCancelled(c echo.Context) error {
	return writeError(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 without leaking the cause.
func InternalServerError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
