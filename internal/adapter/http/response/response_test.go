package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessWriters(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			write:      func(c echo.Context) error { return OK(c, map[string]int{"count": 2}) },
			wantStatus: http.StatusOK,
			wantBody:   `{"count":2}`,
		},
		{
			name:       "created",
			write:      func(c echo.Context) error { return Created(c, map[string]string{"id": "t-1"}) },
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"t-1"}`,
		},
		{
			name:       "health",
			write:      func(c echo.Context) error { return Health(c, "memory") },
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","storage":"memory"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestNoContent(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, NoContent(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorWriters(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{name: "invalid body", write: InvalidRequestBody, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidRequest, wantMessage: MsgInvalidRequestBody},
		{
			name:        "validation message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "travelers must be between 1 and 20") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "travelers must be between 1 and 20",
		},
		{name: "not found", write: NotFound, wantStatus: http.StatusNotFound, wantCode: CodeNotFound, wantMessage: MsgNotFound},
		{name: "unauthorized", write: Unauthorized, wantStatus: http.StatusUnauthorized, wantCode: CodeUnauthorized, wantMessage: MsgUnauthorized},
		{name: "forbidden", write: Forbidden, wantStatus: http.StatusForbidden, wantCode: CodeForbidden, wantMessage: MsgForbidden},
		{
			name:        "storage down",
			write:       func(c echo.Context) error { return ServiceUnavailableWithMessage(c, "postgres storage is unreachable") },
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    CodeServiceUnavailable,
			wantMessage: "postgres storage is unreachable",
		},
		{name: "timeout", write: GatewayTimeout, wantStatus: http.StatusGatewayTimeout, wantCode: CodeTimeout, wantMessage: MsgTimeout},
		{name: "cancelled", write: RequestCancelled, wantStatus: http.StatusGatewayTimeout, wantCode: CodeTimeout, wantMessage: MsgRequestCancelled},
		{name: "internal", write: InternalServerError, wantStatus: http.StatusInternalServerError, wantCode: CodeInternalError, wantMessage: MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var result ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Empty(t, result.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()

	err := ValidationError(c, map[string]string{
		"origin":     "origin is required",
		"returnDate": "returnDate must not be before departureDate",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, "origin is required", result.Details["origin"])
	assert.Len(t, result.Details, 2)
}

func TestPDF(t *testing.T) {
	c, rec := setupEcho()

	err := PDF(c, "itinerary.pdf", []byte("%PDF-1.3"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "itinerary.pdf")
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestTooManyRequests(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter time.Duration
		wantHeader string
	}{
		{name: "rounds up", retryAfter: 1500 * time.Millisecond, wantHeader: "2"},
		{name: "whole seconds", retryAfter: 3 * time.Second, wantHeader: "3"},
		{name: "at least one second", retryAfter: 0, wantHeader: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, TooManyRequests(c, tt.retryAfter))
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Retry-After"))

			var result ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, CodeRateLimited, result.Code)
		})
	}
}
