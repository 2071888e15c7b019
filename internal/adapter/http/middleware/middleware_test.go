package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippulse/trippulse-api/internal/domain"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "mints a uuid", incoming: ""},
		{name: "reuses the caller's id", incoming: "existing-request-id-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			handler := RequestID()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(RequestIDHeader)
			if tt.incoming == "" {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.incoming, got)
			}
			assert.Equal(t, got, GetRequestID(c))
		})
	}
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log output should be valid JSON")
		entries = append(entries, entry)
	}
	return entries
}

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips?foo=bar", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	req.Header.Set("X-Real-IP", "192.168.1.100")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "test-req-id-123")
	SetPrincipal(c, domain.Principal{OpenID: "user-7"})

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return c.String(http.StatusCreated, "ok")
	})
	require.NoError(t, handler(c))

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/trips", entry["path"])
	assert.Equal(t, "foo=bar", entry["query"])
	assert.Equal(t, float64(201), entry["status"])
	assert.Equal(t, "192.168.1.100", entry["client_ip"])
	assert.Equal(t, "user-7", entry["user_id"])
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusOK, wantLevel: "info"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "warn"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())

			handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entries := decodeLogLines(t, &logBuf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), rec)

	handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	assert.NoError(t, handler(c), "the error is handed to echo, not returned")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRequestLogger_AttachesContextLogger(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/test", nil), httptest.NewRecorder())
	c.Set("request_id", "ctx-req-id")

	handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from handler")
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 2)
	assert.Equal(t, "from handler", entries[0]["message"])
	assert.Equal(t, "ctx-req-id", entries[0]["request_id"])
}

func TestRecover_Returns500OnPanic(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), rec)
	c.Set("request_id", "panic-test-id")

	handler := Recover(zerolog.New(&logBuf), RecoveryConfig{})(func(c echo.Context) error {
		panic("test panic message")
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body["code"])
	assert.Equal(t, "An unexpected error occurred", body["message"])
}

func TestRecover_LogsPanicWithStackTrace(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())
	c.Set("request_id", "stack-test-id")

	handler := Recover(zerolog.New(&logBuf), RecoveryConfig{})(func(c echo.Context) error {
		panic("stack trace test panic")
	})
	_ = handler(c)

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "stack-test-id", entry["request_id"])
	assert.Equal(t, "stack trace test panic", entry["panic"])
	stack, ok := entry["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestRecover_HandlesErrorPanic(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())

	handler := Recover(zerolog.New(&logBuf), RecoveryConfig{})(func(c echo.Context) error {
		panic(assert.AnError)
	})
	_ = handler(c)

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, assert.AnError.Error(), entries[0]["panic"])
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), rec)

	handler := Recover(zerolog.New(&logBuf), RecoveryConfig{})(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "fine", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

func TestRecover_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/panic", nil), httptest.NewRecorder())

	handler := Recover(zerolog.New(&logBuf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack")
	})
	_ = handler(c)

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "stack")
}

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&logBuf), RecoveryConfig{})

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	entries := decodeLogLines(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, rec.Header().Get(RequestIDHeader), entries[0]["request_id"])
	assert.Equal(t, "/test", entries[0]["route"])
}

func TestSetup_RecoversPanic(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&logBuf), RecoveryConfig{})

	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestSetup_ProductionHidesStack(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&logBuf), RecoveryConfig{DisablePrintStack: true})

	e.GET("/panic", func(c echo.Context) error {
		panic("config panic test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var panicEntry map[string]any
	for _, entry := range decodeLogLines(t, &logBuf) {
		if entry["message"] == "Panic recovered" {
			panicEntry = entry
		}
	}
	require.NotNil(t, panicEntry, "should have panic log entry")
	assert.NotContains(t, panicEntry, "stack")
	assert.NotEmpty(t, panicEntry["request_id"])
}
