package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
}

// Health writes a health check response naming the active storage backend.
func Health(c echo.Context, storage string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  "ok",
		Storage: storage,
	})
}

// PDF writes a 200 OK response with an inline PDF document.
func PDF(c echo.Context, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", body)
}
