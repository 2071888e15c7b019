package domain

import (
	"encoding/json"
	"time"
)

// APILog is one append-only record of a call to an upstream offer source.
type APILog struct {
	ID           string          `json:"id"`
	Endpoint     string          `json:"endpoint"`
	Method       string          `json:"method"`
	StatusCode   int             `json:"statusCode"`
	RequestBody  json.RawMessage `json:"requestBody,omitempty"`
	ResponseBody json.RawMessage `json:"responseBody,omitempty"`
	DurationMs   int64           `json:"durationMs"`
	Error        string          `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
