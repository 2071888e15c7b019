// Package integration provides helpers and integration tests for the TripPulse API.
// Integration tests verify that components work together correctly, including
// HTTP handlers, use cases, the offer generator and in-memory storage.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/trippulse/trippulse-api/internal/adapter/http"
	"github.com/trippulse/trippulse-api/internal/adapter/http/middleware"
	"github.com/trippulse/trippulse-api/internal/adapter/repository/memory"
	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/ratelimit"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
	"github.com/trippulse/trippulse-api/internal/usecase"
)

const testSecret = "integration-test-secret"

// Options customizes the collaborators of a TestServer. Zero values pick a
// seeded generator without latency and a one minute cooldown window.
type Options struct {
	Generator usecase.OfferGenerator
	Limiter   domain.RateLimiter
	Seed      uint64
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo *echo.Echo
	Auth *middleware.Authenticator

	Trips     *memory.TripRepo
	Offers    *memory.OfferRepo
	Snapshots *memory.PriceSnapshotRepo
	Logs      *memory.APILogRepo

	Search usecase.OfferSearchUseCase
	Intake usecase.IntakeUseCase
	Saved  usecase.SavedTripUseCase
}

// NewTestServer creates a fully wired server over in-memory storage.
func NewTestServer(opts Options) *TestServer {
	clock := timeutil.NewRealClock()

	if opts.Generator == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = 42
		}
		opts.Generator = usecase.NewOfferGenerator(usecase.NewSeededRand(seed), nil)
	}
	if opts.Limiter == nil {
		opts.Limiter = ratelimit.NewWindowLimiter(time.Minute)
	}

	ts := &TestServer{
		Auth:      middleware.NewAuthenticator(middleware.AuthConfig{Secret: testSecret}),
		Trips:     memory.NewTripRepo(clock),
		Offers:    memory.NewOfferRepo(),
		Snapshots: memory.NewPriceSnapshotRepo(),
		Logs:      memory.NewAPILogRepo(memory.DefaultLogCapacity),
	}

	trips := usecase.NewTripUseCase(ts.Trips, clock)
	ts.Search = usecase.NewOfferSearchUseCase(usecase.OfferSearchDeps{
		Generator: opts.Generator,
		Limiter:   opts.Limiter,
		Trips:     ts.Trips,
		Offers:    ts.Offers,
		Snapshots: ts.Snapshots,
		Logs:      ts.Logs,
	}, &usecase.Config{Clock: clock, Logger: zerolog.Nop()})
	ts.Intake = usecase.NewIntakeUseCase(trips)
	ts.Saved = usecase.NewSavedTripUseCase(memory.NewSavedTripRepo(), ts.Trips, ts.Offers, clock)

	handler := httpAdapter.NewHandler(httpAdapter.Deps{
		Trips:    trips,
		Search:   ts.Search,
		Offers:   usecase.NewOfferQueryUseCase(ts.Trips, ts.Offers, ts.Snapshots),
		Saved:    ts.Saved,
		Users:    usecase.NewUserUseCase(memory.NewUserRepo(), clock),
		Admin:    usecase.NewAdminUseCase(ts.Logs),
		Airports: usecase.NewAirportDirectory(),
		Intake:   ts.Intake,
		Storage:  "memory",
		Clock:    clock,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop(), middleware.RecoveryConfig{})
	httpAdapter.RegisterRoutes(e, handler, ts.Auth, nil)
	ts.Echo = e

	return ts
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   any
	Token  string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Token != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Token mints a bearer token for the given subject and role.
func (ts *TestServer) Token(t *testing.T, openID string, role domain.Role) string {
	t.Helper()
	token, err := ts.Auth.IssueToken(domain.Principal{OpenID: openID, Name: openID, Role: role})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

// CreateTrip posts a trip draft and returns the stored trip.
func (ts *TestServer) CreateTrip(t *testing.T, body map[string]any, token string) domain.TripRequest {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/trips", Body: body, Token: token})
	if resp.Code != http.StatusCreated {
		t.Fatalf("Create trip returned %d: %s", resp.Code, resp.Body)
	}
	var trip domain.TripRequest
	if err := json.Unmarshal(resp.Body, &trip); err != nil {
		t.Fatalf("Failed to decode trip: %v", err)
	}
	return trip
}

// SearchRequest runs an offer search for a trip.
func (ts *TestServer) SearchRequest(tripID string, body any) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/v1/trips/%s/offers/search", tripID),
		Body:   body,
	})
}

// RefreshRequest runs an offer refresh for a trip.
func (ts *TestServer) RefreshRequest(tripID string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/v1/trips/%s/offers/refresh", tripID),
		Body:   map[string]any{},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// SearchResult is the decoded body of a search or refresh response.
type SearchResult struct {
	TripID      string               `json:"tripId"`
	Cached      bool                 `json:"cached"`
	RateLimited bool                 `json:"rateLimited"`
	Count       int                  `json:"count"`
	Offers      []domain.FlightOffer `json:"offers"`
}

// ParseSearchResponse parses the response body as a SearchResult.
func (r *Response) ParseSearchResponse() (*SearchResult, error) {
	var resp SearchResult
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]any, error) {
	var errResp map[string]any
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultTripBody returns a valid draft for a one-week Rome to Barcelona trip.
func DefaultTripBody() map[string]any {
	return map[string]any{
		"origin":        "FCO",
		"destination":   "BCN",
		"departureDate": FutureDate(30),
		"returnDate":    FutureDate(37),
		"travelers":     2,
		"tripStyle":     "city",
		"budgetType":    "total_trip",
		"totalBudget":   2400,
		"currency":      "EUR",
	}
}

// DefaultParams returns the search parameters stored on a trip.
func DefaultParams(trip domain.TripRequest) domain.TripParameters {
	return domain.TripParameters{
		Origin:          trip.Origin,
		Destination:     trip.Destination,
		DepartureDate:   trip.DepartureDate,
		ReturnDate:      trip.ReturnDate,
		Travelers:       trip.Travelers,
		Currency:        trip.Currency,
		TripStyle:       trip.TripStyle,
		BudgetPerPerson: trip.BudgetPerPerson(),
	}
}

// FutureDate returns a date string days ahead in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}
