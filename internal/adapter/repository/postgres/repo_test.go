package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippulse/trippulse-api/internal/adapter/repository/postgres"
	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/test/testutil"
)

var baseTime = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func createTrip(t *testing.T, repo *postgres.TripRepo, userID *string, createdAt time.Time) domain.TripRequest {
	t.Helper()
	trip := domain.TripRequest{
		ID:            uuid.NewString(),
		UserID:        userID,
		Origin:        "FCO",
		Destination:   "BCN",
		DepartureDate: "2026-07-01",
		ReturnDate:    "2026-07-08",
		Travelers:     2,
		TripStyle:     domain.TripStyleSea,
		BudgetType:    domain.BudgetTotalTrip,
		TotalBudget:   testutil.Ptr(1200.0),
		Currency:      "EUR",
		FlightSplit:   50,
		HotelSplit:    35,
		ActivitySplit: 15,
		Preferences:   map[string]any{"timePreference": "morning"},
		Status:        domain.TripStatusDraft,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	created, err := repo.Create(context.Background(), trip)
	require.NoError(t, err)
	return created
}

func TestTripRepo(t *testing.T) {
	tx := testutil.NewTx(t)
	repo := postgres.NewTripRepo(tx)
	ctx := context.Background()
	owner := "user-" + uuid.NewString()

	older := createTrip(t, repo, &owner, baseTime)
	newer := createTrip(t, repo, &owner, baseTime.Add(time.Hour))
	createTrip(t, repo, nil, baseTime)

	t.Run("get round trips every column", func(t *testing.T) {
		got, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, older, got)
		assert.Equal(t, "morning", got.Preferences["timePreference"])
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list by user newest first", func(t *testing.T) {
		trips, err := repo.ListByUser(ctx, owner)
		require.NoError(t, err)
		require.Len(t, trips, 2)
		assert.Equal(t, newer.ID, trips[0].ID)
	})

	t.Run("update clears budget", func(t *testing.T) {
		patched := older
		patched.TotalBudget = nil
		patched.Destination = "LIS"
		updated, err := repo.Update(ctx, patched)
		require.NoError(t, err)
		assert.Nil(t, updated.TotalBudget)
		assert.Equal(t, "LIS", updated.Destination)
	})

	t.Run("update status", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, newer.ID, domain.TripStatusCompleted))
		got, err := repo.GetByID(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TripStatusCompleted, got.Status)

		assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.NewString(), domain.TripStatusSaved), domain.ErrNotFound)
	})
}

func TestOfferRepo_ReplaceForTrip(t *testing.T) {
	tx := testutil.NewTx(t)
	trips := postgres.NewTripRepo(tx)
	repo := postgres.NewOfferRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips, nil, baseTime)

	offer := func(code string, score float64) domain.FlightOffer {
		return domain.FlightOffer{
			RawOffer: domain.RawOffer{
				Airline:      domain.AirlineInfo{Code: code, Name: code + " Air", LowCost: true},
				FlightNumber: code + "123",
				Outbound:     domain.Leg{DepartureTime: "07:00", ArrivalTime: "09:15", Duration: domain.NewDurationInfo(135)},
				Return:       domain.Leg{DepartureTime: "18:00", ArrivalTime: "21:30", Stops: 1, Duration: domain.NewDurationInfo(210)},
				FlightPrice:  180,
				Currency:     "EUR",
				IsEstimate:   true,
			},
			DealScore: score,
			CreatedAt: baseTime,
		}
	}

	first, err := repo.ReplaceForTrip(ctx, trip.ID, []domain.FlightOffer{offer("FR", 7), offer("U2", 7), offer("LH", 9)})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "LH", first[0].Airline.Code)
	assert.Equal(t, "FR", first[1].Airline.Code, "ties keep insertion order")
	assert.Equal(t, 1, first[0].Return.Stops)
	assert.Equal(t, "2h 15m", first[0].Outbound.Duration.Formatted)

	second, err := repo.ReplaceForTrip(ctx, trip.ID, []domain.FlightOffer{offer("BA", 5)})
	require.NoError(t, err)
	require.Len(t, second, 1)

	_, err = repo.GetByID(ctx, first[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.GetByID(ctx, second[0].ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.TripID)

	empty, err := repo.ListByTrip(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSavedTripRepo(t *testing.T) {
	tx := testutil.NewTx(t)
	trips := postgres.NewTripRepo(tx)
	repo := postgres.NewSavedTripRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips, nil, baseTime)
	saved, err := repo.Create(ctx, domain.SavedTrip{
		ID:        uuid.NewString(),
		UserID:    "alice",
		TripID:    trip.ID,
		Name:      "Summer",
		CreatedAt: baseTime,
	})
	require.NoError(t, err)
	assert.Nil(t, saved.OfferID)

	list, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Summer", list[0].Name)

	assert.ErrorIs(t, repo.Delete(ctx, saved.ID, "bob"), domain.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, saved.ID, "alice"))
}

func TestUserRepo_Upsert(t *testing.T) {
	tx := testutil.NewTx(t)
	repo := postgres.NewUserRepo(tx)
	ctx := context.Background()
	openID := "oid-" + uuid.NewString()

	user := domain.User{
		ID:                uuid.NewString(),
		OpenID:            openID,
		Name:              "Ada",
		Role:              domain.RoleUser,
		PreferredLanguage: "en",
		PreferredCurrency: "EUR",
		CreatedAt:         baseTime,
		UpdatedAt:         baseTime,
		LastSignedIn:      baseTime,
	}
	first, err := repo.Upsert(ctx, user)
	require.NoError(t, err)

	user.ID = uuid.NewString()
	user.Role = domain.RoleAdmin
	user.LastSignedIn = baseTime.Add(time.Hour)
	second, err := repo.Upsert(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.RoleAdmin, second.Role)
	assert.Equal(t, baseTime.Add(time.Hour), second.LastSignedIn)

	_, err = repo.GetByOpenID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryRepos(t *testing.T) {
	tx := testutil.NewTx(t)
	trips := postgres.NewTripRepo(tx)
	snapshots := postgres.NewPriceSnapshotRepo(tx)
	logs := postgres.NewAPILogRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips, nil, baseTime)
	require.NoError(t, snapshots.Append(ctx, []domain.PriceSnapshot{
		{ID: uuid.NewString(), TripID: trip.ID, AirlineCode: "FR", Price: 100, Currency: "EUR", Source: domain.SnapshotSourceMock, RecordedAt: baseTime},
		{ID: uuid.NewString(), TripID: trip.ID, AirlineCode: "LH", Price: 300, Currency: "EUR", Source: domain.SnapshotSourceMock, RecordedAt: baseTime.Add(time.Minute)},
	}))
	require.NoError(t, snapshots.Append(ctx, nil))

	history, err := snapshots.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "LH", history[0].AirlineCode)

	require.NoError(t, logs.Append(ctx, domain.APILog{
		ID:          uuid.NewString(),
		Endpoint:    "/mock/search_flights",
		Method:      "POST",
		StatusCode:  200,
		RequestBody: json.RawMessage(`{"origin":"FCO"}`),
		DurationMs:  12,
		CreatedAt:   baseTime.Add(time.Hour * 24 * 365),
	}))

	recent, err := logs.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.JSONEq(t, `{"origin":"FCO"}`, string(recent[0].RequestBody))
	assert.Empty(t, recent[0].ResponseBody)
}
