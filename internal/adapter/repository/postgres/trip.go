package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trippulse/trippulse-api/internal/domain"
)

const tripColumns = `id, user_id, session_id, origin, origin_city, destination, destination_city,
	departure_date, return_date, travelers, trip_style, budget_type, total_budget, currency,
	flight_split, hotel_split, activity_split, preferences, status, created_at, updated_at`

// TripRepo is the Postgres implementation of domain.TripRepository.
type TripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo. In production pass *pgxpool.Pool; in tests a pgx.Tx.
func NewTripRepo(db db) *TripRepo {
	return &TripRepo{db: db}
}

func (r *TripRepo) Create(ctx context.Context, trip domain.TripRequest) (domain.TripRequest, error) {
	const q = `
		INSERT INTO trip_requests (id, user_id, session_id, origin, origin_city, destination, destination_city,
			departure_date, return_date, travelers, trip_style, budget_type, total_budget, currency,
			flight_split, hotel_split, activity_split, preferences, status, created_at, updated_at)
		VALUES (@id, @user_id, @session_id, @origin, @origin_city, @destination, @destination_city,
			@departure_date, @return_date, @travelers, @trip_style, @budget_type, @total_budget, @currency,
			@flight_split, @hotel_split, @activity_split, @preferences, @status, @created_at, @updated_at)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("postgres.TripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *TripRepo) GetByID(ctx context.Context, id string) (domain.TripRequest, error) {
	const q = `SELECT ` + tripColumns + ` FROM trip_requests WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("postgres.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// Update overwrites every mutable column. created_at is left untouched.
func (r *TripRepo) Update(ctx context.Context, trip domain.TripRequest) (domain.TripRequest, error) {
	const q = `
		UPDATE trip_requests
		SET user_id          = @user_id,
		    session_id       = @session_id,
		    origin           = @origin,
		    origin_city      = @origin_city,
		    destination      = @destination,
		    destination_city = @destination_city,
		    departure_date   = @departure_date,
		    return_date      = @return_date,
		    travelers        = @travelers,
		    trip_style       = @trip_style,
		    budget_type      = @budget_type,
		    total_budget     = @total_budget,
		    currency         = @currency,
		    flight_split     = @flight_split,
		    hotel_split      = @hotel_split,
		    activity_split   = @activity_split,
		    preferences      = @preferences,
		    status           = @status,
		    updated_at       = @updated_at
		WHERE id = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("postgres.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *TripRepo) UpdateStatus(ctx context.Context, id string, status domain.TripStatus) error {
	const q = `UPDATE trip_requests SET status = @status, updated_at = now() WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return fmt.Errorf("postgres.TripRepo.UpdateStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("postgres.TripRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *TripRepo) ListByUser(ctx context.Context, userID string) ([]domain.TripRequest, error) {
	const q = `SELECT ` + tripColumns + ` FROM trip_requests WHERE user_id = @user_id ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("postgres.TripRepo.ListByUser: %w", err)
	}
	trips, err := collect(rows, scanTrip)
	if err != nil {
		return nil, fmt.Errorf("postgres.TripRepo.ListByUser: %w", err)
	}
	return trips, nil
}

func tripArgs(t domain.TripRequest) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":               t.ID,
		"user_id":          t.UserID, // nil becomes NULL
		"session_id":       t.SessionID,
		"origin":           t.Origin,
		"origin_city":      t.OriginCity,
		"destination":      t.Destination,
		"destination_city": t.DestinationCity,
		"departure_date":   t.DepartureDate,
		"return_date":      t.ReturnDate,
		"travelers":        t.Travelers,
		"trip_style":       string(t.TripStyle),
		"budget_type":      string(t.BudgetType),
		"total_budget":     t.TotalBudget,
		"currency":         t.Currency,
		"flight_split":     t.FlightSplit,
		"hotel_split":      t.HotelSplit,
		"activity_split":   t.ActivitySplit,
		"preferences":      t.Preferences,
		"status":           string(t.Status),
		"created_at":       t.CreatedAt,
		"updated_at":       t.UpdatedAt,
	}
}

func scanTrip(s scanner) (domain.TripRequest, error) {
	var (
		t                         domain.TripRequest
		style, budgetType, status string
	)

	err := s.Scan(
		&t.ID, &t.UserID, &t.SessionID, &t.Origin, &t.OriginCity, &t.Destination, &t.DestinationCity,
		&t.DepartureDate, &t.ReturnDate, &t.Travelers, &style, &budgetType, &t.TotalBudget, &t.Currency,
		&t.FlightSplit, &t.HotelSplit, &t.ActivitySplit, &t.Preferences, &status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.TripRequest{}, notFound(err)
	}

	t.TripStyle = domain.TripStyle(style)
	t.BudgetType = domain.BudgetType(budgetType)
	t.Status = domain.TripStatus(status)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

var _ domain.TripRepository = (*TripRepo)(nil)
