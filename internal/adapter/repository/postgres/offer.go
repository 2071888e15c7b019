package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trippulse/trippulse-api/internal/domain"
)

const offerColumns = `id, trip_id, airline_code, airline_name, airline_logo, low_cost, flight_number,
	outbound, return_leg, flight_price, hotel_estimate, activity_estimate, total_estimate,
	currency, booking_url, is_estimate, deal_score, created_at`

// OfferRepo is the Postgres implementation of domain.OfferRepository.
type OfferRepo struct {
	db db
}

// NewOfferRepo constructs an OfferRepo.
func NewOfferRepo(db db) *OfferRepo {
	return &OfferRepo{db: db}
}

// ReplaceForTrip deletes the previous batch and inserts the new one in a single
// transaction. position preserves the caller's order among equal deal scores.
func (r *OfferRepo) ReplaceForTrip(ctx context.Context, tripID string, offers []domain.FlightOffer) ([]domain.FlightOffer, error) {
	const del = `DELETE FROM offers WHERE trip_id = @trip_id`
	const ins = `
		INSERT INTO offers (id, trip_id, airline_code, airline_name, airline_logo, low_cost, flight_number,
			outbound, return_leg, flight_price, hotel_estimate, activity_estimate, total_estimate,
			currency, booking_url, is_estimate, deal_score, position, created_at)
		VALUES (@id, @trip_id, @airline_code, @airline_name, @airline_logo, @low_cost, @flight_number,
			@outbound, @return_leg, @flight_price, @hotel_estimate, @activity_estimate, @total_estimate,
			@currency, @booking_url, @is_estimate, @deal_score, @position, @created_at)`

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"trip_id": tripID}); err != nil {
			return fmt.Errorf("delete previous batch: %w", err)
		}
		for i, o := range offers {
			o.ID = uuid.NewString()
			o.TripID = tripID
			if _, err := tx.Exec(ctx, ins, offerArgs(o, i)); err != nil {
				return fmt.Errorf("insert offer %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.OfferRepo.ReplaceForTrip: %w", err)
	}

	return r.ListByTrip(ctx, tripID)
}

func (r *OfferRepo) ListByTrip(ctx context.Context, tripID string) ([]domain.FlightOffer, error) {
	const q = `SELECT ` + offerColumns + ` FROM offers WHERE trip_id = @trip_id ORDER BY deal_score DESC, position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("postgres.OfferRepo.ListByTrip: %w", err)
	}
	offers, err := collect(rows, scanOffer)
	if err != nil {
		return nil, fmt.Errorf("postgres.OfferRepo.ListByTrip: %w", err)
	}
	return offers, nil
}

func (r *OfferRepo) GetByID(ctx context.Context, id string) (domain.FlightOffer, error) {
	const q = `SELECT ` + offerColumns + ` FROM offers WHERE id = @id`

	offer, err := scanOffer(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.FlightOffer{}, fmt.Errorf("postgres.OfferRepo.GetByID: %w", err)
	}
	return offer, nil
}

func offerArgs(o domain.FlightOffer, position int) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                o.ID,
		"trip_id":           o.TripID,
		"airline_code":      o.Airline.Code,
		"airline_name":      o.Airline.Name,
		"airline_logo":      o.Airline.Logo,
		"low_cost":          o.Airline.LowCost,
		"flight_number":     o.FlightNumber,
		"outbound":          o.Outbound,
		"return_leg":        o.Return,
		"flight_price":      o.FlightPrice,
		"hotel_estimate":    o.HotelEstimate,
		"activity_estimate": o.ActivityEstimate,
		"total_estimate":    o.TotalEstimate,
		"currency":          o.Currency,
		"booking_url":       o.BookingURL,
		"is_estimate":       o.IsEstimate,
		"deal_score":        o.DealScore,
		"position":          position,
		"created_at":        o.CreatedAt,
	}
}

func scanOffer(s scanner) (domain.FlightOffer, error) {
	var o domain.FlightOffer

	err := s.Scan(
		&o.ID, &o.TripID, &o.Airline.Code, &o.Airline.Name, &o.Airline.Logo, &o.Airline.LowCost, &o.FlightNumber,
		&o.Outbound, &o.Return, &o.FlightPrice, &o.HotelEstimate, &o.ActivityEstimate, &o.TotalEstimate,
		&o.Currency, &o.BookingURL, &o.IsEstimate, &o.DealScore, &o.CreatedAt,
	)
	if err != nil {
		return domain.FlightOffer{}, notFound(err)
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}

var _ domain.OfferRepository = (*OfferRepo)(nil)
