package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trippulse/trippulse-api/internal/domain"
)

const savedTripColumns = `id, user_id, trip_id, offer_id, name, notes, created_at`

// SavedTripRepo is the Postgres implementation of domain.SavedTripRepository.
type SavedTripRepo struct {
	db db
}

// NewSavedTripRepo constructs a SavedTripRepo.
func NewSavedTripRepo(db db) *SavedTripRepo {
	return &SavedTripRepo{db: db}
}

func (r *SavedTripRepo) Create(ctx context.Context, saved domain.SavedTrip) (domain.SavedTrip, error) {
	const q = `
		INSERT INTO saved_trips (id, user_id, trip_id, offer_id, name, notes, created_at)
		VALUES (@id, @user_id, @trip_id, @offer_id, @name, @notes, @created_at)
		RETURNING ` + savedTripColumns

	args := pgx.NamedArgs{
		"id":         saved.ID,
		"user_id":    saved.UserID,
		"trip_id":    saved.TripID,
		"offer_id":   saved.OfferID,
		"name":       saved.Name,
		"notes":      saved.Notes,
		"created_at": saved.CreatedAt,
	}

	result, err := scanSavedTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.SavedTrip{}, fmt.Errorf("postgres.SavedTripRepo.Create: %w", err)
	}
	return result, nil
}

func (r *SavedTripRepo) ListByUser(ctx context.Context, userID string) ([]domain.SavedTrip, error) {
	const q = `SELECT ` + savedTripColumns + ` FROM saved_trips WHERE user_id = @user_id ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("postgres.SavedTripRepo.ListByUser: %w", err)
	}
	list, err := collect(rows, scanSavedTrip)
	if err != nil {
		return nil, fmt.Errorf("postgres.SavedTripRepo.ListByUser: %w", err)
	}
	return list, nil
}

func (r *SavedTripRepo) Delete(ctx context.Context, id, userID string) error {
	const q = `DELETE FROM saved_trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("postgres.SavedTripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("postgres.SavedTripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanSavedTrip(s scanner) (domain.SavedTrip, error) {
	var st domain.SavedTrip
	if err := s.Scan(&st.ID, &st.UserID, &st.TripID, &st.OfferID, &st.Name, &st.Notes, &st.CreatedAt); err != nil {
		return domain.SavedTrip{}, notFound(err)
	}
	st.CreatedAt = st.CreatedAt.UTC()
	return st, nil
}

var _ domain.SavedTripRepository = (*SavedTripRepo)(nil)
