package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// PriceSnapshotRepo is the Postgres implementation of domain.PriceSnapshotRepository.
type PriceSnapshotRepo struct {
	db db
}

// NewPriceSnapshotRepo constructs a PriceSnapshotRepo.
func NewPriceSnapshotRepo(db db) *PriceSnapshotRepo {
	return &PriceSnapshotRepo{db: db}
}

// Append writes all snapshots in one batch round trip.
func (r *PriceSnapshotRepo) Append(ctx context.Context, snapshots []domain.PriceSnapshot) error {
	const q = `
		INSERT INTO price_snapshots (id, trip_id, airline_code, price, currency, source, recorded_at)
		VALUES (@id, @trip_id, @airline_code, @price, @currency, @source, @recorded_at)`

	if len(snapshots) == 0 {
		return nil
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, s := range snapshots {
			batch.Queue(q, pgx.NamedArgs{
				"id":           s.ID,
				"trip_id":      s.TripID,
				"airline_code": s.AirlineCode,
				"price":        s.Price,
				"currency":     s.Currency,
				"source":       s.Source,
				"recorded_at":  s.RecordedAt,
			})
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return fmt.Errorf("postgres.PriceSnapshotRepo.Append: %w", err)
	}
	return nil
}

func (r *PriceSnapshotRepo) ListByTrip(ctx context.Context, tripID string) ([]domain.PriceSnapshot, error) {
	const q = `
		SELECT id, trip_id, airline_code, price, currency, source, recorded_at
		FROM price_snapshots
		WHERE trip_id = @trip_id
		ORDER BY recorded_at DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("postgres.PriceSnapshotRepo.ListByTrip: %w", err)
	}
	history, err := collect(rows, func(s scanner) (domain.PriceSnapshot, error) {
		var p domain.PriceSnapshot
		err := s.Scan(&p.ID, &p.TripID, &p.AirlineCode, &p.Price, &p.Currency, &p.Source, &p.RecordedAt)
		p.RecordedAt = p.RecordedAt.UTC()
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.PriceSnapshotRepo.ListByTrip: %w", err)
	}
	return history, nil
}

// APILogRepo is the Postgres implementation of domain.APILogRepository.
type APILogRepo struct {
	db db
}

// NewAPILogRepo constructs an APILogRepo.
func NewAPILogRepo(db db) *APILogRepo {
	return &APILogRepo{db: db}
}

func (r *APILogRepo) Append(ctx context.Context, entry domain.APILog) error {
	const q = `
		INSERT INTO api_logs (id, endpoint, method, status_code, request_body, response_body, duration_ms, error, created_at)
		VALUES (@id, @endpoint, @method, @status_code, @request_body, @response_body, @duration_ms, @error, @created_at)`

	args := pgx.NamedArgs{
		"id":            entry.ID,
		"endpoint":      entry.Endpoint,
		"method":        entry.Method,
		"status_code":   entry.StatusCode,
		"request_body":  jsonOrNil(entry.RequestBody),
		"response_body": jsonOrNil(entry.ResponseBody),
		"duration_ms":   entry.DurationMs,
		"error":         entry.Error,
		"created_at":    entry.CreatedAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("postgres.APILogRepo.Append: %w", err)
	}
	return nil
}

func (r *APILogRepo) Recent(ctx context.Context, limit int) ([]domain.APILog, error) {
	const q = `
		SELECT id, endpoint, method, status_code, request_body, response_body, duration_ms, error, created_at
		FROM api_logs
		ORDER BY created_at DESC, id DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": max(limit, 0)})
	if err != nil {
		return nil, fmt.Errorf("postgres.APILogRepo.Recent: %w", err)
	}
	logs, err := collect(rows, func(s scanner) (domain.APILog, error) {
		var (
			l             domain.APILog
			reqBody, resp []byte
		)
		err := s.Scan(&l.ID, &l.Endpoint, &l.Method, &l.StatusCode, &reqBody, &resp, &l.DurationMs, &l.Error, &l.CreatedAt)
		l.RequestBody = json.RawMessage(reqBody)
		l.ResponseBody = json.RawMessage(resp)
		l.CreatedAt = l.CreatedAt.UTC()
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres.APILogRepo.Recent: %w", err)
	}
	return logs, nil
}

// jsonOrNil sends an empty body as SQL NULL rather than an invalid empty JSON document.
func jsonOrNil(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

var (
	_ domain.PriceSnapshotRepository = (*PriceSnapshotRepo)(nil)
	_ domain.APILogRepository        = (*APILogRepo)(nil)
)
