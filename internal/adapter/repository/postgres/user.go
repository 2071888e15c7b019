package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trippulse/trippulse-api/internal/domain"
)

const userColumns = `id, open_id, name, email, login_method, role, preferred_language,
	preferred_currency, created_at, updated_at, last_signed_in`

// UserRepo is the Postgres implementation of domain.UserRepository.
type UserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo.
func NewUserRepo(db db) *UserRepo {
	return &UserRepo{db: db}
}

// Upsert inserts the user or, on an open_id conflict, refreshes the profile
// columns while keeping the stored id and created_at.
func (r *UserRepo) Upsert(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (id, open_id, name, email, login_method, role, preferred_language,
			preferred_currency, created_at, updated_at, last_signed_in)
		VALUES (@id, @open_id, @name, @email, @login_method, @role, @preferred_language,
			@preferred_currency, @created_at, @updated_at, @last_signed_in)
		ON CONFLICT (open_id) DO UPDATE
		SET name               = EXCLUDED.name,
		    email              = EXCLUDED.email,
		    login_method       = EXCLUDED.login_method,
		    role               = EXCLUDED.role,
		    preferred_language = EXCLUDED.preferred_language,
		    preferred_currency = EXCLUDED.preferred_currency,
		    updated_at         = EXCLUDED.updated_at,
		    last_signed_in     = EXCLUDED.last_signed_in
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"id":                 user.ID,
		"open_id":            user.OpenID,
		"name":               user.Name,
		"email":              user.Email,
		"login_method":       user.LoginMethod,
		"role":               string(user.Role),
		"preferred_language": user.PreferredLanguage,
		"preferred_currency": user.PreferredCurrency,
		"created_at":         user.CreatedAt,
		"updated_at":         user.UpdatedAt,
		"last_signed_in":     user.LastSignedIn,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("postgres.UserRepo.Upsert: %w", err)
	}
	return result, nil
}

func (r *UserRepo) GetByOpenID(ctx context.Context, openID string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE open_id = @open_id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"open_id": openID}))
	if err != nil {
		return domain.User{}, fmt.Errorf("postgres.UserRepo.GetByOpenID: %w", err)
	}
	return result, nil
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)

	err := s.Scan(&u.ID, &u.OpenID, &u.Name, &u.Email, &u.LoginMethod, &role, &u.PreferredLanguage,
		&u.PreferredCurrency, &u.CreatedAt, &u.UpdatedAt, &u.LastSignedIn)
	if err != nil {
		return domain.User{}, notFound(err)
	}

	u.Role = domain.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	u.LastSignedIn = u.LastSignedIn.UTC()
	return u, nil
}

var _ domain.UserRepository = (*UserRepo)(nil)
