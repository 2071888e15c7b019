package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
)

// UserUseCase resolves authenticated principals into stored users.
type UserUseCase interface {
	// Me registers the principal on first sight and refreshes its sign-in time.
	Me(ctx context.Context, principal domain.Principal) (domain.User, error)
}

type userUseCase struct {
	users domain.UserRepository
	clock timeutil.Clock
}

// NewUserUseCase creates a UserUseCase. A nil clock uses the system time.
func NewUserUseCase(users domain.UserRepository, clock timeutil.Clock) UserUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &userUseCase{users: users, clock: clock}
}

func (uc *userUseCase) Me(ctx context.Context, principal domain.Principal) (domain.User, error) {
	if principal.OpenID == "" {
		return domain.User{}, domain.ErrUnauthorized
	}

	now := uc.clock.Now()
	user, err := uc.users.GetByOpenID(ctx, principal.OpenID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		user = domain.User{
			ID:                uuid.NewString(),
			OpenID:            principal.OpenID,
			LoginMethod:       "jwt",
			Role:              domain.RoleUser,
			PreferredLanguage: domain.DefaultLanguage,
			PreferredCurrency: domain.DefaultCurrency,
			CreatedAt:         now,
		}
	case err != nil:
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	if principal.Name != "" {
		user.Name = principal.Name
	}
	if principal.Email != "" {
		user.Email = principal.Email
	}
	if principal.Role == domain.RoleAdmin {
		user.Role = domain.RoleAdmin
	}
	user.UpdatedAt = now
	user.LastSignedIn = now

	saved, err := uc.users.Upsert(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("upsert user: %w", err)
	}
	return saved, nil
}

var _ UserUseCase = (*userUseCase)(nil)
