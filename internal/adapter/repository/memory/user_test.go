package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippulse/trippulse-api/internal/domain"
)

func TestUserRepo_Upsert(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	_, err := repo.GetByOpenID(ctx, "oid-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first, err := repo.Upsert(ctx, domain.User{ID: "u1", OpenID: "oid-1", Name: "Ada", CreatedAt: baseTime})
	require.NoError(t, err)
	assert.Equal(t, "u1", first.ID)

	second, err := repo.Upsert(ctx, domain.User{
		ID:           "ignored",
		OpenID:       "oid-1",
		Name:         "Ada L.",
		CreatedAt:    baseTime.Add(time.Hour),
		LastSignedIn: baseTime.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", second.ID)
	assert.Equal(t, baseTime, second.CreatedAt)
	assert.Equal(t, "Ada L.", second.Name)

	got, err := repo.GetByOpenID(ctx, "oid-1")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
