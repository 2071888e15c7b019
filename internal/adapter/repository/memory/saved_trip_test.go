package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippulse/trippulse-api/internal/domain"
)

func TestSavedTripRepo(t *testing.T) {
	repo := NewSavedTripRepo()
	ctx := context.Background()

	for i, id := range []string{"s1", "s2"} {
		_, err := repo.Create(ctx, domain.SavedTrip{
			ID:        id,
			UserID:    "alice",
			TripID:    "trip-1",
			CreatedAt: baseTime.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, domain.SavedTrip{ID: "s3", UserID: "bob", TripID: "trip-2", CreatedAt: baseTime})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.SavedTrip{ID: "s1", UserID: "alice"})
	assert.Error(t, err, "duplicate id")

	list, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "s2", list[0].ID)

	t.Run("delete by someone else is not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, "s1", "bob"), domain.ErrNotFound)
	})

	t.Run("delete by owner", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "s1", "alice"))
		assert.ErrorIs(t, repo.Delete(ctx, "s1", "alice"), domain.ErrNotFound)

		list, err := repo.ListByUser(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
