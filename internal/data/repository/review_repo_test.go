package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"game-reviews/internal/data/entity"
)

// ReviewRepositoryTest is run against every ReviewRepository driver so
// they stay interchangeable.
func ReviewRepositoryTest(t *testing.T, ctx context.Context, repoFactory func(t *testing.T) ReviewRepository) {
	chess := entity.Review{GameTitle: "Chess", Content: "Fun", Rating: entity.NewRating(8)}
	goGame := entity.Review{GameTitle: "Go", Content: "Deep", Rating: entity.Rating(`"9"`)}

	t.Run("LoadAll", func(t *testing.T) {
		t.Run("an empty store loads as an empty, non-nil collection", func(t *testing.T) {
			repo := repoFactory(t)

			reviews, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			require.NotNil(t, reviews, "expected an empty slice so it encodes as []")
			require.Empty(t, reviews)
		})
	})

	t.Run("SaveAll", func(t *testing.T) {
		t.Run("saved reviews load back in the same order", func(t *testing.T) {
			repo := repoFactory(t)
			expected := []entity.Review{chess, goGame, chess}

			require.NoError(t, repo.SaveAll(ctx, expected))

			actual, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			require.Equal(t, expected, actual)
		})

		t.Run("saving replaces the whole collection", func(t *testing.T) {
			repo := repoFactory(t)
			require.NoError(t, repo.SaveAll(ctx, []entity.Review{chess, goGame}))

			require.NoError(t, repo.SaveAll(ctx, []entity.Review{goGame}))

			actual, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			require.Equal(t, []entity.Review{goGame}, actual)
		})

		t.Run("saving nil leaves an empty collection", func(t *testing.T) {
			repo := repoFactory(t)
			require.NoError(t, repo.SaveAll(ctx, []entity.Review{chess}))

			require.NoError(t, repo.SaveAll(ctx, nil))

			actual, err := repo.LoadAll(ctx)
			require.NoError(t, err)
			require.Empty(t, actual)
		})
	})
}
