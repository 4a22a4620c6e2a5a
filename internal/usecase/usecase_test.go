package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-reviews/internal/data/entity"
	"game-reviews/internal/data/repository"
	"game-reviews/internal/usecase"
)

const reviewsPath = "/data/reviews.json"

// newService returns services backed by an in-memory file store seeded
// with reviews.
func newService(t *testing.T, reviews ...entity.Review) (*usecase.Service, repository.ReviewRepository) {
	t.Helper()

	store := repository.NewReviewFileRepository(afero.NewMemMapFs(), reviewsPath, zap.NewNop())
	if len(reviews) > 0 {
		require.NoError(t, store.SaveAll(context.Background(), reviews))
	}

	return usecase.NewService(repository.NewRepository(store), zap.NewNop()), store
}

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) LoadAll(context.Context) ([]entity.Review, error) {
	return nil, errors.Join(repository.ErrStorageUnavailable, errors.New("disk gone"))
}

func (brokenStore) SaveAll(context.Context, []entity.Review) error {
	return errors.Join(repository.ErrStorageUnavailable, errors.New("disk gone"))
}

// readOnlyStore loads fine but fails to save.
type readOnlyStore struct {
	reviews []entity.Review
}

func (s readOnlyStore) LoadAll(context.Context) ([]entity.Review, error) {
	return append([]entity.Review(nil), s.reviews...), nil
}

func (readOnlyStore) SaveAll(context.Context, []entity.Review) error {
	return errors.Join(repository.ErrStorageUnavailable, errors.New("read-only"))
}

var chess = entity.Review{GameTitle: "Chess", Content: "Fun", Rating: entity.NewRating(8)}
