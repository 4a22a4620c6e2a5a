package repository

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"game-reviews/internal/data/entity"
	"game-reviews/pkg/database"
)

func TestReviewSQLiteRepository(t *testing.T) {
	ctx := context.Background()

	ReviewRepositoryTest(t, ctx, func(t *testing.T) ReviewRepository {
		db, err := database.InitSQLite(ctx, filepath.Join(t.TempDir(), "reviews.db"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		repo, err := NewReviewSQLiteRepository(ctx, db, zap.NewNop())
		require.NoError(t, err)
		return repo
	})
}

func TestReviewSQLiteRepository_Failures(t *testing.T) {
	ctx := context.Background()

	newMockRepo := func(t *testing.T) (ReviewRepository, sqlmock.Sqlmock) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS reviews")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo, err := NewReviewSQLiteRepository(ctx, db, zap.NewNop())
		require.NoError(t, err)
		return repo, mock
	}

	t.Run("a failed query is reported as storage unavailable", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT game_title, content, rating")).
			WillReturnError(errors.New("disk I/O error"))

		_, err := repo.LoadAll(ctx)
		require.ErrorIs(t, err, ErrStorageUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rows load in position order with ratings kept as sent", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT game_title, content, rating")).
			WillReturnRows(sqlmock.NewRows([]string{"game_title", "content", "rating"}).
				AddRow("Chess", "Fun", "8").
				AddRow("Go", "Deep", `"9"`))

		reviews, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		require.Equal(t, []entity.Review{
			{GameTitle: "Chess", Content: "Fun", Rating: entity.Rating("8")},
			{GameTitle: "Go", Content: "Deep", Rating: entity.Rating(`"9"`)},
		}, reviews)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a failed insert rolls the replacement back", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reviews")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews")).
			WithArgs(1, "Chess", "Fun", "8").
			WillReturnError(errors.New("database is locked"))
		mock.ExpectRollback()

		err := repo.SaveAll(ctx, []entity.Review{{GameTitle: "Chess", Content: "Fun", Rating: entity.NewRating(8)}})
		require.ErrorIs(t, err, ErrStorageUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a successful replacement commits", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reviews")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews")).
			WithArgs(1, "Go", "Deep", `"9"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SaveAll(ctx, []entity.Review{{GameTitle: "Go", Content: "Deep", Rating: entity.Rating(`"9"`)}}))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
