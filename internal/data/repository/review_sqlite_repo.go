package repository

import (
	"context"
	"database/sql"
	"fmt"

	"game-reviews/internal/data/entity"

	"go.uber.org/zap"
)

const createReviewsTable = `
	CREATE TABLE IF NOT EXISTS reviews (
		position   INTEGER PRIMARY KEY,
		game_title TEXT NOT NULL,
		content    TEXT NOT NULL,
		rating     TEXT NOT NULL
	)
`

type reviewSQLiteRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewReviewSQLiteRepository keeps one row per review; position preserves
// insertion order.
func NewReviewSQLiteRepository(ctx context.Context, db *sql.DB, log *zap.Logger) (ReviewRepository, error) {
	if _, err := db.ExecContext(ctx, createReviewsTable); err != nil {
		return nil, fmt.Errorf("create reviews table: %w", err)
	}

	return &reviewSQLiteRepository{
		db:  db,
		log: log.With(zap.String("repository", "review_sqlite")),
	}, nil
}

func (r *reviewSQLiteRepository) LoadAll(ctx context.Context) ([]entity.Review, error) {
	query := `
		SELECT game_title, content, rating
		FROM reviews
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("Failed to query reviews", zap.Error(err))
		return nil, fmt.Errorf("%w: query reviews: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	reviews := []entity.Review{}
	for rows.Next() {
		var (
			review entity.Review
			rating string
		)
		if err := rows.Scan(&review.GameTitle, &review.Content, &rating); err != nil {
			r.log.Error("Failed to scan review", zap.Error(err))
			return nil, fmt.Errorf("%w: scan review: %w", ErrStorageUnavailable, err)
		}
		review.Rating = entity.Rating(rating)
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate reviews: %w", ErrStorageUnavailable, err)
	}

	return reviews, nil
}

// SaveAll replaces every row inside one transaction.
func (r *reviewSQLiteRepository) SaveAll(ctx context.Context, reviews []entity.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reviews`); err != nil {
		r.log.Error("Failed to clear reviews", zap.Error(err))
		return fmt.Errorf("%w: clear reviews: %w", ErrStorageUnavailable, err)
	}

	insert := `
		INSERT INTO reviews (position, game_title, content, rating)
		VALUES (?, ?, ?, ?)
	`

	for i, review := range reviews {
		rating, err := review.Rating.MarshalJSON()
		if err != nil {
			return fmt.Errorf("%w: encode rating of review %d: %w", ErrStorageUnavailable, i+1, err)
		}

		if _, err := tx.ExecContext(ctx, insert, i+1, review.GameTitle, review.Content, string(rating)); err != nil {
			r.log.Error("Failed to insert review",
				zap.Error(err),
				zap.Int("position", i+1),
				zap.String("game_title", review.GameTitle),
			)
			return fmt.Errorf("%w: insert review %d: %w", ErrStorageUnavailable, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit reviews: %w", ErrStorageUnavailable, err)
	}

	return nil
}
