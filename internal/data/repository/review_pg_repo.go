package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"game-reviews/internal/data/entity"
	"game-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// The collection lives in a single JSONB row.
const reviewDocumentID = 1

const createReviewDocumentsTable = `
	CREATE TABLE IF NOT EXISTS review_documents (
		id  SMALLINT PRIMARY KEY,
		doc JSONB NOT NULL
	)
`

type reviewPgRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewReviewPgRepository creates the review_documents table if needed.
func NewReviewPgRepository(ctx context.Context, db database.PgxIface, log *zap.Logger) (ReviewRepository, error) {
	if _, err := db.Exec(ctx, createReviewDocumentsTable); err != nil {
		return nil, fmt.Errorf("create review_documents table: %w", err)
	}

	return &reviewPgRepository{
		db:  db,
		log: log.With(zap.String("repository", "review_pg")),
	}, nil
}

func (r *reviewPgRepository) LoadAll(ctx context.Context) ([]entity.Review, error) {
	query := `
		SELECT doc
		FROM review_documents
		WHERE id = $1
	`

	var doc []byte
	err := r.db.QueryRow(ctx, query, reviewDocumentID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return []entity.Review{}, nil
	}
	if err != nil {
		r.log.Error("Failed to load review document", zap.Error(err))
		return nil, fmt.Errorf("%w: load review document: %w", ErrStorageUnavailable, err)
	}

	var reviews []entity.Review
	if err := json.Unmarshal(doc, &reviews); err != nil {
		r.log.Error("Failed to decode review document", zap.Error(err))
		return nil, fmt.Errorf("%w: decode review document: %w", ErrStorageUnavailable, err)
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	return reviews, nil
}

func (r *reviewPgRepository) SaveAll(ctx context.Context, reviews []entity.Review) error {
	if reviews == nil {
		reviews = []entity.Review{}
	}

	doc, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("%w: encode review document: %w", ErrStorageUnavailable, err)
	}

	query := `
		INSERT INTO review_documents (id, doc)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`

	if _, err := r.db.Exec(ctx, query, reviewDocumentID, doc); err != nil {
		r.log.Error("Failed to save review document",
			zap.Error(err),
			zap.Int("count", len(reviews)),
		)
		return fmt.Errorf("%w: save review document: %w", ErrStorageUnavailable, err)
	}

	return nil
}
