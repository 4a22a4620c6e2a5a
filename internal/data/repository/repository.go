package repository

import (
	"context"
	"fmt"

	"game-reviews/internal/data/entity"
	"game-reviews/pkg/database"
	"game-reviews/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ReviewRepository holds the full review collection. Every call works on
// the whole collection: LoadAll reads all of it, SaveAll replaces all of it.
type ReviewRepository interface {
	LoadAll(ctx context.Context) ([]entity.Review, error)
	SaveAll(ctx context.Context, reviews []entity.Review) error
}

type Repository struct {
	Review ReviewRepository

	close func() error
}

func NewRepository(review ReviewRepository) *Repository {
	return &Repository{Review: review}
}

// Open builds the repository for the configured store driver.
func Open(ctx context.Context, config *utils.Config, log *zap.Logger) (*Repository, error) {
	switch config.Store.Driver {
	case utils.StoreDriverFile, "":
		log.Info("Using file store", zap.String("path", config.Store.ReviewsFile))
		return NewRepository(NewReviewFileRepository(afero.NewOsFs(), config.Store.ReviewsFile, log)), nil

	case utils.StoreDriverPostgres:
		db, err := database.InitDB(ctx, config.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		review, err := NewReviewPgRepository(ctx, db, log)
		if err != nil {
			db.Close()
			return nil, err
		}

		log.Info("Using postgres store", zap.String("host", config.Database.Host), zap.String("db", config.Database.Name))
		return &Repository{
			Review: review,
			close: func() error {
				db.Close()
				return nil
			},
		}, nil

	case utils.StoreDriverSQLite:
		db, err := database.InitSQLite(ctx, config.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}

		review, err := NewReviewSQLiteRepository(ctx, db, log)
		if err != nil {
			db.Close()
			return nil, err
		}

		log.Info("Using sqlite store", zap.String("path", config.Store.SQLitePath))
		return &Repository{Review: review, close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}
}

// Close releases the store's connections, if any.
func (r *Repository) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
