package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"game-reviews/internal/data/entity"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type reviewFileRepository struct {
	fs   afero.Fs
	path string
	log  *zap.Logger
}

// NewReviewFileRepository stores the collection as one JSON array at path.
// A missing file reads as an empty collection.
func NewReviewFileRepository(fs afero.Fs, path string, log *zap.Logger) ReviewRepository {
	return &reviewFileRepository{
		fs:   fs,
		path: path,
		log:  log.With(zap.String("repository", "review_file")),
	}
}

func (r *reviewFileRepository) LoadAll(_ context.Context) ([]entity.Review, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if errors.Is(err, os.ErrNotExist) {
		r.log.Debug("Reviews file does not exist yet", zap.String("path", r.path))
		return []entity.Review{}, nil
	}
	if err != nil {
		r.log.Error("Failed to read reviews file", zap.Error(err), zap.String("path", r.path))
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, r.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []entity.Review{}, nil
	}

	var reviews []entity.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		r.log.Error("Failed to parse reviews file", zap.Error(err), zap.String("path", r.path))
		return nil, fmt.Errorf("%w: parse %s: %w", ErrStorageUnavailable, r.path, err)
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	return reviews, nil
}

// SaveAll writes the collection to a temporary file next to the target and
// renames it into place, so readers never observe a partial document.
func (r *reviewFileRepository) SaveAll(_ context.Context, reviews []entity.Review) error {
	if reviews == nil {
		reviews = []entity.Review{}
	}

	data, err := json.MarshalIndent(reviews, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode reviews: %w", ErrStorageUnavailable, err)
	}

	if err := r.writeReplace(data); err != nil {
		r.log.Error("Failed to write reviews file",
			zap.Error(err),
			zap.String("path", r.path),
			zap.Int("count", len(reviews)),
		)
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, r.path, err)
	}

	r.log.Debug("Reviews file written", zap.String("path", r.path), zap.Int("count", len(reviews)))
	return nil
}

func (r *reviewFileRepository) writeReplace(data []byte) error {
	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(r.fs, dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		r.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		r.fs.Remove(tmpName)
		return err
	}
	if err := r.fs.Chmod(tmpName, 0644); err != nil {
		r.fs.Remove(tmpName)
		return err
	}

	if err := r.fs.Rename(tmpName, r.path); err != nil {
		r.fs.Remove(tmpName)
		return err
	}

	return nil
}
