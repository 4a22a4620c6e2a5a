package usecase

import (
	"context"
	"fmt"
	"sync"

	"game-reviews/internal/data/entity"
	"game-reviews/internal/data/repository"
	"game-reviews/internal/dto/request"
	"game-reviews/pkg/utils"

	"go.uber.org/zap"
)

type ReviewSubmissionService interface {
	Submit(ctx context.Context, req *request.CreateReviewRequest) (*entity.Review, error)
}

type reviewSubmissionService struct {
	repo *repository.Repository
	log  *zap.Logger

	// mu serializes load-append-save so concurrent submissions cannot
	// overwrite each other.
	mu sync.Mutex
}

func NewReviewSubmissionService(repo *repository.Repository, log *zap.Logger) ReviewSubmissionService {
	return &reviewSubmissionService{
		repo: repo,
		log:  log.With(zap.String("service", "review_submission")),
	}
}

// Submit appends the review to the end of the collection and returns it
// unchanged.
func (s *reviewSubmissionService) Submit(ctx context.Context, req *request.CreateReviewRequest) (*entity.Review, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	review := req.ToEntity()

	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, err := s.repo.Review.LoadAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews before submit", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	reviews = append(reviews, review)

	if err := s.repo.Review.SaveAll(ctx, reviews); err != nil {
		s.log.Error("Failed to save reviews",
			zap.Error(err),
			zap.String("game_title", review.GameTitle),
			zap.Int("count", len(reviews)),
		)
		return nil, fmt.Errorf("save reviews: %w", err)
	}

	s.log.Info("Review submitted",
		zap.String("game_title", review.GameTitle),
		zap.String("rating", review.Rating.String()),
		zap.Int("count", len(reviews)),
	)

	return &review, nil
}
