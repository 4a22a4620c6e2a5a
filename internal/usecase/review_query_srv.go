package usecase

import (
	"context"
	"fmt"
	"strings"

	"game-reviews/internal/data/entity"
	"game-reviews/internal/data/repository"
	"game-reviews/internal/dto/request"
	"game-reviews/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewQueryService interface {
	FindAll(ctx context.Context) ([]entity.Review, error)
	FindByTitle(ctx context.Context, query string, format request.SearchFormat) (*response.SearchResult, error)
}

type reviewQueryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewQueryService(repo *repository.Repository, log *zap.Logger) ReviewQueryService {
	return &reviewQueryService{
		repo: repo,
		log:  log.With(zap.String("service", "review_query")),
	}
}

func (s *reviewQueryService) FindAll(ctx context.Context) ([]entity.Review, error) {
	reviews, err := s.repo.Review.LoadAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	s.log.Debug("Reviews retrieved", zap.Int("count", len(reviews)))

	return reviews, nil
}

// FindByTitle returns, in storage order, every review whose title contains
// query ignoring case. An empty query matches everything.
func (s *reviewQueryService) FindByTitle(ctx context.Context, query string, format request.SearchFormat) (*response.SearchResult, error) {
	reviews, err := s.repo.Review.LoadAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews for search",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search reviews: %w", err)
	}

	needle := strings.ToLower(query)
	matches := make([]entity.Review, 0, len(reviews))
	for _, review := range reviews {
		if strings.Contains(strings.ToLower(review.GameTitle), needle) {
			matches = append(matches, review)
		}
	}

	s.log.Debug("Reviews searched",
		zap.String("query", query),
		zap.String("format", string(format)),
		zap.Int("matches", len(matches)),
		zap.Int("total", len(reviews)),
	)

	result := &response.SearchResult{Format: format, Reviews: matches}
	if format == request.SearchFormatText {
		result.Text = response.ReviewsToText(matches)
	}

	return result, nil
}
