package usecase

import (
	"game-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Query      ReviewQueryService
	Submission ReviewSubmissionService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Query:      NewReviewQueryService(repo, log),
		Submission: NewReviewSubmissionService(repo, log),
	}
}
