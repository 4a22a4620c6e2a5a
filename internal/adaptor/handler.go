package adaptor

import (
	"game-reviews/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
	Status *StatusHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Query, service.Submission, log),
		Status: NewStatusHandler(),
	}
}
