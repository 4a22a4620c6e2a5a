package wire

import (
	"game-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /reviews - full collection
	r.Get("/reviews", reviewHandler.GetReviews)

	// POST /reviews - submit a review
	r.Post("/reviews", reviewHandler.CreateReview)

	// GET /reviews/search/{gameTitle} - title search; the bare forms answer 400
	r.Get("/reviews/search", reviewHandler.SearchReviews)
	r.Get("/reviews/search/", reviewHandler.SearchReviews)
	r.Get("/reviews/search/{gameTitle}", reviewHandler.SearchReviews)
}
