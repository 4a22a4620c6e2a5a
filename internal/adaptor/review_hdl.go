package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"game-reviews/internal/data/entity"
	"game-reviews/internal/data/repository"
	"game-reviews/internal/dto/request"
	"game-reviews/internal/usecase"
	"game-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"
	"go.uber.org/zap"
)

const (
	msgLoadFailed     = "Failed to load reviews"
	msgSearchFailed   = "Failed to search reviews"
	msgSaveFailed     = "Failed to save review"
	msgMissingTitle   = "Missing required parameter: gameTitle"
	msgMissingFields  = "Missing required fields: gameTitle, content, or rating"
	msgInvalidBody    = "Invalid request body"
	maxReviewBodySize = 100 << 10
)

type ReviewHandler struct {
	query      usecase.ReviewQueryService
	submission usecase.ReviewSubmissionService
	decoder    *form.Decoder
	log        *zap.Logger
}

func NewReviewHandler(query usecase.ReviewQueryService, submission usecase.ReviewSubmissionService, log *zap.Logger) *ReviewHandler {
	decoder := form.NewDecoder()
	decoder.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return entity.RatingFromString(vals[0]), nil
	}, entity.Rating(nil))

	return &ReviewHandler{
		query:      query,
		submission: submission,
		decoder:    decoder,
		log:        log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.query.FindAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load reviews", msgLoadFailed)
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// SearchReviews handles GET /reviews/search/{gameTitle}?format=text|json
func (h *ReviewHandler) SearchReviews(w http.ResponseWriter, r *http.Request) {
	gameTitle := chi.URLParam(r, "gameTitle")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(gameTitle); err == nil {
			gameTitle = unescaped
		}
	}

	if gameTitle == "" {
		h.log.Warn("Search reviews rejected - missing title", zap.String("path", r.URL.Path))
		utils.ResponseBadRequest(w, msgMissingTitle)
		return
	}

	format := request.ParseSearchFormat(r.URL.Query().Get("format"))

	result, err := h.query.FindByTitle(r.Context(), gameTitle, format)
	if err != nil {
		h.handleServiceError(w, err, "search reviews", msgSearchFailed)
		return
	}

	if result.Format == request.SearchFormatText {
		utils.ResponseText(w, http.StatusOK, result.Text)
		return
	}

	utils.ResponseSuccess(w, result.Reviews)
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := h.decodeReview(w, r, &req); err != nil {
		h.log.Warn("Invalid review body", zap.Error(err))
		utils.ResponseBadRequest(w, msgInvalidBody)
		return
	}

	review, err := h.submission.Submit(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit review", msgSaveFailed)
		return
	}

	utils.ResponseCreated(w, review)
}

// decodeReview reads a JSON body, or a URL-encoded form when the request
// says so. An empty JSON body decodes to an empty candidate.
func (h *ReviewHandler) decodeReview(w http.ResponseWriter, r *http.Request, req *request.CreateReviewRequest) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxReviewBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		return h.decoder.Decode(req, r.PostForm)
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// handleServiceError maps service errors to responses
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation, failureMessage string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, msgMissingFields)

	case errors.Is(err, repository.ErrStorageUnavailable):
		h.log.Error(operation+" failed - storage unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, failureMessage)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, failureMessage)
	}
}
