package response

import (
	"fmt"
	"strings"

	"game-reviews/internal/data/entity"
	"game-reviews/internal/dto/request"
)

// SearchResult carries the matches and, for the text format, their
// rendering.
type SearchResult struct {
	Format  request.SearchFormat
	Reviews []entity.Review
	Text    string
}

// ReviewsToText renders each review as Title/Review/Rating lines with a
// blank line between entries.
func ReviewsToText(reviews []entity.Review) string {
	entries := make([]string, len(reviews))
	for i, review := range reviews {
		entries[i] = fmt.Sprintf("Title: %s\nReview: %s\nRating: %s\n", review.GameTitle, review.Content, review.Rating)
	}
	return strings.Join(entries, "\n")
}
