package request

import "game-reviews/internal/data/entity"

// CreateReviewRequest is a review candidate. Only presence is checked:
// the rating is neither range checked nor coerced.
type CreateReviewRequest struct {
	GameTitle string        `json:"gameTitle" form:"gameTitle" validate:"required"`
	Content   string        `json:"content" form:"content" validate:"required"`
	Rating    entity.Rating `json:"rating" form:"rating" validate:"present"`
}

func (r *CreateReviewRequest) ToEntity() entity.Review {
	return entity.Review{
		GameTitle: r.GameTitle,
		Content:   r.Content,
		Rating:    r.Rating,
	}
}

type SearchFormat string

const (
	SearchFormatJSON SearchFormat = "json"
	SearchFormatText SearchFormat = "text"
)

// ParseSearchFormat maps the format query value; anything but "text" is JSON.
func ParseSearchFormat(s string) SearchFormat {
	if s == string(SearchFormatText) {
		return SearchFormatText
	}
	return SearchFormatJSON
}
