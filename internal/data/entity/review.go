package entity

// Review is one entry of the review collection. The collection has no
// identifiers; position in the stored sequence is the only ordering.
type Review struct {
	GameTitle string `json:"gameTitle" db:"game_title"`
	Content   string `json:"content" db:"content"`
	Rating    Rating `json:"rating" db:"rating"`
}
