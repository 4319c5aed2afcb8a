package stories

import "time"

// DefaultEmoji se usa cuando la historia no trae uno propio.
const DefaultEmoji = "🐾"

// SuccessStory es inmutable después de creada: no existe path de update.
type SuccessStory struct {
	ID string

	Name  string // autor o protagonista, ej. "Charlie & Daisy"
	Story string
	Emoji string
	Image string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
