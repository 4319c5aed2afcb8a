package pets

import "time"

// PetType define los tipos de mascota soportados.
// @Enum dog, cat, rabbit, bird, other
type PetType string

const (
	TypeDog    PetType = "dog"
	TypeCat    PetType = "cat"
	TypeRabbit PetType = "rabbit"
	TypeBird   PetType = "bird"
	TypeOther  PetType = "other"
)

// DefaultEmoji se usa cuando el registro no trae uno propio.
const DefaultEmoji = "🐾"

func ValidType(t PetType) bool {
	switch t {
	case TypeDog, TypeCat, TypeRabbit, TypeBird, TypeOther:
		return true
	}
	return false
}

// Pet representa una mascota publicada para adopción.
type Pet struct {
	ID string

	Name string
	Type PetType
	Age  string // texto libre: "2 years", "6 months"
	Bio  string

	Emoji string
	Image string // opcional

	// Adopted pasa de false a true una sola vez, vía una adopción exitosa.
	Adopted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
