package caretips

import "time"

// Category define las categorías de consejo. El campo es opcional:
// un tip sin categoría es válido.
// @Enum health, nutrition, training, grooming, general
type Category string

const (
	CategoryHealth    Category = "health"
	CategoryNutrition Category = "nutrition"
	CategoryTraining  Category = "training"
	CategoryGrooming  Category = "grooming"
	CategoryGeneral   Category = "general"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryHealth, CategoryNutrition, CategoryTraining, CategoryGrooming, CategoryGeneral:
		return true
	}
	return false
}

// CareTip es inmutable después de creado: no existe path de update.
type CareTip struct {
	ID string

	Title   string
	Content string
	Icon    string // token de icono del cliente, ej. "fas fa-bowl-food"

	Category Category // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
