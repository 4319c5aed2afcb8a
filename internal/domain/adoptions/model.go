package adoptions

import "time"

// Status del pedido de adopción. El sistema nunca lo avanza más allá de
// pending: no existe workflow de aprobación, los otros valores solo
// cubren el dominio almacenado.
// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Adoption vincula un pedido de adopción con una mascota.
type Adoption struct {
	ID string

	PetID    string
	UserName string
	PetName  string // copia desnormalizada del nombre al momento del pedido

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
