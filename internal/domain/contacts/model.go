package contacts

import "time"

// Interest define el motivo del contacto.
// @Enum volunteer, donate, adopt, foster, other
type Interest string

const (
	InterestVolunteer Interest = "volunteer"
	InterestDonate    Interest = "donate"
	InterestAdopt     Interest = "adopt"
	InterestFoster    Interest = "foster"
	InterestOther     Interest = "other"
)

func ValidInterest(i Interest) bool {
	switch i {
	case InterestVolunteer, InterestDonate, InterestAdopt, InterestFoster, InterestOther:
		return true
	}
	return false
}

// Contact es un log append-only: se crea vía formulario y nunca se lee
// ni se modifica desde la API.
type Contact struct {
	ID string

	Name     string
	Email    string
	Interest Interest
	Message  string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
