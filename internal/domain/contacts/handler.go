package contacts

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
)

// validate valida el payload antes de tocar el store, igual que lo haría
// el schema layer: solo presencia de requeridos + enum de interest.
var validate = validatorv10.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/contact", createContactHandler(svc))
}

type createContactRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Interest string `json:"interest" validate:"required,oneof=volunteer donate adopt foster other"`
	Message  string `json:"message"`
}

func createContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := validate.Struct(req); err != nil {
			writeErrorDetails(w, http.StatusBadRequest, "Error saving contact message", err.Error())
			return
		}

		if _, err := svc.Create(r.Context(), CreateInput{
			Name:     req.Name,
			Email:    req.Email,
			Interest: req.Interest,
			Message:  req.Message,
		}); err != nil {
			switch err {
			case ErrInvalidInput:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "Error saving contact message")
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"message": "Message received successfully"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeErrorDetails(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, map[string]string{"error": msg, "details": details})
}
