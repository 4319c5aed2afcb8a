package adoptions

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = validatorv10.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/adoptions", createAdoptionHandler(svc))
}

type createAdoptionRequest struct {
	PetID    string `json:"petId" validate:"required"`
	UserName string `json:"userName" validate:"required"`
	PetName  string `json:"petName" validate:"required"`
}

func createAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := validate.Struct(req); err != nil {
			writeErrorDetails(w, http.StatusBadRequest, "Error processing adoption request", err.Error())
			return
		}

		if _, err := svc.Create(r.Context(), CreateInput{
			PetID:    req.PetID,
			UserName: req.UserName,
			PetName:  req.PetName,
		}); err != nil {
			switch err {
			case ErrInvalidInput:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "Error processing adoption request")
			}
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"message": "Adoption request received"})
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
