package stories

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/success-stories", listStoriesHandler(svc))
}

type storyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Story     string    `json:"story"`
	Emoji     string    `json:"emoji"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func listStoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Error fetching success stories")
			return
		}

		out := make([]storyResponse, 0, len(items))
		for _, st := range items {
			out = append(out, storyResponse{
				ID:        st.ID,
				Name:      st.Name,
				Story:     st.Story,
				Emoji:     st.Emoji,
				Image:     st.Image,
				CreatedAt: st.CreatedAt,
				UpdatedAt: st.UpdatedAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
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
