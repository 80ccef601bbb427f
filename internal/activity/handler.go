package activity

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/gorilla/mux"
)

// Store is what the handler needs from persistence; reads are team-scoped.
type Store interface {
	ListByAppointment(teamID, appointmentID uint) ([]Entry, error)
}

type Handler struct {
	Repo Store
}

func NewHandler(repo Store) *Handler {
	return &Handler{Repo: repo}
}

// ListByAppointment handles GET /appointments/{id}/activity.
func (h *Handler) ListByAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByAppointment(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "could not load activity", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
