package mrrschedule

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// List handles GET /mrr-schedules.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListByTeam(auth.TeamID(r))
	if err != nil {
		http.Error(w, "could not list MRR schedules", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get handles GET /mrr-schedules/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid schedule id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.FindByID(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "schedule not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// Advance handles POST /mrr-schedules/{id}/advance after a renewal charges.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid schedule id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.AdvanceRenewal(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "could not advance schedule", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// Cancel handles POST /mrr-schedules/{id}/cancel.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid schedule id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Cancel(auth.TeamID(r), uint(id)); err != nil {
		http.Error(w, "could not cancel schedule", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
