package mrrcommission

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/gorilla/mux"
)

// Store is what the handler needs from persistence. Every read is scoped to
// the caller's team.
type Store interface {
	ListByAppointment(teamID, appointmentID uint) ([]MRRCommission, error)
	ListByMember(teamID, memberID uint) ([]MRRCommission, error)
	FindByID(teamID, id uint) (*MRRCommission, error)
	UpdateStatus(id uint, status string, paidAt time.Time) error
}

type Handler struct {
	Repo Store
}

func NewHandler(repo Store) *Handler {
	return &Handler{Repo: repo}
}

// ListByAppointment handles GET /appointments/{id}/mrr-commissions.
func (h *Handler) ListByAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByAppointment(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "could not list MRR commissions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// ListByMember handles GET /members/{id}/mrr-commissions.
func (h *Handler) ListByMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByMember(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "could not list MRR commissions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// UpdateStatus handles PATCH /mrr-commissions/{id}/status.
// A paid row cannot be downgraded.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid commission id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	allowed := map[string]bool{
		StatusPending:   true,
		StatusPaid:      true,
		StatusCancelled: true,
	}
	if !allowed[payload.Status] {
		http.Error(w, "invalid status, use 'pending', 'paid' or 'cancelled'", http.StatusBadRequest)
		return
	}

	teamID := auth.TeamID(r)
	current, err := h.Repo.FindByID(teamID, uint(id))
	if err != nil {
		http.Error(w, "commission not found", http.StatusNotFound)
		return
	}
	if current.Status == StatusPaid && payload.Status != StatusPaid {
		http.Error(w, "a paid commission cannot change status", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateStatus(uint(id), payload.Status, time.Now()); err != nil {
		http.Error(w, "could not update commission status", http.StatusInternalServerError)
		return
	}

	row, err := h.Repo.FindByID(teamID, uint(id))
	if err != nil {
		http.Error(w, "could not load updated commission", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(row)
}
