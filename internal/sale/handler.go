package sale

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

// List handles GET /sales.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListByTeam(auth.TeamID(r))
	if err != nil {
		http.Error(w, "could not list sales", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get handles GET /sales/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid sale id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.FindByID(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "sale not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// Update edits a sale through the separate edit surface (not the close flow).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid sale id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.FindByID(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "sale not found", http.StatusNotFound)
		return
	}

	var payload struct {
		CustomerName     *string  `json:"customerName"`
		ProductName      *string  `json:"productName"`
		Revenue          *float64 `json:"revenue"`
		CloserCommission *float64 `json:"closerCommission"`
		SetterCommission *float64 `json:"setterCommission"`
		Status           *string  `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if payload.CustomerName != nil {
		s.CustomerName = *payload.CustomerName
	}
	if payload.ProductName != nil {
		s.ProductName = *payload.ProductName
	}
	if payload.Revenue != nil {
		s.Revenue = *payload.Revenue
	}
	if payload.CloserCommission != nil {
		s.CloserCommission = *payload.CloserCommission
	}
	if payload.SetterCommission != nil {
		s.SetterCommission = *payload.SetterCommission
	}
	if payload.Status != nil {
		s.Status = *payload.Status
	}

	if err := h.Repo.Update(s); err != nil {
		http.Error(w, "could not update sale", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}
