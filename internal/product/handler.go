package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo     *Repository
	Validate *validator.Validate
}

func NewHandler(repo *Repository, v *validator.Validate) *Handler {
	return &Handler{Repo: repo, Validate: v}
}

type createProductRequest struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	MRR   float64 `json:"mrr" validate:"gte=0"`
}

// Create handles POST /products.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "name is required and amounts must be non-negative", http.StatusBadRequest)
		return
	}

	p := Product{
		TeamID: auth.TeamID(r),
		Name:   req.Name,
		Price:  req.Price,
		MRR:    req.MRR,
		Active: true,
	}
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// List handles GET /products.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListActiveByTeam(auth.TeamID(r))
	if err != nil {
		http.Error(w, "could not list products", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Update handles PUT /products/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	var payload struct {
		Name   *string  `json:"name"`
		Price  *float64 `json:"price"`
		MRR    *float64 `json:"mrr"`
		Active *bool    `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Name != nil {
		p.Name = *payload.Name
	}
	if payload.Price != nil {
		p.Price = *payload.Price
	}
	if payload.MRR != nil {
		p.MRR = *payload.MRR
	}
	if payload.Active != nil {
		p.Active = *payload.Active
	}

	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Delete handles DELETE /products/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(auth.TeamID(r), uint(id)); err != nil {
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
