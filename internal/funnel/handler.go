package funnel

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Handler struct {
	Repo     *Repository
	Validate *validator.Validate
}

func NewHandler(repo *Repository, v *validator.Validate) *Handler {
	return &Handler{Repo: repo, Validate: v}
}

// Create handles POST /funnels. New funnels start as drafts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFunnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "name and slug are required", http.StatusBadRequest)
		return
	}
	if !slugPattern.MatchString(req.Slug) {
		http.Error(w, "slug must be lowercase letters, digits and dashes", http.StatusBadRequest)
		return
	}
	if err := validatePages(req.Pages); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := Funnel{
		TeamID: auth.TeamID(r),
		Name:   req.Name,
		Slug:   req.Slug,
		Status: StatusDraft,
		Pages:  req.Pages,
	}
	if err := h.Repo.Create(&f); err != nil {
		http.Error(w, "could not create funnel", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(f)
}

// List handles GET /funnels.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListByTeam(auth.TeamID(r))
	if err != nil {
		http.Error(w, "could not list funnels", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get handles GET /funnels/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(f)
}

// Update handles PUT /funnels/{id}, replacing the page document.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}

	var req updateFunnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Slug != nil {
		if !slugPattern.MatchString(*req.Slug) {
			http.Error(w, "slug must be lowercase letters, digits and dashes", http.StatusBadRequest)
			return
		}
		f.Slug = *req.Slug
	}
	if req.Pages != nil {
		if err := validatePages(req.Pages); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.Pages = req.Pages
	}

	if err := h.Repo.Update(f); err != nil {
		http.Error(w, "could not update funnel", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(f)
}

// Publish handles POST /funnels/{id}/publish with the stricter widget rules.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	f, ok := h.load(w, r)
	if !ok {
		return
	}
	now := time.Now()
	if err := f.ValidateForPublish(now); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Publish(f, now); err != nil {
		http.Error(w, "could not publish funnel", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(f)
}

// Delete handles DELETE /funnels/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid funnel id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(auth.TeamID(r), uint(id)); err != nil {
		http.Error(w, "could not delete funnel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPublic handles GET /p/{slug} without authentication.
func (h *Handler) GetPublic(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	f, err := h.Repo.FindPublishedBySlug(slug)
	if err != nil {
		http.Error(w, "funnel not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(f)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Funnel, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid funnel id", http.StatusBadRequest)
		return nil, false
	}
	f, err := h.Repo.FindByID(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "funnel not found", http.StatusNotFound)
		return nil, false
	}
	return f, true
}

func validatePages(pages []Page) error {
	for _, p := range pages {
		for _, wdg := range p.Widgets {
			if err := wdg.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
