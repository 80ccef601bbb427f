package team

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/RevOpsHQ/api-salesops/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler wraps member CRUD and login.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Validate   *validator.Validate
}

func NewHandler(db *gorm.DB, v *validator.Validate) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Validate: v}
}

// Login issues a JWT for valid credentials.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	member, err := h.Repository.FindByEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if !utils.CheckPassword(member.PasswordHash, req.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(member.UserID, member.TeamID, member.IsAdmin)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CreateMember registers a new team member.
func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "missing or invalid fields", http.StatusBadRequest)
		return
	}

	password := req.Password
	if password == "" {
		var err error
		password, err = utils.GenerateTemporaryPassword()
		if err != nil {
			http.Error(w, "could not generate password", http.StatusInternalServerError)
			return
		}
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		http.Error(w, "could not process password", http.StatusInternalServerError)
		return
	}

	role := req.Role
	if role == "" {
		role = RoleSetter
	}
	m := TeamMember{
		TeamID:       req.TeamID,
		UserID:       req.UserID,
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         role,
		IsOfferOwner: req.IsOfferOwner,
		IsAdmin:      req.IsAdmin,
		PasswordHash: hash,
	}
	if err := h.Repository.Save(h.DB, &m); err != nil {
		http.Error(w, "could not save member", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// ListMembers returns every member of the caller's team.
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListByTeam(h.DB, auth.TeamID(r))
	if err != nil {
		http.Error(w, "could not list members", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GetMember returns a single member by id.
func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "member not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// UpdateMember applies a partial update.
func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "member not found", http.StatusNotFound)
		return
	}

	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "invalid fields", http.StatusBadRequest)
		return
	}

	if req.FullName != nil {
		m.FullName = *req.FullName
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Role != nil {
		m.Role = *req.Role
	}
	if req.IsOfferOwner != nil {
		m.IsOfferOwner = *req.IsOfferOwner
	}
	if req.IsAdmin != nil {
		m.IsAdmin = *req.IsAdmin
	}

	if err := h.Repository.Update(h.DB, m); err != nil {
		http.Error(w, "could not update member", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// DeleteMember removes a member.
func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete member", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
