package task

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

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

type createTaskRequest struct {
	Title            string    `json:"title" validate:"required"`
	DueDate          time.Time `json:"dueDate" validate:"required"`
	AppointmentID    *uint     `json:"appointmentId"`
	AssignedMemberID *uint     `json:"assignedMemberId"`
}

// Create handles POST /tasks.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "title and dueDate are required", http.StatusBadRequest)
		return
	}

	t := Task{
		TeamID:           auth.TeamID(r),
		Title:            req.Title,
		DueDate:          req.DueDate,
		Status:           StatusOpen,
		AppointmentID:    req.AppointmentID,
		AssignedMemberID: req.AssignedMemberID,
	}
	if err := h.Repo.Create(&t); err != nil {
		http.Error(w, "could not create task", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// List handles GET /tasks.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListByTeam(auth.TeamID(r))
	if err != nil {
		http.Error(w, "could not list tasks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Complete handles POST /tasks/{id}/complete.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Complete(auth.TeamID(r), uint(id), time.Now()); err != nil {
		http.Error(w, "could not complete task", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
