package appointment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RevOpsHQ/api-salesops/internal/activity"
	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/RevOpsHQ/api-salesops/internal/realtime"
	"github.com/RevOpsHQ/api-salesops/internal/team"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serves the appointment list, transitions and bulk delete.
type Handler struct {
	DB         *gorm.DB
	Repo       *Repository
	Members    team.Repository
	Activities *activity.Repository
	Hub        *realtime.Hub
	Validate   *validator.Validate
}

func NewHandler(db *gorm.DB, repo *Repository, members team.Repository, acts *activity.Repository, hub *realtime.Hub, v *validator.Validate) *Handler {
	return &Handler{DB: db, Repo: repo, Members: members, Activities: acts, Hub: hub, Validate: v}
}

// Create books a new appointment.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "missing or invalid fields", http.StatusBadRequest)
		return
	}

	teamID := auth.TeamID(r)
	a := Appointment{
		TeamID:       teamID,
		LeadName:     req.LeadName,
		LeadEmail:    req.LeadEmail,
		LeadPhone:    req.LeadPhone,
		ScheduledAt:  req.ScheduledAt,
		Status:       StatusNew,
		EventType:    req.EventType,
		EventTypeURI: req.EventTypeURI,
	}
	if req.SetterID != nil {
		setter, err := h.Members.FindByID(h.DB, *req.SetterID)
		if err != nil {
			http.Error(w, "setter not found", http.StatusBadRequest)
			return
		}
		a.SetterID = req.SetterID
		a.SetterName = setter.FullName
	}

	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "could not create appointment", http.StatusInternalServerError)
		return
	}

	h.record(r, &a, activity.ActionBooked, "", StatusNew)
	h.Hub.Publish(realtime.Event{Table: Table, Type: realtime.EventInsert, TeamID: teamID, New: a})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// List handles GET /appointments with filter and pagination query params.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := ListFilter{
		Range:        r.URL.Query().Get("range"),
		Query:        r.URL.Query().Get("q"),
		EventTypeURI: r.URL.Query().Get("event_type_uri"),
	}
	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		f.Page = page
	}
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		f.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		f.To = &t
	}

	items, total, err := h.Repo.List(auth.TeamID(r), f, time.Now())
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			http.Error(w, "invalid date range", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not list appointments", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []Appointment{}
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{Items: items, Total: total, Page: page, PageSize: PageSize})
}

// Get returns one appointment.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Assign sets the setter and/or closer on an appointment.
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.SetterID == nil && req.CloserID == nil {
		http.Error(w, "nothing to assign", http.StatusBadRequest)
		return
	}

	if req.SetterID != nil {
		m, err := h.Members.FindByID(h.DB, *req.SetterID)
		if err != nil {
			http.Error(w, "setter not found", http.StatusBadRequest)
			return
		}
		a.SetterID = req.SetterID
		a.SetterName = m.FullName
	}
	if req.CloserID != nil {
		m, err := h.Members.FindByID(h.DB, *req.CloserID)
		if err != nil {
			http.Error(w, "closer not found", http.StatusBadRequest)
			return
		}
		a.CloserID = req.CloserID
		a.CloserName = m.FullName
	}

	if err := h.Repo.Update(a); err != nil {
		http.Error(w, "could not update appointment", http.StatusInternalServerError)
		return
	}

	h.record(r, a, activity.ActionAssigned, a.Status, a.Status)
	h.Hub.Publish(realtime.Event{Table: Table, Type: realtime.EventUpdate, TeamID: a.TeamID, New: *a})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Confirm marks the appointment CONFIRMED.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, StatusConfirmed, activity.ActionConfirmed, nil)
}

// Cancel marks the appointment CANCELLED.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, StatusCancelled, activity.ActionCancelled, nil)
}

// Reschedule moves the appointment and marks it RESCHEDULED.
func (h *Handler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "scheduledAt is required", http.StatusBadRequest)
		return
	}
	h.transition(w, r, StatusRescheduled, activity.ActionRescheduled, func(a *Appointment) {
		a.ScheduledAt = req.ScheduledAt
	})
}

// BulkDelete removes appointments in batches of 50, reporting the count the
// database actually deleted.
func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		http.Error(w, "ids are required", http.StatusBadRequest)
		return
	}

	teamID := auth.TeamID(r)
	deleted, err := deleteInBatches(req.IDs, bulkBatchSize, func(batch []uint) ([]uint, error) {
		return h.Repo.DeleteBatch(teamID, batch)
	})
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			http.Error(w, "permission denied", http.StatusForbidden)
			return
		}
		http.Error(w, "could not delete appointments", http.StatusInternalServerError)
		return
	}

	// Only rows the database confirmed gone get a DELETE event.
	for _, id := range deleted {
		h.Hub.Publish(realtime.Event{Table: Table, Type: realtime.EventDelete, TeamID: teamID, Old: Appointment{ID: id, TeamID: teamID}})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(bulkDeleteResponse{Deleted: int64(len(deleted))})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*Appointment, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return nil, false
	}
	a, err := h.Repo.FindByID(auth.TeamID(r), uint(id))
	if err != nil {
		http.Error(w, "appointment not found", http.StatusNotFound)
		return nil, false
	}
	return a, true
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, status, action string, mutate func(*Appointment)) {
	a, ok := h.load(w, r)
	if !ok {
		return
	}
	if a.Status == StatusClosed {
		http.Error(w, "appointment already closed", http.StatusConflict)
		return
	}

	from := a.Status
	a.Status = status
	if mutate != nil {
		mutate(a)
	}
	if err := h.Repo.Update(a); err != nil {
		http.Error(w, "could not update appointment", http.StatusInternalServerError)
		return
	}

	h.record(r, a, action, from, status)
	h.Hub.Publish(realtime.Event{Table: Table, Type: realtime.EventUpdate, TeamID: a.TeamID, New: *a})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

func (h *Handler) record(r *http.Request, a *Appointment, action, from, to string) {
	entry := activity.Entry{
		TeamID:        a.TeamID,
		AppointmentID: a.ID,
		Action:        action,
		FromStatus:    from,
		ToStatus:      to,
	}
	if m, err := h.Members.FindByUserID(h.DB, auth.UserID(r)); err == nil {
		entry.MemberID = &m.ID
		entry.MemberName = m.FullName
	}
	_ = h.Activities.Create(&entry)
}
