package report

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/RevOpsHQ/api-salesops/internal/activity"
	"github.com/RevOpsHQ/api-salesops/internal/appointment"
	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/RevOpsHQ/api-salesops/internal/task"
	"github.com/RevOpsHQ/api-salesops/internal/team"
	"gorm.io/gorm"
)

// Handler serves the end-of-day and weekly activity reports.
type Handler struct {
	DB           *gorm.DB
	Members      team.Repository
	Appointments *appointment.Repository
	Tasks        *task.Repository
	Activities   *activity.Repository
}

func NewHandler(db *gorm.DB, members team.Repository, appts *appointment.Repository,
	tasks *task.Repository, acts *activity.Repository) *Handler {
	return &Handler{DB: db, Members: members, Appointments: appts, Tasks: tasks, Activities: acts}
}

type reportResponse struct {
	Period  Period         `json:"period"`
	Members []MemberReport `json:"members"`
}

// EOD handles GET /reports/eod?date=2006-01-02 (default today).
func (h *Handler) EOD(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}
	h.serve(w, r, Day(day))
}

// Weekly handles GET /reports/weekly?start=2006-01-02 (default 7 days ago).
func (h *Handler) Weekly(w http.ResponseWriter, r *http.Request) {
	start := time.Now().AddDate(0, 0, -7)
	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "invalid start date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		start = parsed
	}
	h.serve(w, r, Week(start))
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, p Period) {
	teamID := auth.TeamID(r)

	members, err := h.Members.ListByTeam(h.DB, teamID)
	if err != nil {
		http.Error(w, "could not load members", http.StatusInternalServerError)
		return
	}
	appts, err := h.Appointments.ListCreatedBetween(teamID, p.From, p.To)
	if err != nil {
		http.Error(w, "could not load appointments", http.StatusInternalServerError)
		return
	}
	tasks, err := h.Tasks.ListOpenByTeam(teamID)
	if err != nil {
		http.Error(w, "could not load tasks", http.StatusInternalServerError)
		return
	}
	acts, err := h.Activities.ListByTeamAndPeriod(teamID, p.From, p.To)
	if err != nil {
		http.Error(w, "could not load activity", http.StatusInternalServerError)
		return
	}

	res := reportResponse{
		Period:  p,
		Members: Aggregate(members, appts, tasks, acts, p, time.Now()),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
