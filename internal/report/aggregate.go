package report

import (
	"time"

	"github.com/RevOpsHQ/api-salesops/internal/activity"
	"github.com/RevOpsHQ/api-salesops/internal/appointment"
	"github.com/RevOpsHQ/api-salesops/internal/task"
	"github.com/RevOpsHQ/api-salesops/internal/team"
)

// Period bounds a report: [From, To).
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && t.Before(p.To)
}

// Day returns the 24h period starting at local midnight of d.
func Day(d time.Time) Period {
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return Period{From: start, To: start.AddDate(0, 0, 1)}
}

// Week returns the 7-day period starting at local midnight of d.
func Week(d time.Time) Period {
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return Period{From: start, To: start.AddDate(0, 0, 7)}
}

// MemberReport is one row of the end-of-day/weekly report.
type MemberReport struct {
	MemberID      uint   `json:"memberId"`
	MemberName    string `json:"memberName"`
	Booked        int    `json:"booked"`
	Confirmed     int    `json:"confirmed"`
	Closed        int    `json:"closed"`
	PipelineMoves int    `json:"pipelineMoves"`
	OverdueTasks  int    `json:"overdueTasks"`
}

// Aggregate reduces raw rows into per-member counts. No state is kept; the
// caller refetches and recomputes on every load.
//
// Booked attributes appointments created in the period to their setter.
// Confirmed/closed/pipeline moves come from activity entries in the period,
// attributed to the acting member. Overdue counts open tasks assigned to the
// member whose due date passed before now.
func Aggregate(members []team.TeamMember, appts []appointment.Appointment,
	tasks []task.Task, acts []activity.Entry, p Period, now time.Time) []MemberReport {

	byID := make(map[uint]*MemberReport, len(members))
	out := make([]MemberReport, len(members))
	for i, m := range members {
		out[i] = MemberReport{MemberID: m.ID, MemberName: m.FullName}
		byID[m.ID] = &out[i]
	}

	for _, a := range appts {
		if a.SetterID == nil || !p.Contains(a.CreatedAt) {
			continue
		}
		if r, ok := byID[*a.SetterID]; ok {
			r.Booked++
		}
	}

	for _, e := range acts {
		if e.MemberID == nil || !p.Contains(e.CreatedAt) {
			continue
		}
		r, ok := byID[*e.MemberID]
		if !ok {
			continue
		}
		switch e.Action {
		case activity.ActionConfirmed:
			r.Confirmed++
			r.PipelineMoves++
		case activity.ActionClosed:
			r.Closed++
			r.PipelineMoves++
		case activity.ActionCancelled, activity.ActionRescheduled, activity.ActionAssigned:
			r.PipelineMoves++
		}
	}

	for _, t := range tasks {
		if t.Status != task.StatusOpen || t.AssignedMemberID == nil {
			continue
		}
		if !t.DueDate.Before(now) {
			continue
		}
		if r, ok := byID[*t.AssignedMemberID]; ok {
			r.OverdueTasks++
		}
	}

	return out
}
