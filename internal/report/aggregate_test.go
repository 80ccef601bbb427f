package report

import (
	"testing"
	"time"

	"github.com/RevOpsHQ/api-salesops/internal/activity"
	"github.com/RevOpsHQ/api-salesops/internal/appointment"
	"github.com/RevOpsHQ/api-salesops/internal/task"
	"github.com/RevOpsHQ/api-salesops/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func memberPtr(v uint) *uint { return &v }

func TestAggregateCountsPerMember(t *testing.T) {
	p := Day(day)
	now := day.Add(20 * time.Hour)

	members := []team.TeamMember{
		{ID: 1, FullName: "Sam Setter"},
		{ID: 2, FullName: "Casey Closer"},
	}
	appts := []appointment.Appointment{
		{ID: 10, SetterID: memberPtr(1), CreatedAt: day.Add(2 * time.Hour)},
		{ID: 11, SetterID: memberPtr(1), CreatedAt: day.Add(3 * time.Hour)},
		{ID: 12, SetterID: memberPtr(1), CreatedAt: day.AddDate(0, 0, -1)}, // outside period
		{ID: 13, CreatedAt: day.Add(4 * time.Hour)},                       // no setter
	}
	acts := []activity.Entry{
		{MemberID: memberPtr(1), Action: activity.ActionConfirmed, CreatedAt: day.Add(5 * time.Hour)},
		{MemberID: memberPtr(2), Action: activity.ActionClosed, CreatedAt: day.Add(6 * time.Hour)},
		{MemberID: memberPtr(2), Action: activity.ActionRescheduled, CreatedAt: day.Add(7 * time.Hour)},
		{MemberID: memberPtr(2), Action: activity.ActionClosed, CreatedAt: day.AddDate(0, 0, 2)}, // outside
	}
	tasks := []task.Task{
		{AssignedMemberID: memberPtr(2), Status: task.StatusOpen, DueDate: day.Add(-48 * time.Hour)},
		{AssignedMemberID: memberPtr(2), Status: task.StatusOpen, DueDate: day.AddDate(0, 1, 0)}, // not due yet
		{AssignedMemberID: memberPtr(2), Status: task.StatusDone, DueDate: day.Add(-48 * time.Hour)},
	}

	out := Aggregate(members, appts, tasks, acts, p, now)
	require.Len(t, out, 2)

	setter := out[0]
	assert.Equal(t, "Sam Setter", setter.MemberName)
	assert.Equal(t, 2, setter.Booked)
	assert.Equal(t, 1, setter.Confirmed)
	assert.Equal(t, 1, setter.PipelineMoves)
	assert.Zero(t, setter.Closed)

	closer := out[1]
	assert.Equal(t, 1, closer.Closed)
	assert.Equal(t, 2, closer.PipelineMoves)
	assert.Equal(t, 1, closer.OverdueTasks)
	assert.Zero(t, closer.Booked)
}

func TestAggregateEmptyInputs(t *testing.T) {
	out := Aggregate([]team.TeamMember{{ID: 1, FullName: "Solo"}}, nil, nil, nil, Day(day), day)
	require.Len(t, out, 1)
	assert.Equal(t, MemberReport{MemberID: 1, MemberName: "Solo"}, out[0])
}

func TestDayAndWeekPeriods(t *testing.T) {
	noon := time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)

	d := Day(noon)
	assert.Equal(t, day, d.From)
	assert.Equal(t, day.AddDate(0, 0, 1), d.To)
	assert.True(t, d.Contains(noon))
	assert.False(t, d.Contains(d.To))

	w := Week(noon)
	assert.Equal(t, day.AddDate(0, 0, 7), w.To)
}
