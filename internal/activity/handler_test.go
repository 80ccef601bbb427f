package activity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	entries    []Entry
	listedTeam uint
}

func (s *fakeStore) ListByAppointment(teamID, appointmentID uint) ([]Entry, error) {
	s.listedTeam = teamID
	out := []Entry{}
	for _, e := range s.entries {
		if e.TeamID == teamID && e.AppointmentID == appointmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func authedRequest(teamID uint, vars map[string]string) *http.Request {
	req := httptest.NewRequest("GET", "/appointments/10/activity", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.CtxTeamID, teamID))
	return mux.SetURLVars(req, vars)
}

func TestListByAppointmentScopedToTeam(t *testing.T) {
	store := &fakeStore{entries: []Entry{
		{ID: 1, TeamID: 1, AppointmentID: 10, Action: ActionBooked},
		{ID: 2, TeamID: 1, AppointmentID: 10, Action: ActionConfirmed},
	}}
	h := NewHandler(store)

	// Own team sees the timeline.
	rec := httptest.NewRecorder()
	h.ListByAppointment(rec, authedRequest(1, map[string]string{"id": "10"}))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list, 2)
	assert.Equal(t, uint(1), store.listedTeam)

	// Another team guessing the same appointment id gets nothing.
	rec = httptest.NewRecorder()
	h.ListByAppointment(rec, authedRequest(2, map[string]string{"id": "10"}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Empty(t, list)
	assert.Equal(t, uint(2), store.listedTeam)
}
