package appointment

import (
	"testing"

	"github.com/RevOpsHQ/api-salesops/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page() []Appointment {
	return []Appointment{
		{ID: 1, LeadName: "Alpha"},
		{ID: 2, LeadName: "Beta"},
		{ID: 3, LeadName: "Gamma"},
	}
}

func TestApplyChangeInsert(t *testing.T) {
	out := ApplyChange(page(), realtime.Event{
		Table: Table,
		Type:  realtime.EventInsert,
		New:   Appointment{ID: 4, LeadName: "Delta"},
	})
	require.Len(t, out, 4)
	assert.Equal(t, "Delta", out[3].LeadName)
}

func TestApplyChangeInsertDuplicateIgnored(t *testing.T) {
	out := ApplyChange(page(), realtime.Event{
		Type: realtime.EventInsert,
		New:  Appointment{ID: 2, LeadName: "Beta again"},
	})
	assert.Len(t, out, 3)
}

func TestApplyChangeUpdateReplacesRow(t *testing.T) {
	out := ApplyChange(page(), realtime.Event{
		Type: realtime.EventUpdate,
		New:  Appointment{ID: 2, LeadName: "Beta", Status: StatusConfirmed},
	})
	require.Len(t, out, 3)
	assert.Equal(t, StatusConfirmed, out[1].Status)
}

func TestApplyChangeUpdateUnknownRowIgnored(t *testing.T) {
	in := page()
	out := ApplyChange(in, realtime.Event{
		Type: realtime.EventUpdate,
		New:  Appointment{ID: 99},
	})
	assert.Equal(t, in, out)
}

func TestApplyChangeDelete(t *testing.T) {
	out := ApplyChange(page(), realtime.Event{
		Type: realtime.EventDelete,
		Old:  Appointment{ID: 1},
	})
	require.Len(t, out, 2)
	assert.Equal(t, uint(2), out[0].ID)
}

func TestApplyChangeDoesNotMutateInput(t *testing.T) {
	in := page()
	_ = ApplyChange(in, realtime.Event{
		Type: realtime.EventUpdate,
		New:  Appointment{ID: 1, LeadName: "Changed"},
	})
	assert.Equal(t, "Alpha", in[0].LeadName)
}

func TestApplyChangePointerPayload(t *testing.T) {
	out := ApplyChange(page(), realtime.Event{
		Type: realtime.EventDelete,
		Old:  &Appointment{ID: 3},
	})
	assert.Len(t, out, 2)
}

func TestApplyChangeForeignPayloadIgnored(t *testing.T) {
	in := page()
	out := ApplyChange(in, realtime.Event{
		Type: realtime.EventInsert,
		New:  "not an appointment",
	})
	assert.Equal(t, in, out)
}
