package appointment

import (
	"github.com/RevOpsHQ/api-salesops/internal/realtime"
)

// ApplyChange reduces one realtime event over an in-memory page of
// appointments: inserts append, updates replace by id, deletes remove.
// Events carrying rows of another type are ignored. The input slice is not
// mutated.
func ApplyChange(list []Appointment, ev realtime.Event) []Appointment {
	switch ev.Type {
	case realtime.EventInsert:
		row, ok := eventRow(ev.New)
		if !ok {
			return list
		}
		for _, a := range list {
			if a.ID == row.ID {
				return list
			}
		}
		out := make([]Appointment, len(list), len(list)+1)
		copy(out, list)
		return append(out, row)

	case realtime.EventUpdate:
		row, ok := eventRow(ev.New)
		if !ok {
			return list
		}
		out := make([]Appointment, len(list))
		copy(out, list)
		for i := range out {
			if out[i].ID == row.ID {
				out[i] = row
				break
			}
		}
		return out

	case realtime.EventDelete:
		row, ok := eventRow(ev.Old)
		if !ok {
			return list
		}
		out := make([]Appointment, 0, len(list))
		for _, a := range list {
			if a.ID != row.ID {
				out = append(out, a)
			}
		}
		return out
	}
	return list
}

func eventRow(v any) (Appointment, bool) {
	switch row := v.(type) {
	case Appointment:
		return row, true
	case *Appointment:
		if row != nil {
			return *row, true
		}
	}
	return Appointment{}, false
}
