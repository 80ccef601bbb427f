package commission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v uint) *uint { return &v }

var now = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		err  error
	}{
		{"missing cc", Input{CashCollected: 0}, ErrCCRequired},
		{"negative cc", Input{CashCollected: -100}, ErrCCRequired},
		{"mrr without months", Input{CashCollected: 500, MRRAmount: 200}, ErrInvalidMRRMonths},
		{"mrr with negative months", Input{CashCollected: 500, MRRAmount: 200, MRRMonths: -1}, ErrInvalidMRRMonths},
		{"valid without mrr", Input{CashCollected: 500}, nil},
		{"valid with mrr", Input{CashCollected: 500, MRRAmount: 200, MRRMonths: 3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.in.Validate(), tt.err)
		})
	}
}

func TestCalculateBaseCommissions(t *testing.T) {
	setterID := ptr(7)

	res, err := Calculate(Input{
		CashCollected: 1000,
		CloserPct:     10,
		SetterPct:     5,
		CloserID:      3,
		SetterID:      setterID,
		Now:           now,
	})
	require.NoError(t, err)
	assert.InDelta(t, 100, res.CloserCommission, 1e-9)
	assert.InDelta(t, 50, res.SetterCommission, 1e-9)
	assert.Empty(t, res.Entries)
	assert.Nil(t, res.Schedule)
}

func TestCalculateOfferOwnerCloserGetsNothing(t *testing.T) {
	res, err := Calculate(Input{
		CashCollected:      1000,
		CloserPct:          10,
		SetterPct:          5,
		CloserID:           3,
		CloserIsOfferOwner: true,
		Now:                now,
	})
	require.NoError(t, err)
	assert.Zero(t, res.CloserCommission)
}

func TestCalculateNoSetterNoSetterCommission(t *testing.T) {
	res, err := Calculate(Input{
		CashCollected: 1000,
		CloserPct:     10,
		SetterPct:     5,
		CloserID:      3,
		Now:           now,
	})
	require.NoError(t, err)
	assert.Zero(t, res.SetterCommission)
}

func TestCalculateOfferOwnerSetterGetsNoBaseCommission(t *testing.T) {
	res, err := Calculate(Input{
		CashCollected:      1000,
		CloserPct:          10,
		SetterPct:          5,
		CloserID:           3,
		SetterID:           ptr(7),
		SetterIsOfferOwner: true,
		Now:                now,
	})
	require.NoError(t, err)
	assert.Zero(t, res.SetterCommission)
}

func TestCalculateMRRSchedule(t *testing.T) {
	res, err := Calculate(Input{
		CashCollected: 1000,
		MRRAmount:     200,
		MRRMonths:     3,
		CloserPct:     10,
		SetterPct:     5,
		CloserID:      3,
		CloserName:    "Casey Closer",
		SetterID:      ptr(7),
		SetterName:    "Sam Setter",
		Now:           now,
	})
	require.NoError(t, err)

	// 3 closer rows + 3 setter rows, one per consecutive month starting next month.
	require.Len(t, res.Entries, 6)

	var closerMonths, setterMonths []time.Time
	for _, e := range res.Entries {
		switch e.Role {
		case RoleCloser:
			assert.InDelta(t, 20, e.Amount, 1e-9)
			closerMonths = append(closerMonths, e.Month)
		case RoleSetter:
			assert.InDelta(t, 10, e.Amount, 1e-9)
			setterMonths = append(setterMonths, e.Month)
		}
	}
	want := []time.Time{
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, closerMonths)
	assert.Equal(t, want, setterMonths)

	require.NotNil(t, res.Schedule)
	firstOfNext := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, firstOfNext, res.Schedule.FirstChargeDate)
	assert.Equal(t, firstOfNext, res.Schedule.NextRenewalDate)
}

func TestCalculateOfferOwnerCloserSkipsMRRRows(t *testing.T) {
	res, err := Calculate(Input{
		CashCollected:      1000,
		MRRAmount:          200,
		MRRMonths:          3,
		CloserPct:          10,
		SetterPct:          5,
		CloserID:           3,
		CloserIsOfferOwner: true,
		SetterID:           ptr(7),
		Now:                now,
	})
	require.NoError(t, err)

	// Setter rows unaffected, no closer rows.
	require.Len(t, res.Entries, 3)
	for _, e := range res.Entries {
		assert.Equal(t, RoleSetter, e.Role)
	}
}

// Offer-owner setters lose the base commission but keep MRR rows. That
// asymmetry matches the observed production behavior.
func TestCalculateOfferOwnerSetterStillGetsMRRRows(t *testing.T) {
	res, err := Calculate(Input{
		CashCollected:      1000,
		MRRAmount:          200,
		MRRMonths:          2,
		CloserPct:          10,
		SetterPct:          5,
		CloserID:           3,
		SetterID:           ptr(7),
		SetterIsOfferOwner: true,
		Now:                now,
	})
	require.NoError(t, err)

	assert.Zero(t, res.SetterCommission)
	var setterRows int
	for _, e := range res.Entries {
		if e.Role == RoleSetter {
			setterRows++
		}
	}
	assert.Equal(t, 2, setterRows)
}

func TestCalculateScheduleIndependentOfMonths(t *testing.T) {
	for _, months := range []int{1, 6, 24} {
		res, err := Calculate(Input{
			CashCollected: 100,
			MRRAmount:     50,
			MRRMonths:     months,
			CloserPct:     10,
			SetterPct:     5,
			CloserID:      3,
			Now:           now,
		})
		require.NoError(t, err)
		require.NotNil(t, res.Schedule)
		assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), res.Schedule.FirstChargeDate)
	}
}

func TestCalculateMonthRolloverAcrossYear(t *testing.T) {
	dec := time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC)
	res, err := Calculate(Input{
		CashCollected: 100,
		MRRAmount:     50,
		MRRMonths:     2,
		CloserPct:     10,
		SetterPct:     5,
		CloserID:      3,
		Now:           dec,
	})
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), res.Entries[0].Month)
	assert.Equal(t, time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC), res.Entries[1].Month)
}
