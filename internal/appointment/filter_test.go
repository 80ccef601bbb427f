package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestBoundsBuckets(t *testing.T) {
	tests := []struct {
		rng  string
		from *time.Time
		to   *time.Time
	}{
		{RangeAll, nil, nil},
		{"", nil, nil},
		{RangeLast7, timePtr(filterNow.AddDate(0, 0, -7)), &filterNow},
		{RangeLast30, timePtr(filterNow.AddDate(0, 0, -30)), &filterNow},
		{RangeNext7, &filterNow, timePtr(filterNow.AddDate(0, 0, 7))},
		{RangeNext30, &filterNow, timePtr(filterNow.AddDate(0, 0, 30))},
	}
	for _, tt := range tests {
		t.Run("range "+tt.rng, func(t *testing.T) {
			from, to, err := ListFilter{Range: tt.rng}.Bounds(filterNow)
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestBoundsCustom(t *testing.T) {
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	gotFrom, gotTo, err := ListFilter{Range: RangeCustom, From: &from, To: &to}.Bounds(filterNow)
	require.NoError(t, err)
	assert.Equal(t, &from, gotFrom)
	assert.Equal(t, &to, gotTo)

	_, _, err = ListFilter{Range: RangeCustom, From: &from}.Bounds(filterNow)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestBoundsUnknownRange(t *testing.T) {
	_, _, err := ListFilter{Range: "yesterday"}.Bounds(filterNow)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, ListFilter{}.Offset())
	assert.Equal(t, 0, ListFilter{Page: 1}.Offset())
	assert.Equal(t, 50, ListFilter{Page: 2}.Offset())
	assert.Equal(t, 450, ListFilter{Page: 10}.Offset())
}

func timePtr(t time.Time) *time.Time { return &t }
