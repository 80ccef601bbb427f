package appointment

import (
	"errors"
	"time"
)

// PageSize is fixed; page-change re-issues both the list and count queries.
const PageSize = 50

// Date-range buckets accepted by the list endpoint.
const (
	RangeAll    = "all"
	RangeLast7  = "last-7"
	RangeLast30 = "last-30"
	RangeNext7  = "next-7"
	RangeNext30 = "next-30"
	RangeCustom = "custom"
)

var ErrInvalidRange = errors.New("invalid date range")

// ListFilter composes the independent list predicates.
type ListFilter struct {
	Range        string
	From         *time.Time // custom only
	To           *time.Time // custom only
	Query        string     // case-insensitive substring over lead/setter/closer/event fields
	EventTypeURI string
	Page         int // 1-based
}

// Bounds resolves the bucket into scheduled_at bounds. A nil bound means
// unbounded on that side.
func (f ListFilter) Bounds(now time.Time) (*time.Time, *time.Time, error) {
	switch f.Range {
	case "", RangeAll:
		return nil, nil, nil
	case RangeLast7:
		from := now.AddDate(0, 0, -7)
		return &from, &now, nil
	case RangeLast30:
		from := now.AddDate(0, 0, -30)
		return &from, &now, nil
	case RangeNext7:
		to := now.AddDate(0, 0, 7)
		return &now, &to, nil
	case RangeNext30:
		to := now.AddDate(0, 0, 30)
		return &now, &to, nil
	case RangeCustom:
		if f.From == nil || f.To == nil {
			return nil, nil, ErrInvalidRange
		}
		return f.From, f.To, nil
	default:
		return nil, nil, ErrInvalidRange
	}
}

// Offset converts the 1-based page into a row offset.
func (f ListFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
