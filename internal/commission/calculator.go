package commission

import (
	"errors"
	"time"
)

// Validation errors surfaced before any write happens.
var (
	ErrCCRequired       = errors.New("CC amount required")
	ErrInvalidMRRMonths = errors.New("Invalid MRR months")
)

// Commission entry roles.
const (
	RoleCloser = "closer"
	RoleSetter = "setter"
)

// Input carries everything Calculate needs. Now anchors the MRR month
// schedule so results are reproducible.
type Input struct {
	CashCollected float64
	MRRAmount     float64
	MRRMonths     int

	CloserPct float64
	SetterPct float64

	CloserID           uint
	CloserName         string
	CloserIsOfferOwner bool

	SetterID           *uint
	SetterName         string
	SetterIsOfferOwner bool

	Now time.Time
}

// Entry is one future MRR commission, due in a given calendar month.
type Entry struct {
	Role       string
	MemberID   *uint
	MemberName string
	Amount     float64
	Month      time.Time
}

// Schedule describes the recurring-revenue record created per closed deal.
// Both dates start as the first day of next month, independent of MRRMonths.
type Schedule struct {
	FirstChargeDate time.Time
	NextRenewalDate time.Time
}

// Result of a commission calculation.
type Result struct {
	CloserCommission float64
	SetterCommission float64
	Entries          []Entry
	Schedule         *Schedule
}

// Validate rejects inputs that must never reach the backend.
func (in Input) Validate() error {
	if in.CashCollected <= 0 {
		return ErrCCRequired
	}
	if in.MRRAmount > 0 && in.MRRMonths <= 0 {
		return ErrInvalidMRRMonths
	}
	return nil
}

// Calculate derives commission amounts with no side effects.
//
// Offer owners earn no base commission on their own deals. Note the
// asymmetry carried over from the reviewed behavior: an offer-owner setter
// is suppressed on the CC commission but still receives MRR entries.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	if !in.CloserIsOfferOwner {
		res.CloserCommission = in.CashCollected * in.CloserPct / 100
	}
	if in.SetterID != nil && !in.SetterIsOfferOwner {
		res.SetterCommission = in.CashCollected * in.SetterPct / 100
	}

	if in.MRRAmount > 0 {
		base := firstOfMonth(in.Now)
		for i := 1; i <= in.MRRMonths; i++ {
			month := base.AddDate(0, i, 0)
			if !in.CloserIsOfferOwner {
				closerID := in.CloserID
				res.Entries = append(res.Entries, Entry{
					Role:       RoleCloser,
					MemberID:   &closerID,
					MemberName: in.CloserName,
					Amount:     in.MRRAmount * in.CloserPct / 100,
					Month:      month,
				})
			}
			if in.SetterID != nil {
				res.Entries = append(res.Entries, Entry{
					Role:       RoleSetter,
					MemberID:   in.SetterID,
					MemberName: in.SetterName,
					Amount:     in.MRRAmount * in.SetterPct / 100,
					Month:      month,
				})
			}
		}

		first := firstOfMonth(in.Now).AddDate(0, 1, 0)
		res.Schedule = &Schedule{FirstChargeDate: first, NextRenewalDate: first}
	}

	return res, nil
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
