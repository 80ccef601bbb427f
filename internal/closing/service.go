package closing

import (
	"errors"
	"fmt"
	"time"

	"github.com/RevOpsHQ/api-salesops/internal/activity"
	"github.com/RevOpsHQ/api-salesops/internal/appointment"
	"github.com/RevOpsHQ/api-salesops/internal/commission"
	"github.com/RevOpsHQ/api-salesops/internal/mrrcommission"
	"github.com/RevOpsHQ/api-salesops/internal/mrrschedule"
	"github.com/RevOpsHQ/api-salesops/internal/realtime"
	"github.com/RevOpsHQ/api-salesops/internal/sale"
	"github.com/RevOpsHQ/api-salesops/internal/task"
)

var (
	ErrProfileNotFound     = errors.New("could not load user profile")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// CloseRequest is the deal-close input from the closer.
type CloseRequest struct {
	AppointmentID uint    `json:"appointmentId"`
	CashCollected float64 `json:"ccAmount"`
	MRRAmount     float64 `json:"mrrAmount"`
	MRRMonths     int     `json:"mrrMonths"`
	ProductName   string  `json:"productName"`
}

// CloseResult summarizes what one close wrote.
type CloseResult struct {
	Appointment *appointment.Appointment `json:"appointment"`
	Sale        *sale.Sale               `json:"sale"`
	MRRRows     int                      `json:"mrrRows"`
	Schedule    *mrrschedule.MRRSchedule `json:"schedule,omitempty"`
	Message     string                   `json:"message"`
}

// ReminderSender notifies externally about a new follow-up task.
type ReminderSender interface {
	SendReminder(taskID uint, title string, dueDate time.Time)
}

// Service runs the deal-close workflow: lookups, validation, commission
// calculation, then all writes in a single transaction.
type Service struct {
	Store     Store
	Hub       *realtime.Hub
	Reminders ReminderSender

	// Overridable in tests.
	Now func() time.Time
}

func NewService(store Store, hub *realtime.Hub, reminders ReminderSender) *Service {
	return &Service{Store: store, Hub: hub, Reminders: reminders, Now: time.Now}
}

// Close executes one close attempt for the acting user. Validation failures
// return before any write; write failures roll the transaction back.
func (s *Service) Close(userID uint, req CloseRequest) (*CloseResult, error) {
	// 1) acting user's profile, fails closed
	profile, err := s.Store.ProfileByUserID(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	teamID := profile.TeamID

	// 2) local validation before anything touches the database
	if err := (commission.Input{
		CashCollected: req.CashCollected,
		MRRAmount:     req.MRRAmount,
		MRRMonths:     req.MRRMonths,
	}).Validate(); err != nil {
		return nil, err
	}

	appt, err := s.Store.AppointmentByID(teamID, req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	// 3) closer role
	closerIsOwner, err := s.Store.IsOfferOwner(teamID, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("could not load closer role: %w", err)
	}

	// 4) setter role, only when assigned
	var setterIsOwner bool
	if appt.SetterID != nil {
		setterIsOwner, err = s.Store.IsOfferOwner(teamID, *appt.SetterID)
		if err != nil {
			return nil, fmt.Errorf("could not load setter role: %w", err)
		}
	}

	closerPct, setterPct, err := s.Store.TeamPercentages(teamID)
	if err != nil {
		return nil, fmt.Errorf("could not load team percentages: %w", err)
	}

	// 5) commissions
	calc, err := commission.Calculate(commission.Input{
		CashCollected:      req.CashCollected,
		MRRAmount:          req.MRRAmount,
		MRRMonths:          req.MRRMonths,
		CloserPct:          closerPct,
		SetterPct:          setterPct,
		CloserID:           profile.ID,
		CloserName:         profile.FullName,
		CloserIsOfferOwner: closerIsOwner,
		SetterID:           appt.SetterID,
		SetterName:         appt.SetterName,
		SetterIsOfferOwner: setterIsOwner,
		Now:                s.Now(),
	})
	if err != nil {
		return nil, err
	}

	// 6-9) writes, one transaction
	fromStatus := appt.Status
	appt.Status = appointment.StatusClosed
	appt.CloserID = &profile.ID
	appt.CloserName = profile.FullName
	appt.Revenue = req.CashCollected
	appt.CCCollected = req.CashCollected
	appt.MRRAmount = req.MRRAmount
	appt.MRRMonths = req.MRRMonths
	appt.ProductName = req.ProductName

	newSale := &sale.Sale{
		TeamID:           teamID,
		AppointmentID:    appt.ID,
		CustomerName:     appt.LeadName,
		SetterName:       appt.SetterName,
		CloserName:       profile.FullName,
		ProductName:      req.ProductName,
		Revenue:          req.CashCollected,
		CloserCommission: calc.CloserCommission,
		SetterCommission: calc.SetterCommission,
		Status:           sale.StatusClosed,
	}

	var schedule *mrrschedule.MRRSchedule
	var followUp *task.Task
	err = s.Store.InTx(func(tx Tx) error {
		if err := tx.UpdateAppointment(appt); err != nil {
			return err
		}
		if err := tx.CreateActivity(&activity.Entry{
			TeamID:        teamID,
			AppointmentID: appt.ID,
			MemberID:      &profile.ID,
			MemberName:    profile.FullName,
			Action:        activity.ActionClosed,
			FromStatus:    fromStatus,
			ToStatus:      appointment.StatusClosed,
		}); err != nil {
			return err
		}
		if err := tx.CreateSale(newSale); err != nil {
			return err
		}
		if calc.Schedule == nil {
			return nil
		}

		rows := make([]*mrrcommission.MRRCommission, 0, len(calc.Entries))
		for _, e := range calc.Entries {
			rows = append(rows, &mrrcommission.MRRCommission{
				TeamID:        teamID,
				AppointmentID: appt.ID,
				MemberID:      e.MemberID,
				MemberName:    e.MemberName,
				Role:          e.Role,
				Amount:        e.Amount,
				Month:         e.Month,
				Status:        mrrcommission.StatusPending,
			})
		}
		if err := tx.ReplaceMRRCommissions(appt.ID, rows); err != nil {
			return err
		}

		schedule = &mrrschedule.MRRSchedule{
			TeamID:             teamID,
			AppointmentID:      appt.ID,
			CustomerName:       appt.LeadName,
			MRRAmount:          req.MRRAmount,
			MRRMonths:          req.MRRMonths,
			FirstChargeDate:    calc.Schedule.FirstChargeDate,
			NextRenewalDate:    calc.Schedule.NextRenewalDate,
			AssignedMemberID:   &profile.ID,
			AssignedMemberName: profile.FullName,
			Status:             mrrschedule.StatusActive,
		}
		if err := tx.CreateSchedule(schedule); err != nil {
			return err
		}

		scheduleID := schedule.ID
		followUp = &task.Task{
			TeamID:             teamID,
			MRRScheduleID:      &scheduleID,
			AppointmentID:      &appt.ID,
			Title:              fmt.Sprintf("First MRR charge follow-up: %s", appt.LeadName),
			DueDate:            calc.Schedule.FirstChargeDate,
			Status:             task.StatusOpen,
			AssignedMemberID:   &profile.ID,
			AssignedMemberName: profile.FullName,
		}
		return tx.CreateTask(followUp)
	})
	if err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.Publish(realtime.Event{Table: appointment.Table, Type: realtime.EventUpdate, TeamID: teamID, New: *appt})
		s.Hub.Publish(realtime.Event{Table: sale.Table, Type: realtime.EventInsert, TeamID: teamID, New: *newSale})
		if schedule != nil {
			s.Hub.Publish(realtime.Event{Table: mrrschedule.Table, Type: realtime.EventInsert, TeamID: teamID, New: *schedule})
		}
		if followUp != nil {
			s.Hub.Publish(realtime.Event{Table: task.Table, Type: realtime.EventInsert, TeamID: teamID, New: *followUp})
		}
	}
	if s.Reminders != nil && followUp != nil {
		go s.Reminders.SendReminder(followUp.ID, followUp.Title, followUp.DueDate)
	}

	msg := fmt.Sprintf("Deal closed: $%.2f CC", req.CashCollected)
	if req.MRRAmount > 0 {
		msg += fmt.Sprintf(" + $%.2f MRR x %d months", req.MRRAmount, req.MRRMonths)
	}
	return &CloseResult{
		Appointment: appt,
		Sale:        newSale,
		MRRRows:     len(calc.Entries),
		Schedule:    schedule,
		Message:     msg,
	}, nil
}
