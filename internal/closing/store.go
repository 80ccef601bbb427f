package closing

import (
	"github.com/RevOpsHQ/api-salesops/internal/activity"
	"github.com/RevOpsHQ/api-salesops/internal/appointment"
	"github.com/RevOpsHQ/api-salesops/internal/mrrcommission"
	"github.com/RevOpsHQ/api-salesops/internal/mrrschedule"
	"github.com/RevOpsHQ/api-salesops/internal/sale"
	"github.com/RevOpsHQ/api-salesops/internal/task"
	"github.com/RevOpsHQ/api-salesops/internal/team"
	"gorm.io/gorm"
)

// Store is everything the close workflow needs from persistence. The write
// steps run inside InTx so a failed close leaves no partial state behind.
type Store interface {
	ProfileByUserID(userID uint) (*team.TeamMember, error)
	IsOfferOwner(teamID, memberID uint) (bool, error)
	TeamPercentages(teamID uint) (closerPct, setterPct float64, err error)
	AppointmentByID(teamID, id uint) (*appointment.Appointment, error)
	InTx(fn func(tx Tx) error) error
}

// Tx is the transactional slice of the store.
type Tx interface {
	UpdateAppointment(a *appointment.Appointment) error
	CreateActivity(e *activity.Entry) error
	CreateSale(s *sale.Sale) error
	ReplaceMRRCommissions(appointmentID uint, rows []*mrrcommission.MRRCommission) error
	CreateSchedule(s *mrrschedule.MRRSchedule) error
	CreateTask(t *task.Task) error
}

type gormStore struct {
	db           *gorm.DB
	members      team.Repository
	appointments *appointment.Repository
	sales        *sale.Repository
	commissions  *mrrcommission.Repository
	schedules    *mrrschedule.Repository
	tasks        *task.Repository
	activities   *activity.Repository

	defaultCloserPct float64
	defaultSetterPct float64
}

// NewStore builds the production store over the shared repositories.
func NewStore(db *gorm.DB, members team.Repository, appts *appointment.Repository,
	sales *sale.Repository, commissions *mrrcommission.Repository,
	schedules *mrrschedule.Repository, tasks *task.Repository,
	activities *activity.Repository,
	defaultCloserPct, defaultSetterPct float64) Store {
	return &gormStore{
		db:               db,
		members:          members,
		appointments:     appts,
		sales:            sales,
		commissions:      commissions,
		schedules:        schedules,
		tasks:            tasks,
		activities:       activities,
		defaultCloserPct: defaultCloserPct,
		defaultSetterPct: defaultSetterPct,
	}
}

func (s *gormStore) ProfileByUserID(userID uint) (*team.TeamMember, error) {
	return s.members.FindByUserID(s.db, userID)
}

func (s *gormStore) IsOfferOwner(teamID, memberID uint) (bool, error) {
	return s.members.IsOfferOwner(s.db, teamID, memberID)
}

func (s *gormStore) TeamPercentages(teamID uint) (float64, float64, error) {
	t, err := s.members.TeamByID(s.db, teamID)
	if err != nil {
		return s.defaultCloserPct, s.defaultSetterPct, nil
	}
	closerPct, setterPct := t.CloserCommissionPct, t.SetterCommissionPct
	if closerPct <= 0 {
		closerPct = s.defaultCloserPct
	}
	if setterPct <= 0 {
		setterPct = s.defaultSetterPct
	}
	return closerPct, setterPct, nil
}

func (s *gormStore) AppointmentByID(teamID, id uint) (*appointment.Appointment, error) {
	return s.appointments.FindByID(teamID, id)
}

func (s *gormStore) InTx(fn func(tx Tx) error) error {
	return s.db.Transaction(func(db *gorm.DB) error {
		return fn(&gormTx{
			appointments: s.appointments.WithDB(db),
			sales:        s.sales.WithDB(db),
			commissions:  s.commissions.WithDB(db),
			schedules:    s.schedules.WithDB(db),
			tasks:        s.tasks.WithDB(db),
			activities:   s.activities.WithDB(db),
		})
	})
}

type gormTx struct {
	appointments *appointment.Repository
	sales        *sale.Repository
	commissions  *mrrcommission.Repository
	schedules    *mrrschedule.Repository
	tasks        *task.Repository
	activities   *activity.Repository
}

func (t *gormTx) UpdateAppointment(a *appointment.Appointment) error {
	return t.appointments.Update(a)
}

func (t *gormTx) CreateActivity(e *activity.Entry) error {
	return t.activities.Create(e)
}

func (t *gormTx) CreateSale(s *sale.Sale) error {
	return t.sales.Create(s)
}

func (t *gormTx) ReplaceMRRCommissions(appointmentID uint, rows []*mrrcommission.MRRCommission) error {
	return t.commissions.ReplaceForAppointment(appointmentID, rows)
}

func (t *gormTx) CreateSchedule(s *mrrschedule.MRRSchedule) error {
	return t.schedules.Create(s)
}

func (t *gormTx) CreateTask(tk *task.Task) error {
	return t.tasks.Create(tk)
}
