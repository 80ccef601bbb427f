package mrrcommission

import (
	"time"

	"gorm.io/gorm"
)

// Repository wraps data access for MRR commissions.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB returns a copy of the repo bound to a specific *gorm.DB (e.g. a tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// CreateInBatch inserts multiple rows at once (no-op on empty input).
func (r *Repository) CreateInBatch(rows []*MRRCommission) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.Create(rows).Error
}

// DeleteByAppointmentID clears every row for an appointment.
func (r *Repository) DeleteByAppointmentID(appointmentID uint) error {
	return r.DB.
		Where("appointment_id = ?", appointmentID).
		Delete(&MRRCommission{}).Error
}

// ReplaceForAppointment deletes then re-inserts the rows for an appointment.
// Running it twice with the same input leaves the same rows behind.
func (r *Repository) ReplaceForAppointment(appointmentID uint, rows []*MRRCommission) error {
	if err := r.DeleteByAppointmentID(appointmentID); err != nil {
		return err
	}
	return r.CreateInBatch(rows)
}

// FindByID returns one row scoped to the team.
func (r *Repository) FindByID(teamID, id uint) (*MRRCommission, error) {
	var row MRRCommission
	if err := r.DB.Where("team_id = ?", teamID).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByAppointment returns the rows for one appointment ordered by month,
// scoped to the team so foreign appointment ids come back empty.
func (r *Repository) ListByAppointment(teamID, appointmentID uint) ([]MRRCommission, error) {
	var list []MRRCommission
	err := r.DB.
		Where("team_id = ? AND appointment_id = ?", teamID, appointmentID).
		Order("month ASC").
		Find(&list).Error
	return list, err
}

// ListByMember returns every row owed to one member ordered by month.
func (r *Repository) ListByMember(teamID, memberID uint) ([]MRRCommission, error) {
	var list []MRRCommission
	err := r.DB.
		Where("team_id = ? AND member_id = ?", teamID, memberID).
		Order("month ASC").
		Find(&list).Error
	return list, err
}

// UpdateStatus sets the status; "paid" stamps paid_at, anything else clears it.
func (r *Repository) UpdateStatus(id uint, status string, paidAt time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == StatusPaid {
		updates["paid_at"] = &paidAt
	} else {
		updates["paid_at"] = nil
	}
	return r.DB.Model(&MRRCommission{}).
		Where("id = ?", id).
		Updates(updates).Error
}
