package activity

import (
	"time"

	"gorm.io/gorm"
)

// Repository wraps data access for activity entries.
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

// Create inserts one entry.
func (r *Repository) Create(e *Entry) error {
	return r.DB.Create(e).Error
}

// ListByAppointment returns the timeline for one appointment, scoped to the
// team so foreign appointment ids come back empty.
func (r *Repository) ListByAppointment(teamID, appointmentID uint) ([]Entry, error) {
	var list []Entry
	err := r.DB.
		Where("team_id = ? AND appointment_id = ?", teamID, appointmentID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// ListByTeamAndPeriod returns entries for report aggregation.
func (r *Repository) ListByTeamAndPeriod(teamID uint, from, to time.Time) ([]Entry, error) {
	var list []Entry
	err := r.DB.
		Where("team_id = ? AND created_at >= ? AND created_at < ?", teamID, from, to).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
