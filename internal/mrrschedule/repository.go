package mrrschedule

import (
	"gorm.io/gorm"
)

// Repository wraps data access for MRR schedules.
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

// Create inserts one schedule.
func (r *Repository) Create(s *MRRSchedule) error {
	return r.DB.Create(s).Error
}

// FindByID returns one schedule scoped to the team.
func (r *Repository) FindByID(teamID, id uint) (*MRRSchedule, error) {
	var s MRRSchedule
	if err := r.DB.Where("team_id = ?", teamID).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByTeam returns active schedules ordered by next renewal.
func (r *Repository) ListByTeam(teamID uint) ([]MRRSchedule, error) {
	var list []MRRSchedule
	err := r.DB.
		Where("team_id = ? AND status = ?", teamID, StatusActive).
		Order("next_renewal_date ASC").
		Find(&list).Error
	return list, err
}

// AdvanceRenewal moves next_renewal_date one calendar month forward.
func (r *Repository) AdvanceRenewal(teamID, id uint) (*MRRSchedule, error) {
	s, err := r.FindByID(teamID, id)
	if err != nil {
		return nil, err
	}
	s.NextRenewalDate = s.NextRenewalDate.AddDate(0, 1, 0)
	if err := r.DB.Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// Cancel marks a schedule cancelled.
func (r *Repository) Cancel(teamID, id uint) error {
	return r.DB.Model(&MRRSchedule{}).
		Where("team_id = ? AND id = ?", teamID, id).
		Update("status", StatusCancelled).Error
}
