package task

import (
	"time"

	"gorm.io/gorm"
)

// Repository wraps data access for tasks.
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

// Create inserts one task.
func (r *Repository) Create(t *Task) error {
	return r.DB.Create(t).Error
}

// FindByID returns one task scoped to the team.
func (r *Repository) FindByID(teamID, id uint) (*Task, error) {
	var t Task
	if err := r.DB.Where("team_id = ?", teamID).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByTeam returns every task for a team ordered by due date.
func (r *Repository) ListByTeam(teamID uint) ([]Task, error) {
	var list []Task
	err := r.DB.
		Where("team_id = ?", teamID).
		Order("due_date ASC").
		Find(&list).Error
	return list, err
}

// ListOpenByTeam feeds overdue counting in reports.
func (r *Repository) ListOpenByTeam(teamID uint) ([]Task, error) {
	var list []Task
	err := r.DB.
		Where("team_id = ? AND status = ?", teamID, StatusOpen).
		Order("due_date ASC").
		Find(&list).Error
	return list, err
}

// Complete marks a task done with the completion time.
func (r *Repository) Complete(teamID, id uint, at time.Time) error {
	return r.DB.Model(&Task{}).
		Where("team_id = ? AND id = ?", teamID, id).
		Updates(map[string]interface{}{
			"status":       StatusDone,
			"completed_at": &at,
		}).Error
}
