package appointment

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository wraps data access for appointments.
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

// Create inserts a new appointment.
func (r *Repository) Create(a *Appointment) error {
	return r.DB.Create(a).Error
}

// FindByID returns one appointment scoped to the team.
func (r *Repository) FindByID(teamID, id uint) (*Appointment, error) {
	var a Appointment
	err := r.DB.Where("team_id = ?", teamID).First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update saves all fields of an existing appointment.
func (r *Repository) Update(a *Appointment) error {
	return r.DB.Save(a).Error
}

// List applies the filter predicates in SQL and returns one page plus the
// total count for the same predicates.
func (r *Repository) List(teamID uint, f ListFilter, now time.Time) ([]Appointment, int64, error) {
	from, to, err := f.Bounds(now)
	if err != nil {
		return nil, 0, err
	}

	q := r.DB.Model(&Appointment{}).Where("team_id = ?", teamID)
	if from != nil {
		q = q.Where("scheduled_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("scheduled_at < ?", *to)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(
			"lead_name ILIKE ? OR lead_email ILIKE ? OR setter_name ILIKE ? OR closer_name ILIKE ? OR event_type ILIKE ?",
			like, like, like, like, like,
		)
	}
	if f.EventTypeURI != "" {
		q = q.Where("event_type_uri = ?", f.EventTypeURI)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var list []Appointment
	err = q.Order("scheduled_at ASC").
		Offset(f.Offset()).
		Limit(PageSize).
		Find(&list).Error
	return list, count, err
}

// ListCreatedBetween feeds report aggregation with the raw rows of a period.
func (r *Repository) ListCreatedBetween(teamID uint, from, to time.Time) ([]Appointment, error) {
	var list []Appointment
	err := r.DB.
		Where("team_id = ? AND created_at >= ? AND created_at < ?", teamID, from, to).
		Find(&list).Error
	return list, err
}

// DeleteBatch removes up to one batch of rows and reports the ids the
// database actually deleted. Row-level rules can silently suppress deletes,
// so callers must compare the result against the request.
func (r *Repository) DeleteBatch(teamID uint, ids []uint) ([]uint, error) {
	var rows []Appointment
	res := r.DB.
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("team_id = ? AND id IN ?", teamID, ids).
		Delete(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	deleted := make([]uint, 0, len(rows))
	for _, a := range rows {
		deleted = append(deleted, a.ID)
	}
	return deleted, nil
}
