package sale

import (
	"gorm.io/gorm"
)

// Repository wraps data access for sales.
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

// Create inserts one sale.
func (r *Repository) Create(s *Sale) error {
	return r.DB.Create(s).Error
}

// FindByID returns one sale scoped to the team.
func (r *Repository) FindByID(teamID, id uint) (*Sale, error) {
	var s Sale
	if err := r.DB.Where("team_id = ?", teamID).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByTeam returns every sale for a team, newest first.
func (r *Repository) ListByTeam(teamID uint) ([]Sale, error) {
	var list []Sale
	err := r.DB.
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Update saves all fields of an existing sale.
func (r *Repository) Update(s *Sale) error {
	return r.DB.Save(s).Error
}
