package funnel

import (
	"time"

	"gorm.io/gorm"
)

// Repository wraps data access for funnels.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create inserts one funnel.
func (r *Repository) Create(f *Funnel) error {
	return r.DB.Create(f).Error
}

// FindByID returns one funnel scoped to the team.
func (r *Repository) FindByID(teamID, id uint) (*Funnel, error) {
	var f Funnel
	if err := r.DB.Where("team_id = ?", teamID).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FindPublishedBySlug backs the public page lookup.
func (r *Repository) FindPublishedBySlug(slug string) (*Funnel, error) {
	var f Funnel
	err := r.DB.
		Where("slug = ? AND status = ?", slug, StatusPublished).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByTeam returns every funnel of a team, newest first.
func (r *Repository) ListByTeam(teamID uint) ([]Funnel, error) {
	var list []Funnel
	err := r.DB.
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Update saves all fields of an existing funnel.
func (r *Repository) Update(f *Funnel) error {
	return r.DB.Save(f).Error
}

// Publish flips the funnel live and stamps the publish time.
func (r *Repository) Publish(f *Funnel, at time.Time) error {
	f.Status = StatusPublished
	f.PublishedAt = &at
	return r.DB.Save(f).Error
}

// Delete removes a funnel (soft delete).
func (r *Repository) Delete(teamID, id uint) error {
	return r.DB.Where("team_id = ?", teamID).Delete(&Funnel{}, id).Error
}
