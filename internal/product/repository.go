package product

import (
	"gorm.io/gorm"
)

// Repository wraps data access for products.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create inserts one product.
func (r *Repository) Create(p *Product) error {
	return r.DB.Create(p).Error
}

// FindByID returns one product scoped to the team.
func (r *Repository) FindByID(teamID, id uint) (*Product, error) {
	var p Product
	if err := r.DB.Where("team_id = ?", teamID).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActiveByTeam returns the products offered on close.
func (r *Repository) ListActiveByTeam(teamID uint) ([]Product, error) {
	var list []Product
	err := r.DB.
		Where("team_id = ? AND active = ?", teamID, true).
		Order("name ASC").
		Find(&list).Error
	return list, err
}

// Update saves all fields of an existing product.
func (r *Repository) Update(p *Product) error {
	return r.DB.Save(p).Error
}

// Delete removes a product.
func (r *Repository) Delete(teamID, id uint) error {
	return r.DB.Where("team_id = ?", teamID).Delete(&Product{}, id).Error
}
