package team

import (
	"gorm.io/gorm"
)

type Repository interface {
	Save(db *gorm.DB, m *TeamMember) error
	FindByID(db *gorm.DB, id uint) (*TeamMember, error)
	FindByUserID(db *gorm.DB, userID uint) (*TeamMember, error)
	FindByEmail(db *gorm.DB, email string) (*TeamMember, error)
	ListByTeam(db *gorm.DB, teamID uint) ([]TeamMember, error)
	Update(db *gorm.DB, m *TeamMember) error
	Delete(db *gorm.DB, id uint) error
	IsOfferOwner(db *gorm.DB, teamID, memberID uint) (bool, error)
	TeamByID(db *gorm.DB, id uint) (*Team, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Save(db *gorm.DB, m *TeamMember) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*TeamMember, error) {
	var m TeamMember
	if err := db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) FindByUserID(db *gorm.DB, userID uint) (*TeamMember, error) {
	var m TeamMember
	if err := db.Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*TeamMember, error) {
	var m TeamMember
	if err := db.Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) ListByTeam(db *gorm.DB, teamID uint) ([]TeamMember, error) {
	var list []TeamMember
	err := db.Where("team_id = ?", teamID).Order("full_name ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Update(db *gorm.DB, m *TeamMember) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&TeamMember{}, id).Error
}

// IsOfferOwner answers the role lookup done before computing commissions.
func (r *repositoryImpl) IsOfferOwner(db *gorm.DB, teamID, memberID uint) (bool, error) {
	var m TeamMember
	err := db.Select("is_offer_owner").
		Where("team_id = ? AND id = ?", teamID, memberID).
		First(&m).Error
	if err != nil {
		return false, err
	}
	return m.IsOfferOwner, nil
}

func (r *repositoryImpl) TeamByID(db *gorm.DB, id uint) (*Team, error) {
	var t Team
	if err := db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
