package team

import (
	"time"

	"gorm.io/gorm"
)

// Member roles. OfferOwner is tracked as a separate flag because a member
// keeps their setter/closer role while owning the offer.
const (
	RoleSetter  = "setter"
	RoleCloser  = "closer"
	RoleManager = "manager"
)

// Team groups members and carries the commission percentages applied to
// every deal the team closes.
type Team struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	Name                string  `gorm:"size:255;not null" json:"name"`
	CloserCommissionPct float64 `gorm:"not null;default:10" json:"closerCommissionPct"`
	SetterCommissionPct float64 `gorm:"not null;default:5" json:"setterCommissionPct"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// TeamMember is one user inside a team. IsOfferOwner suppresses the standard
// commission for deals this member closes or sets.
type TeamMember struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TeamID       uint   `gorm:"not null;index" json:"teamId"`
	UserID       uint   `gorm:"not null;uniqueIndex" json:"userId"`
	FullName     string `gorm:"size:255;not null" json:"fullName"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role         string `gorm:"size:50;not null;default:'setter'" json:"role"`
	IsOfferOwner bool   `gorm:"not null;default:false" json:"isOfferOwner"`
	IsAdmin      bool   `gorm:"not null;default:false" json:"isAdmin"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate creates both tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Team{}, &TeamMember{})
}
