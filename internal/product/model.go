package product

import (
	"time"

	"gorm.io/gorm"
)

// Product is one offer a team sells; the close flow records its name on the
// appointment and sale.
type Product struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	TeamID uint    `gorm:"not null;index" json:"teamId"`
	Name   string  `gorm:"size:255;not null" json:"name"`
	Price  float64 `gorm:"not null;default:0" json:"price"`
	MRR    float64 `gorm:"not null;default:0" json:"mrr"`
	Active bool    `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Product{})
}
