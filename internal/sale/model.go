package sale

import (
	"time"

	"gorm.io/gorm"
)

// Table names the realtime channel for sale changes.
const Table = "sales"

const (
	StatusClosed   = "closed"
	StatusRefunded = "refunded"
)

// Sale records closed revenue, created exactly once per deal close.
type Sale struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	TeamID        uint `gorm:"not null;index" json:"teamId"`
	AppointmentID uint `gorm:"not null;index" json:"appointmentId"`

	CustomerName string `gorm:"size:255;not null" json:"customerName"`
	SetterName   string `gorm:"size:255" json:"setterName"`
	CloserName   string `gorm:"size:255;not null" json:"closerName"`
	ProductName  string `gorm:"size:255" json:"productName"`

	Revenue          float64 `gorm:"not null;default:0" json:"revenue"`
	CloserCommission float64 `gorm:"not null;default:0" json:"closerCommission"`
	SetterCommission float64 `gorm:"not null;default:0" json:"setterCommission"`

	Status string `gorm:"size:50;not null;default:'closed';index" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Sale{})
}
