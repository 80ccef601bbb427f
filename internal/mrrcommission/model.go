package mrrcommission

import (
	"time"

	"gorm.io/gorm"
)

// Table names the realtime channel for MRR commission changes.
const Table = "mrr_commissions"

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// MRRCommission is one team-member-role share of one future MRR month.
// Rows for an appointment are deleted and regenerated on every close, so a
// retried close never accumulates duplicates.
type MRRCommission struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	TeamID        uint `gorm:"not null;index" json:"teamId"`
	AppointmentID uint `gorm:"not null;index" json:"appointmentId"`

	MemberID   *uint  `gorm:"index" json:"memberId"`
	MemberName string `gorm:"size:255" json:"memberName"`
	Role       string `gorm:"size:20;not null" json:"role"`

	Amount float64   `gorm:"not null;default:0" json:"amount"`
	Month  time.Time `gorm:"not null;index" json:"month"`

	Status string     `gorm:"size:50;not null;default:'pending';index" json:"status"`
	PaidAt *time.Time `json:"paidAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MRRCommission{})
}
