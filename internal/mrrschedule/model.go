package mrrschedule

import (
	"time"

	"gorm.io/gorm"
)

// Table names the realtime channel for schedule changes.
const Table = "mrr_schedules"

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// MRRSchedule tracks the recurring revenue of one closed deal: when the next
// renewal charges and who follows up on it.
type MRRSchedule struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	TeamID        uint `gorm:"not null;index" json:"teamId"`
	AppointmentID uint `gorm:"not null;index" json:"appointmentId"`

	CustomerName string  `gorm:"size:255;not null" json:"customerName"`
	MRRAmount    float64 `gorm:"not null;default:0" json:"mrrAmount"`
	MRRMonths    int     `gorm:"not null;default:0" json:"mrrMonths"`

	FirstChargeDate time.Time `gorm:"not null" json:"firstChargeDate"`
	NextRenewalDate time.Time `gorm:"not null;index" json:"nextRenewalDate"`

	AssignedMemberID   *uint  `gorm:"index" json:"assignedMemberId"`
	AssignedMemberName string `gorm:"size:255" json:"assignedMemberName"`

	Status string `gorm:"size:50;not null;default:'active';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&MRRSchedule{})
}
