package activity

import (
	"time"

	"gorm.io/gorm"
)

// Actions recorded against an appointment as it moves through the pipeline.
const (
	ActionBooked      = "booked"
	ActionAssigned    = "assigned"
	ActionConfirmed   = "confirmed"
	ActionCancelled   = "cancelled"
	ActionRescheduled = "rescheduled"
	ActionClosed      = "closed"
)

// Entry is one pipeline event. FromStatus/ToStatus capture the transition so
// reports can count pipeline moves without reloading appointments.
type Entry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TeamID        uint      `gorm:"not null;index" json:"teamId"`
	AppointmentID uint      `gorm:"not null;index" json:"appointmentId"`
	MemberID      *uint     `gorm:"index" json:"memberId"`
	MemberName    string    `gorm:"size:255" json:"memberName"`
	Action        string    `gorm:"size:50;not null;index" json:"action"`
	FromStatus    string    `gorm:"size:20" json:"fromStatus"`
	ToStatus      string    `gorm:"size:20" json:"toStatus"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Entry{})
}
