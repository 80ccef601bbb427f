package task

import (
	"time"

	"gorm.io/gorm"
)

// Table names the realtime channel for task changes.
const Table = "tasks"

const (
	StatusOpen = "open"
	StatusDone = "done"
)

// Task is a follow-up item. The close flow creates one per MRR schedule,
// due on the first charge date.
type Task struct {
	ID            uint  `gorm:"primaryKey" json:"id"`
	TeamID        uint  `gorm:"not null;index" json:"teamId"`
	MRRScheduleID *uint `gorm:"index" json:"mrrScheduleId"`
	AppointmentID *uint `gorm:"index" json:"appointmentId"`

	Title   string    `gorm:"size:255;not null" json:"title"`
	DueDate time.Time `gorm:"not null;index" json:"dueDate"`
	Status  string    `gorm:"size:20;not null;default:'open';index" json:"status"`

	AssignedMemberID   *uint  `gorm:"index" json:"assignedMemberId"`
	AssignedMemberName string `gorm:"size:255" json:"assignedMemberName"`

	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Task{})
}
