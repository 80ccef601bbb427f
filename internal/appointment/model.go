package appointment

import (
	"time"

	"gorm.io/gorm"
)

// Table names the realtime channel for appointment changes.
const Table = "appointments"

// Lifecycle statuses. CLOSED is terminal; the close flow never deletes rows.
const (
	StatusNew         = "NEW"
	StatusConfirmed   = "CONFIRMED"
	StatusCancelled   = "CANCELLED"
	StatusRescheduled = "RESCHEDULED"
	StatusClosed      = "CLOSED"
)

// Appointment is one booked lead and its assignment state. The revenue and
// MRR fields stay zero until the deal is closed.
type Appointment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TeamID uint `gorm:"not null;index" json:"teamId"`

	LeadName  string `gorm:"size:255;not null" json:"leadName"`
	LeadEmail string `gorm:"size:255" json:"leadEmail"`
	LeadPhone string `gorm:"size:50" json:"leadPhone"`

	ScheduledAt time.Time `gorm:"not null;index" json:"scheduledAt"`
	Status      string    `gorm:"size:20;not null;default:'NEW';index" json:"status"`

	SetterID   *uint  `gorm:"index" json:"setterId"`
	SetterName string `gorm:"size:255" json:"setterName"`
	CloserID   *uint  `gorm:"index" json:"closerId"`
	CloserName string `gorm:"size:255" json:"closerName"`

	EventType    string `gorm:"size:255" json:"eventType"`
	EventTypeURI string `gorm:"size:255;index" json:"eventTypeUri"`

	// Set on close.
	Revenue     float64 `gorm:"not null;default:0" json:"revenue"`
	CCCollected float64 `gorm:"not null;default:0" json:"ccCollected"`
	MRRAmount   float64 `gorm:"not null;default:0" json:"mrrAmount"`
	MRRMonths   int     `gorm:"not null;default:0" json:"mrrMonths"`
	ProductName string  `gorm:"size:255" json:"productName"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Appointment{})
}
