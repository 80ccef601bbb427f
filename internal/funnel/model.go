package funnel

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Funnel is one marketing page built in the editor. Pages and their widgets
// are stored as a JSONB document; only the funnel row itself is relational.
type Funnel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	TeamID uint   `gorm:"not null;index" json:"teamId"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Slug   string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Status string `gorm:"size:20;not null;default:'draft';index" json:"status"`

	Pages []Page `gorm:"type:jsonb;serializer:json" json:"pages"`

	PublishedAt *time.Time     `json:"publishedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Page is one step of the funnel holding its widgets in display order.
type Page struct {
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Widgets []Widget `json:"widgets"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Funnel{})
}
