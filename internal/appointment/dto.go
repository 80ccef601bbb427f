package appointment

import "time"

type createAppointmentRequest struct {
	LeadName     string    `json:"leadName" validate:"required"`
	LeadEmail    string    `json:"leadEmail" validate:"omitempty,email"`
	LeadPhone    string    `json:"leadPhone"`
	ScheduledAt  time.Time `json:"scheduledAt" validate:"required"`
	EventType    string    `json:"eventType"`
	EventTypeURI string    `json:"eventTypeUri"`
	SetterID     *uint     `json:"setterId"`
}

type assignRequest struct {
	SetterID *uint `json:"setterId"`
	CloserID *uint `json:"closerId"`
}

type rescheduleRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

type bulkDeleteRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

type bulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type listResponse struct {
	Items    []Appointment `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}
