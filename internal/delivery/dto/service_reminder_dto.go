package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateServiceReminderRequest struct {
	VehicleID         uuid.UUID `json:"vehicle_id" validate:"required"`
	ServiceScheduleID uuid.UUID `json:"service_schedule_id" validate:"required"`
	DueDate           string    `json:"due_date" validate:"omitempty"` // Format: YYYY-MM-DD
	DueMileage        *float64  `json:"due_mileage" validate:"omitempty,gte=0"`
	Notes             string    `json:"notes"`
}

// Response DTOs

type ServiceReminderResponse struct {
	ID                uuid.UUID  `json:"id"`
	VehicleID         uuid.UUID  `json:"vehicle_id"`
	VehicleName       string     `json:"vehicle_name,omitempty"`
	ServiceScheduleID uuid.UUID  `json:"service_schedule_id"`
	ScheduleName      string     `json:"schedule_name,omitempty"`
	DueDate           *string    `json:"due_date,omitempty"`
	DueMileage        *float64   `json:"due_mileage,omitempty"`
	Status            string     `json:"status"`
	Notes             string     `json:"notes,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type ServiceReminderListResponse struct {
	Reminders []ServiceReminderResponse `json:"reminders"`
	Total     int64                     `json:"total"`
}
