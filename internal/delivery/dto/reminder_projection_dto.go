package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// ReminderProjectionQuery carries the query-string parameters of the
// projection endpoint.
type ReminderProjectionQuery struct {
	Search         string `json:"search"`
	SortBy         string `json:"sort_by"`
	SortDescending bool   `json:"sort_desc"`
	PageNumber     int    `json:"page" validate:"gte=1"`
	PageSize       int    `json:"page_size" validate:"gte=1,lte=200"`
}

// Response DTOs

type ProjectedTaskResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Category             string          `json:"category"`
	EstimatedLabourHours float64         `json:"estimated_labour_hours"`
	EstimatedCost        decimal.Decimal `json:"estimated_cost"`
}

// ReminderProjectionResponse is one virtual occurrence computed by the
// projection engine. It is never persisted.
type ReminderProjectionResponse struct {
	VehicleID           uuid.UUID `json:"vehicle_id"`
	VehicleName         string    `json:"vehicle_name"`
	ServiceProgramID    uuid.UUID `json:"service_program_id"`
	ServiceProgramName  string    `json:"service_program_name"`
	ServiceScheduleID   uuid.UUID `json:"service_schedule_id"`
	ServiceScheduleName string    `json:"service_schedule_name"`

	Tasks            []ProjectedTaskResponse `json:"tasks"`
	TaskCount        int                     `json:"task_count"`
	TotalLabourHours float64                 `json:"total_labour_hours"`
	TotalCost        decimal.Decimal         `json:"total_cost"`

	DueDate    *string  `json:"due_date,omitempty"`
	DueMileage *float64 `json:"due_mileage,omitempty"`

	Status   string `json:"status"`
	Priority string `json:"priority"`

	OccurrenceNumber int  `json:"occurrence_number"`
	IsTimeBased      bool `json:"is_time_based"`
	IsMileageBased   bool `json:"is_mileage_based"`

	CurrentMileage  float64  `json:"current_mileage"`
	MileageVariance *float64 `json:"mileage_variance,omitempty"`
	DaysUntilDue    *int     `json:"days_until_due,omitempty"`
}

type ReminderProjectionPageResponse struct {
	Items      []ReminderProjectionResponse `json:"items"`
	TotalCount int                          `json:"total_count"`
	PageNumber int                          `json:"page_number"`
	PageSize   int                          `json:"page_size"`
}
