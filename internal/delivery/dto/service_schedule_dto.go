package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateServiceScheduleRequest struct {
	ServiceProgramID uuid.UUID `json:"service_program_id" validate:"required"`
	Name             string    `json:"name" validate:"required,min=2"`

	TimeIntervalValue *int   `json:"time_interval_value" validate:"omitempty,gt=0"`
	TimeIntervalUnit  string `json:"time_interval_unit" validate:"omitempty,oneof=hour day week"`
	TimeBufferValue   *int   `json:"time_buffer_value" validate:"omitempty,gte=0"`
	TimeBufferUnit    string `json:"time_buffer_unit" validate:"omitempty,oneof=hour day week"`
	FirstServiceDate  string `json:"first_service_date" validate:"omitempty"` // Format: YYYY-MM-DD

	MileageInterval     *float64 `json:"mileage_interval" validate:"omitempty,gt=0"`
	MileageBuffer       *float64 `json:"mileage_buffer" validate:"omitempty,gte=0"`
	FirstServiceMileage *float64 `json:"first_service_mileage" validate:"omitempty,gte=0"`
}

type UpdateServiceScheduleRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2"`
	IsActive *bool  `json:"is_active"`

	TimeIntervalValue *int   `json:"time_interval_value" validate:"omitempty,gt=0"`
	TimeIntervalUnit  string `json:"time_interval_unit" validate:"omitempty,oneof=hour day week"`
	TimeBufferValue   *int   `json:"time_buffer_value" validate:"omitempty,gte=0"`
	TimeBufferUnit    string `json:"time_buffer_unit" validate:"omitempty,oneof=hour day week"`
	FirstServiceDate  string `json:"first_service_date" validate:"omitempty"` // Format: YYYY-MM-DD

	MileageInterval     *float64 `json:"mileage_interval" validate:"omitempty,gt=0"`
	MileageBuffer       *float64 `json:"mileage_buffer" validate:"omitempty,gte=0"`
	FirstServiceMileage *float64 `json:"first_service_mileage" validate:"omitempty,gte=0"`
}

type AttachTaskRequest struct {
	TaskID uuid.UUID `json:"task_id" validate:"required"`
}

// Response DTOs

type ServiceScheduleResponse struct {
	ID               uuid.UUID `json:"id"`
	ServiceProgramID uuid.UUID `json:"service_program_id"`
	Name             string    `json:"name"`

	TimeIntervalValue *int    `json:"time_interval_value,omitempty"`
	TimeIntervalUnit  string  `json:"time_interval_unit,omitempty"`
	TimeBufferValue   *int    `json:"time_buffer_value,omitempty"`
	TimeBufferUnit    string  `json:"time_buffer_unit,omitempty"`
	FirstServiceDate  *string `json:"first_service_date,omitempty"`

	MileageInterval     *float64 `json:"mileage_interval,omitempty"`
	MileageBuffer       *float64 `json:"mileage_buffer,omitempty"`
	FirstServiceMileage *float64 `json:"first_service_mileage,omitempty"`

	IsActive  bool                  `json:"is_active"`
	Tasks     []ServiceTaskResponse `json:"tasks,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type ServiceScheduleListResponse struct {
	Schedules []ServiceScheduleResponse `json:"schedules"`
	Total     int                       `json:"total"`
}
