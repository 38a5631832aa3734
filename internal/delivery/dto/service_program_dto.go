package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateServiceProgramRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

type UpdateServiceProgramRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type AssignVehicleRequest struct {
	VehicleID           uuid.UUID `json:"vehicle_id" validate:"required"`
	MileageAtAssignment *float64  `json:"mileage_at_assignment" validate:"omitempty,gte=0"`
}

// Response DTOs

type ServiceProgramResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	IsActive    bool                      `json:"is_active"`
	Schedules   []ServiceScheduleResponse `json:"schedules,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

type ServiceProgramListResponse struct {
	Programs []ServiceProgramResponse `json:"programs"`
	Total    int64                    `json:"total"`
}

type ProgramVehicleResponse struct {
	ServiceProgramID    uuid.UUID `json:"service_program_id"`
	VehicleID           uuid.UUID `json:"vehicle_id"`
	AddedAt             time.Time `json:"added_at"`
	MileageAtAssignment *float64  `json:"mileage_at_assignment,omitempty"`
}
