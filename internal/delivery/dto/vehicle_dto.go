package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateVehicleRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	LicensePlate string  `json:"license_plate" validate:"required"`
	VIN          string  `json:"vin" validate:"omitempty"`
	Make         string  `json:"make" validate:"omitempty"`
	Model        string  `json:"model" validate:"omitempty"`
	Year         int     `json:"year" validate:"omitempty,gte=1900"`
	Mileage      float64 `json:"mileage" validate:"gte=0"`
}

type UpdateVehicleRequest struct {
	Name    string   `json:"name" validate:"omitempty,min=2"`
	Status  string   `json:"status" validate:"omitempty,oneof=active in_shop out_of_service retired"`
	Mileage *float64 `json:"mileage" validate:"omitempty,gte=0"`
}

// Response DTOs

type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LicensePlate string    `json:"license_plate"`
	VIN          string    `json:"vin,omitempty"`
	Make         string    `json:"make,omitempty"`
	Model        string    `json:"model,omitempty"`
	Year         int       `json:"year,omitempty"`
	Status       string    `json:"status"`
	Mileage      float64   `json:"mileage"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int64             `json:"total"`
}
