package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceTaskRequest struct {
	Name                 string          `json:"name" validate:"required,min=2"`
	Description          string          `json:"description"`
	Category             string          `json:"category" validate:"omitempty,oneof=preventive corrective inspection other"`
	EstimatedLabourHours float64         `json:"estimated_labour_hours" validate:"gte=0"`
	EstimatedCost        decimal.Decimal `json:"estimated_cost"`
}

type UpdateServiceTaskRequest struct {
	Name                 string           `json:"name" validate:"omitempty,min=2"`
	Description          string           `json:"description"`
	Category             string           `json:"category" validate:"omitempty,oneof=preventive corrective inspection other"`
	EstimatedLabourHours *float64         `json:"estimated_labour_hours" validate:"omitempty,gte=0"`
	EstimatedCost        *decimal.Decimal `json:"estimated_cost"`
}

// Response DTOs

type ServiceTaskResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	Category             string          `json:"category"`
	EstimatedLabourHours float64         `json:"estimated_labour_hours"`
	EstimatedCost        decimal.Decimal `json:"estimated_cost"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type ServiceTaskListResponse struct {
	Tasks []ServiceTaskResponse `json:"tasks"`
	Total int64                 `json:"total"`
}
