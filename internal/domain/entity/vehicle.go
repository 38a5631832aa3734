package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus represents the operational status of a vehicle
type VehicleStatus string

const (
	VehicleStatusActive       VehicleStatus = "active"
	VehicleStatusInShop       VehicleStatus = "in_shop"
	VehicleStatusOutOfService VehicleStatus = "out_of_service"
	VehicleStatusRetired      VehicleStatus = "retired"
)

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string        `gorm:"type:varchar(255);not null;index" json:"name"`
	LicensePlate string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_plate"`
	VIN          string        `gorm:"type:varchar(50)" json:"vin"`
	Make         string        `gorm:"type:varchar(100)" json:"make"`
	Model        string        `gorm:"type:varchar(100)" json:"model"`
	Year         int           `json:"year"`
	Status       VehicleStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Mileage      float64       `gorm:"not null;default:0" json:"mileage"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	ServicePrograms []ServiceProgram `gorm:"many2many:program_vehicles;" json:"service_programs,omitempty"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// IsActive checks if the vehicle is in active service
func (v *Vehicle) IsActive() bool {
	return v.Status == VehicleStatusActive
}
