package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProgram groups recurring maintenance schedules and the vehicles
// they apply to
type ServiceProgram struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedules []ServiceSchedule `gorm:"foreignKey:ServiceProgramID" json:"schedules,omitempty"`
	Vehicles  []Vehicle         `gorm:"many2many:program_vehicles;" json:"vehicles,omitempty"`
}

func (ServiceProgram) TableName() string {
	return "service_programs"
}

// ProgramVehicle links a vehicle to a service program. AddedAt anchors
// time-axis recurrence expansion for schedules without an explicit first
// service date.
type ProgramVehicle struct {
	ServiceProgramID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"service_program_id"`
	VehicleID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"vehicle_id"`
	AddedAt             time.Time `gorm:"not null" json:"added_at"`
	MileageAtAssignment *float64  `json:"mileage_at_assignment,omitempty"`

	// Relationships
	Program ServiceProgram `gorm:"foreignKey:ServiceProgramID" json:"program,omitempty"`
	Vehicle Vehicle        `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (ProgramVehicle) TableName() string {
	return "program_vehicles"
}
