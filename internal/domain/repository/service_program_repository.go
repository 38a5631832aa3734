package repository

import (
	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceProgramRepository interface {
	Create(db *gorm.DB, program *entity.ServiceProgram) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceProgram, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.ServiceProgram, int64, error)
	Update(db *gorm.DB, program *entity.ServiceProgram) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)

	AssignVehicle(db *gorm.DB, assignment *entity.ProgramVehicle) error
	UnassignVehicle(db *gorm.DB, programID, vehicleID uuid.UUID) (int64, error)
	FindAssignments(db *gorm.DB, programID uuid.UUID) ([]entity.ProgramVehicle, error)
}
