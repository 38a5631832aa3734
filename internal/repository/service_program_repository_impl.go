package repository

import (
	"errors"

	"fleet-maintenance/internal/domain/entity"
	domainRepo "fleet-maintenance/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceProgramRepository struct{}

func NewServiceProgramRepository() domainRepo.ServiceProgramRepository {
	return &serviceProgramRepository{}
}

func (r *serviceProgramRepository) Create(db *gorm.DB, program *entity.ServiceProgram) error {
	return db.Create(program).Error
}

func (r *serviceProgramRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceProgram, error) {
	var program entity.ServiceProgram
	err := db.Preload("Schedules").Where("id = ?", id).First(&program).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (r *serviceProgramRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.ServiceProgram, int64, error) {
	var programs []entity.ServiceProgram
	var total int64

	if err := db.Model(&entity.ServiceProgram{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&programs).Error
	if err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

func (r *serviceProgramRepository) Update(db *gorm.DB, program *entity.ServiceProgram) error {
	return db.Omit("Schedules", "Vehicles").Save(program).Error
}

func (r *serviceProgramRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ServiceProgram{})
	return affected.RowsAffected, affected.Error
}

func (r *serviceProgramRepository) AssignVehicle(db *gorm.DB, assignment *entity.ProgramVehicle) error {
	return db.Create(assignment).Error
}

func (r *serviceProgramRepository) UnassignVehicle(db *gorm.DB, programID, vehicleID uuid.UUID) (int64, error) {
	affected := db.
		Where("service_program_id = ? AND vehicle_id = ?", programID, vehicleID).
		Delete(&entity.ProgramVehicle{})
	return affected.RowsAffected, affected.Error
}

func (r *serviceProgramRepository) FindAssignments(db *gorm.DB, programID uuid.UUID) ([]entity.ProgramVehicle, error) {
	var assignments []entity.ProgramVehicle
	err := db.Where("service_program_id = ?", programID).Order("added_at ASC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
