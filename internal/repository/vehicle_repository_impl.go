package repository

import (
	"errors"

	"fleet-maintenance/internal/domain/entity"
	domainRepo "fleet-maintenance/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vehicleRepository struct{}

func NewVehicleRepository() domainRepo.VehicleRepository {
	return &vehicleRepository{}
}

func (r *vehicleRepository) Create(db *gorm.DB, vehicle *entity.Vehicle) error {
	return db.Create(vehicle).Error
}

func (r *vehicleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := db.Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Vehicle, int64, error) {
	var vehicles []entity.Vehicle
	var total int64

	if err := db.Model(&entity.Vehicle{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

func (r *vehicleRepository) Update(db *gorm.DB, vehicle *entity.Vehicle) error {
	return db.Omit("ServicePrograms").Save(vehicle).Error
}

func (r *vehicleRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Vehicle{})
	return affected.RowsAffected, affected.Error
}
