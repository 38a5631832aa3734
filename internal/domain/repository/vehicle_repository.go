package repository

import (
	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(db *gorm.DB, vehicle *entity.Vehicle) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vehicle, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Vehicle, int64, error)
	Update(db *gorm.DB, vehicle *entity.Vehicle) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
