package repository

import (
	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceTaskRepository interface {
	Create(db *gorm.DB, task *entity.ServiceTask) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceTask, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.ServiceTask, int64, error)
	Update(db *gorm.DB, task *entity.ServiceTask) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
