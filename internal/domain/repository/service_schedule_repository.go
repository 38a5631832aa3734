package repository

import (
	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.ServiceSchedule) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceSchedule, error)
	FindByProgramID(db *gorm.DB, programID uuid.UUID) ([]entity.ServiceSchedule, error)
	FindAllActive(db *gorm.DB) ([]entity.ServiceSchedule, error)
	Update(db *gorm.DB, schedule *entity.ServiceSchedule) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)

	AttachTask(db *gorm.DB, scheduleID, taskID uuid.UUID) error
	DetachTask(db *gorm.DB, scheduleID, taskID uuid.UUID) (int64, error)
	FindTasks(db *gorm.DB, scheduleID uuid.UUID) ([]entity.ServiceTask, error)
}
