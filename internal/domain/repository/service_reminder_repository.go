package repository

import (
	"fleet-maintenance/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderFilter is a domain-level filter for querying persisted
// reminders. Used by the repository layer to avoid coupling with
// delivery DTOs.
type ReminderFilter struct {
	VehicleID *uuid.UUID
	Status    entity.ReminderStatus
}

type ServiceReminderRepository interface {
	Create(db *gorm.DB, reminder *entity.ServiceReminder) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceReminder, error)
	FindAll(db *gorm.DB, filter *ReminderFilter, limit, offset int) ([]entity.ServiceReminder, int64, error)
	Update(db *gorm.DB, reminder *entity.ServiceReminder) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
