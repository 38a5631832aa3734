package repository

import (
	"errors"

	"fleet-maintenance/internal/domain/entity"
	domainRepo "fleet-maintenance/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceReminderRepository struct{}

func NewServiceReminderRepository() domainRepo.ServiceReminderRepository {
	return &serviceReminderRepository{}
}

func (r *serviceReminderRepository) Create(db *gorm.DB, reminder *entity.ServiceReminder) error {
	return db.Create(reminder).Error
}

func (r *serviceReminderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceReminder, error) {
	var reminder entity.ServiceReminder
	err := db.Preload("Vehicle").Preload("Schedule").Where("id = ?", id).First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *serviceReminderRepository) FindAll(db *gorm.DB, filter *domainRepo.ReminderFilter, limit, offset int) ([]entity.ServiceReminder, int64, error) {
	query := db.Model(&entity.ServiceReminder{})

	if filter != nil {
		if filter.VehicleID != nil {
			query = query.Where("vehicle_id = ?", *filter.VehicleID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reminders []entity.ServiceReminder
	err := query.
		Preload("Vehicle").Preload("Schedule").
		Order("due_date ASC NULLS LAST, due_mileage ASC NULLS LAST").
		Limit(limit).Offset(offset).
		Find(&reminders).Error
	if err != nil {
		return nil, 0, err
	}
	return reminders, total, nil
}

func (r *serviceReminderRepository) Update(db *gorm.DB, reminder *entity.ServiceReminder) error {
	return db.Omit("Vehicle", "Schedule").Save(reminder).Error
}

func (r *serviceReminderRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ServiceReminder{})
	return affected.RowsAffected, affected.Error
}
