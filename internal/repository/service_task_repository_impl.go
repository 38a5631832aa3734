package repository

import (
	"errors"

	"fleet-maintenance/internal/domain/entity"
	domainRepo "fleet-maintenance/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceTaskRepository struct{}

func NewServiceTaskRepository() domainRepo.ServiceTaskRepository {
	return &serviceTaskRepository{}
}

func (r *serviceTaskRepository) Create(db *gorm.DB, task *entity.ServiceTask) error {
	return db.Create(task).Error
}

func (r *serviceTaskRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceTask, error) {
	var task entity.ServiceTask
	err := db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *serviceTaskRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.ServiceTask, int64, error) {
	var tasks []entity.ServiceTask
	var total int64

	if err := db.Model(&entity.ServiceTask{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *serviceTaskRepository) Update(db *gorm.DB, task *entity.ServiceTask) error {
	return db.Omit("Schedules").Save(task).Error
}

func (r *serviceTaskRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ServiceTask{})
	return affected.RowsAffected, affected.Error
}
