package repository

import (
	"errors"

	"fleet-maintenance/internal/domain/entity"
	domainRepo "fleet-maintenance/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceScheduleRepository struct{}

func NewServiceScheduleRepository() domainRepo.ServiceScheduleRepository {
	return &serviceScheduleRepository{}
}

func (r *serviceScheduleRepository) Create(db *gorm.DB, schedule *entity.ServiceSchedule) error {
	return db.Create(schedule).Error
}

func (r *serviceScheduleRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceSchedule, error) {
	var schedule entity.ServiceSchedule
	err := db.Preload("Program").Preload("Tasks").Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *serviceScheduleRepository) FindByProgramID(db *gorm.DB, programID uuid.UUID) ([]entity.ServiceSchedule, error) {
	var schedules []entity.ServiceSchedule
	err := db.Preload("Tasks").Where("service_program_id = ?", programID).Order("name ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindAllActive returns active schedules of active programs with the
// owning program preloaded, as the projection engine requires.
func (r *serviceScheduleRepository) FindAllActive(db *gorm.DB) ([]entity.ServiceSchedule, error) {
	var schedules []entity.ServiceSchedule
	err := db.
		Joins("JOIN service_programs ON service_programs.id = service_schedules.service_program_id").
		Where("service_schedules.is_active = ? AND service_programs.is_active = ?", true, true).
		Preload("Program").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *serviceScheduleRepository) Update(db *gorm.DB, schedule *entity.ServiceSchedule) error {
	return db.Omit("Program", "Tasks").Save(schedule).Error
}

func (r *serviceScheduleRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ServiceSchedule{})
	return affected.RowsAffected, affected.Error
}

func (r *serviceScheduleRepository) AttachTask(db *gorm.DB, scheduleID, taskID uuid.UUID) error {
	link := entity.ScheduleTask{
		ServiceScheduleID: scheduleID,
		ServiceTaskID:     taskID,
	}
	return db.Create(&link).Error
}

func (r *serviceScheduleRepository) DetachTask(db *gorm.DB, scheduleID, taskID uuid.UUID) (int64, error) {
	affected := db.
		Where("service_schedule_id = ? AND service_task_id = ?", scheduleID, taskID).
		Delete(&entity.ScheduleTask{})
	return affected.RowsAffected, affected.Error
}

func (r *serviceScheduleRepository) FindTasks(db *gorm.DB, scheduleID uuid.UUID) ([]entity.ServiceTask, error) {
	var tasks []entity.ServiceTask
	err := db.
		Joins("JOIN schedule_tasks ON schedule_tasks.service_task_id = service_tasks.id").
		Where("schedule_tasks.service_schedule_id = ?", scheduleID).
		Order("service_tasks.name ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
