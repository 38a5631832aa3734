package usecase

import (
	"context"
	"errors"
	"time"

	"fleet-maintenance/internal/converter"
	"fleet-maintenance/internal/delivery/dto"
	"fleet-maintenance/internal/domain/entity"
	"fleet-maintenance/internal/domain/repository"
	"fleet-maintenance/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound    = errors.New("service schedule not found")
	ErrScheduleHasNoAxis   = errors.New("schedule must define a time interval or a mileage interval")
	ErrIncompleteTimeAxis  = errors.New("time interval value and unit must be set together")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrTaskAlreadyAttached = errors.New("task is already attached to this schedule")
	ErrTaskNotAttached     = errors.New("task is not attached to this schedule")
)

type ServiceScheduleUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceScheduleRequest) (*dto.ServiceScheduleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceScheduleResponse, error)
	GetByProgram(ctx context.Context, programID uuid.UUID) (*dto.ServiceScheduleListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceScheduleRequest) (*dto.ServiceScheduleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AttachTask(ctx context.Context, scheduleID uuid.UUID, req *dto.AttachTaskRequest) error
	DetachTask(ctx context.Context, scheduleID, taskID uuid.UUID) error
	GetTasks(ctx context.Context, scheduleID uuid.UUID) ([]dto.ServiceTaskResponse, error)
}

type serviceScheduleUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	scheduleRepo  repository.ServiceScheduleRepository
	programRepo   repository.ServiceProgramRepository
	taskRepo      repository.ServiceTaskRepository
	auditService  service.AuditService
	reminderCache *service.ReminderCacheService
}

func NewServiceScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ServiceScheduleRepository,
	programRepo repository.ServiceProgramRepository,
	taskRepo repository.ServiceTaskRepository,
	auditService service.AuditService,
	reminderCache *service.ReminderCacheService,
) ServiceScheduleUsecase {
	return &serviceScheduleUsecase{
		db:            db,
		log:           log,
		scheduleRepo:  scheduleRepo,
		programRepo:   programRepo,
		taskRepo:      taskRepo,
		auditService:  auditService,
		reminderCache: reminderCache,
	}
}

func (u *serviceScheduleUsecase) Create(ctx context.Context, req *dto.CreateServiceScheduleRequest) (*dto.ServiceScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	program, err := u.programRepo.FindByID(tx, req.ServiceProgramID)
	if err != nil {
		u.log.Warnf("Failed to find service program %s: %+v", req.ServiceProgramID, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	schedule := &entity.ServiceSchedule{
		ServiceProgramID:    req.ServiceProgramID,
		Name:                req.Name,
		TimeIntervalValue:   req.TimeIntervalValue,
		TimeBufferValue:     req.TimeBufferValue,
		MileageInterval:     req.MileageInterval,
		MileageBuffer:       req.MileageBuffer,
		FirstServiceMileage: req.FirstServiceMileage,
		IsActive:            true,
	}

	if err := applyScheduleAxes(schedule, req.TimeIntervalUnit, req.TimeBufferUnit, req.FirstServiceDate); err != nil {
		return nil, err
	}
	if err := validateScheduleAxes(schedule); err != nil {
		return nil, err
	}

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		u.log.Warnf("Failed to create service schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionScheduleCreate, "service_schedule", schedule.ID.String(), schedule); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reminderCache.Invalidate(ctx)
	return converter.ScheduleToResponse(schedule), nil
}

func (u *serviceScheduleUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service schedule %s: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *serviceScheduleUsecase) GetByProgram(ctx context.Context, programID uuid.UUID) (*dto.ServiceScheduleListResponse, error) {
	program, err := u.programRepo.FindByID(u.db.WithContext(ctx), programID)
	if err != nil {
		u.log.Warnf("Failed to find service program %s: %+v", programID, err)
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	schedules, err := u.scheduleRepo.FindByProgramID(u.db.WithContext(ctx), programID)
	if err != nil {
		u.log.Warnf("Failed to find schedules for program %s: %+v", programID, err)
		return nil, err
	}

	return &dto.ServiceScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *serviceScheduleUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceScheduleRequest) (*dto.ServiceScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service schedule %s: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	oldValue := *schedule

	if req.Name != "" {
		schedule.Name = req.Name
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	if req.TimeIntervalValue != nil {
		schedule.TimeIntervalValue = req.TimeIntervalValue
	}
	if req.TimeBufferValue != nil {
		schedule.TimeBufferValue = req.TimeBufferValue
	}
	if req.MileageInterval != nil {
		schedule.MileageInterval = req.MileageInterval
	}
	if req.MileageBuffer != nil {
		schedule.MileageBuffer = req.MileageBuffer
	}
	if req.FirstServiceMileage != nil {
		schedule.FirstServiceMileage = req.FirstServiceMileage
	}

	if err := applyScheduleAxes(schedule, req.TimeIntervalUnit, req.TimeBufferUnit, req.FirstServiceDate); err != nil {
		return nil, err
	}
	if err := validateScheduleAxes(schedule); err != nil {
		return nil, err
	}

	if err := u.scheduleRepo.Update(tx, schedule); err != nil {
		u.log.Warnf("Failed to update service schedule %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), entity.AuditActionScheduleUpdate, "service_schedule", schedule.ID.String(), oldValue, schedule); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.reminderCache.Invalidate(ctx)
	return converter.ScheduleToResponse(schedule), nil
}

func (u *serviceScheduleUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service schedule %s: %+v", id, err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	if _, err := u.scheduleRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete service schedule %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionScheduleDelete, "service_schedule", id.String(), schedule); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reminderCache.Invalidate(ctx)
	return nil
}

func (u *serviceScheduleUsecase) AttachTask(ctx context.Context, scheduleID uuid.UUID, req *dto.AttachTaskRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find service schedule %s: %+v", scheduleID, err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	task, err := u.taskRepo.FindByID(tx, req.TaskID)
	if err != nil {
		u.log.Warnf("Failed to find service task %s: %+v", req.TaskID, err)
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if err := u.scheduleRepo.AttachTask(tx, scheduleID, req.TaskID); err != nil {
		if isDuplicateKeyError(err, "schedule_tasks") {
			return ErrTaskAlreadyAttached
		}
		u.log.Warnf("Failed to attach task %s to schedule %s: %+v", req.TaskID, scheduleID, err)
		return err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionTaskAttach, "schedule_task", scheduleID.String(), map[string]interface{}{
		"service_schedule_id": scheduleID.String(),
		"service_task_id":     req.TaskID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reminderCache.Invalidate(ctx)
	return nil
}

func (u *serviceScheduleUsecase) DetachTask(ctx context.Context, scheduleID, taskID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.scheduleRepo.DetachTask(tx, scheduleID, taskID)
	if err != nil {
		u.log.Warnf("Failed to detach task %s from schedule %s: %+v", taskID, scheduleID, err)
		return err
	}
	if affected == 0 {
		return ErrTaskNotAttached
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionTaskDetach, "schedule_task", scheduleID.String(), map[string]interface{}{
		"service_schedule_id": scheduleID.String(),
		"service_task_id":     taskID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.reminderCache.Invalidate(ctx)
	return nil
}

func (u *serviceScheduleUsecase) GetTasks(ctx context.Context, scheduleID uuid.UUID) ([]dto.ServiceTaskResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find service schedule %s: %+v", scheduleID, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	tasks, err := u.scheduleRepo.FindTasks(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find tasks for schedule %s: %+v", scheduleID, err)
		return nil, err
	}

	return converter.TasksToResponses(tasks), nil
}

// applyScheduleAxes maps the string-typed unit and date fields of a request
// onto the schedule entity
func applyScheduleAxes(schedule *entity.ServiceSchedule, intervalUnit, bufferUnit, firstServiceDate string) error {
	if intervalUnit != "" {
		unit := entity.TimeUnit(intervalUnit)
		schedule.TimeIntervalUnit = &unit
	}
	if bufferUnit != "" {
		unit := entity.TimeUnit(bufferUnit)
		schedule.TimeBufferUnit = &unit
	}
	if firstServiceDate != "" {
		parsed, err := time.Parse("2006-01-02", firstServiceDate)
		if err != nil {
			return ErrInvalidDateFormat
		}
		schedule.FirstServiceDate = &parsed
	}
	return nil
}

// validateScheduleAxes enforces the recurrence invariants: a schedule needs
// at least one axis, and a time axis needs both a value and a unit
func validateScheduleAxes(schedule *entity.ServiceSchedule) error {
	hasValue := schedule.TimeIntervalValue != nil && *schedule.TimeIntervalValue > 0
	hasUnit := schedule.TimeIntervalUnit != nil && schedule.TimeIntervalUnit.IsValid()
	if hasValue != hasUnit {
		return ErrIncompleteTimeAxis
	}

	if !schedule.HasTimeAxis() && !schedule.HasMileageAxis() {
		return ErrScheduleHasNoAxis
	}
	return nil
}
