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
	ErrReminderNotFound      = errors.New("service reminder not found")
	ErrReminderAlreadyClosed = errors.New("service reminder is already completed or cancelled")
	ErrReminderNeedsDue      = errors.New("reminder requires a due date or a due mileage")
	ErrInvalidReminderStatus = errors.New("invalid reminder status filter")
)

type ServiceReminderUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceReminderRequest) (*dto.ServiceReminderResponse, error)
	GetAll(ctx context.Context, vehicleID *uuid.UUID, status string, page, limit int) (*dto.ServiceReminderListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceReminderResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*dto.ServiceReminderResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) (*dto.ServiceReminderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceReminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.ServiceReminderRepository
	vehicleRepo  repository.VehicleRepository
	scheduleRepo repository.ServiceScheduleRepository
	auditService service.AuditService
}

func NewServiceReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ServiceReminderRepository,
	vehicleRepo repository.VehicleRepository,
	scheduleRepo repository.ServiceScheduleRepository,
	auditService service.AuditService,
) ServiceReminderUsecase {
	return &serviceReminderUsecase{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
		vehicleRepo:  vehicleRepo,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

// Create materializes a reminder as a persisted, trackable record. From
// here on its lifecycle is independent of the recurrence projections.
func (u *serviceReminderUsecase) Create(ctx context.Context, req *dto.CreateServiceReminderRequest) (*dto.ServiceReminderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle, err := u.vehicleRepo.FindByID(tx, req.VehicleID)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %s: %+v", req.VehicleID, err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	schedule, err := u.scheduleRepo.FindByID(tx, req.ServiceScheduleID)
	if err != nil {
		u.log.Warnf("Failed to find service schedule %s: %+v", req.ServiceScheduleID, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dueDate = &parsed
	}

	if dueDate == nil && req.DueMileage == nil {
		return nil, ErrReminderNeedsDue
	}

	reminder := &entity.ServiceReminder{
		VehicleID:         req.VehicleID,
		ServiceScheduleID: req.ServiceScheduleID,
		DueDate:           dueDate,
		DueMileage:        req.DueMileage,
		Status:            entity.ReminderStatusUpcoming,
		Notes:             req.Notes,
	}

	if err := u.reminderRepo.Create(tx, reminder); err != nil {
		u.log.Warnf("Failed to create service reminder: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionReminderCreate, "service_reminder", reminder.ID.String(), reminder); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	reminder.Vehicle = *vehicle
	reminder.Schedule = *schedule
	return converter.ReminderToResponse(reminder), nil
}

func (u *serviceReminderUsecase) GetAll(ctx context.Context, vehicleID *uuid.UUID, status string, page, limit int) (*dto.ServiceReminderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	filter := &repository.ReminderFilter{VehicleID: vehicleID}
	if status != "" {
		reminderStatus := entity.ReminderStatus(status)
		switch reminderStatus {
		case entity.ReminderStatusUpcoming, entity.ReminderStatusDueSoon, entity.ReminderStatusOverdue,
			entity.ReminderStatusCompleted, entity.ReminderStatusCancelled:
			filter.Status = reminderStatus
		default:
			return nil, ErrInvalidReminderStatus
		}
	}

	reminders, total, err := u.reminderRepo.FindAll(u.db.WithContext(ctx), filter, limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find service reminders: %+v", err)
		return nil, err
	}

	return &dto.ServiceReminderListResponse{
		Reminders: converter.RemindersToResponses(reminders),
		Total:     total,
	}, nil
}

func (u *serviceReminderUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceReminderResponse, error) {
	reminder, err := u.reminderRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service reminder %s: %+v", id, err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *serviceReminderUsecase) Complete(ctx context.Context, id uuid.UUID) (*dto.ServiceReminderResponse, error) {
	return u.close(ctx, id, entity.AuditActionReminderComplete, func(r *entity.ServiceReminder, at time.Time) {
		r.Complete(at)
	})
}

func (u *serviceReminderUsecase) Cancel(ctx context.Context, id uuid.UUID) (*dto.ServiceReminderResponse, error) {
	return u.close(ctx, id, entity.AuditActionReminderCancel, func(r *entity.ServiceReminder, at time.Time) {
		r.Cancel(at)
	})
}

func (u *serviceReminderUsecase) close(ctx context.Context, id uuid.UUID, action string, transition func(*entity.ServiceReminder, time.Time)) (*dto.ServiceReminderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder, err := u.reminderRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service reminder %s: %+v", id, err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}
	if !reminder.IsOpen() {
		return nil, ErrReminderAlreadyClosed
	}

	oldValue := *reminder
	transition(reminder, time.Now().UTC())

	if err := u.reminderRepo.Update(tx, reminder); err != nil {
		u.log.Warnf("Failed to update service reminder %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorFromContext(ctx), action, "service_reminder", id.String(), oldValue, reminder); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *serviceReminderUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	reminder, err := u.reminderRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service reminder %s: %+v", id, err)
		return err
	}
	if reminder == nil {
		return ErrReminderNotFound
	}

	if _, err := u.reminderRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete service reminder %s: %+v", id, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, actorFromContext(ctx), entity.AuditActionReminderDelete, "service_reminder", id.String(), reminder); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
